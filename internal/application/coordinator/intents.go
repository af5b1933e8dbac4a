package coordinator

import (
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// Topics de entidad sobre el bus. Cada uno tiene exactamente un coordinador.
const (
	TopicProducts   = "products"
	TopicOrders     = "orders"
	TopicDeliveries = "deliveries"
	TopicAuth       = "auth"
	TopicSettings   = "settings"
	TopicDashboard  = "dashboard"
)

// ── Intenciones CRUD genéricas (products / orders / deliveries) ──────────────

// FetchIntent pide reemplazar la colección completa desde el backend.
type FetchIntent struct{ Entity string }

func (i FetchIntent) Topic() string { return i.Entity }

// CreateIntent pide crear una entidad. El backend genera id y número.
type CreateIntent[T store.Identifiable] struct {
	Entity string
	Draft  T
}

func (i CreateIntent[T]) Topic() string { return i.Entity }

// UpdateIntent pide reemplazar la entidad completa (misma identidad).
type UpdateIntent[T store.Identifiable] struct {
	Entity string
	Item   T
}

func (i UpdateIntent[T]) Topic() string { return i.Entity }

// DeleteIntent pide eliminar por identidad.
type DeleteIntent struct {
	Entity string
	ID     string
}

func (i DeleteIntent) Topic() string { return i.Entity }

// StatusIntent pide cambiar el estado de una entidad existente.
type StatusIntent struct {
	Entity string
	ID     string
	Status string
}

func (i StatusIntent) Topic() string { return i.Entity }

// SelectIntent fija (o limpia, con nil) la referencia "en edición".
// Transición inmediata: no toca el backend.
type SelectIntent[T store.Identifiable] struct {
	Entity string
	Item   *T
}

func (i SelectIntent[T]) Topic() string { return i.Entity }

// ClearErrorIntent limpia el error del slice sin tocar la colección.
// Transición inmediata.
type ClearErrorIntent struct{ Entity string }

func (i ClearErrorIntent) Topic() string { return i.Entity }

// ── Intenciones de sesión ────────────────────────────────────────────────────

// LoginIntent credenciales de inicio de sesión.
type LoginIntent struct {
	Email    string
	Password string
}

func (LoginIntent) Topic() string { return TopicAuth }

// SignupIntent registro de un usuario nuevo.
type SignupIntent struct {
	Name     string
	Email    string
	Password string
}

func (SignupIntent) Topic() string { return TopicAuth }

// LogoutIntent cierra la sesión. Transición inmediata.
type LogoutIntent struct{}

func (LogoutIntent) Topic() string { return TopicAuth }

// ── Intenciones del agregado de configuración ────────────────────────────────

// FetchSettingsIntent carga perfil y facturación desde el backend.
type FetchSettingsIntent struct{}

func (FetchSettingsIntent) Topic() string { return TopicSettings }

// UpdateProfileIntent guarda el perfil completo en el backend.
type UpdateProfileIntent struct {
	Profile entity.UserProfile
}

func (UpdateProfileIntent) Topic() string { return TopicSettings }

// ChangePasswordIntent cambia la contraseña del usuario de la sesión.
type ChangePasswordIntent struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}

func (ChangePasswordIntent) Topic() string { return TopicSettings }

// UpdateNotificationsIntent reemplaza las preferencias de notificación.
// Transición inmediata.
type UpdateNotificationsIntent struct {
	Settings entity.NotificationSettings
}

func (UpdateNotificationsIntent) Topic() string { return TopicSettings }

// UpdateSecurityIntent reemplaza las preferencias de seguridad. Inmediata.
type UpdateSecurityIntent struct {
	Settings entity.SecuritySettings
}

func (UpdateSecurityIntent) Topic() string { return TopicSettings }

// UpdateBillingIntent reemplaza la información de facturación. Inmediata.
type UpdateBillingIntent struct {
	Billing entity.BillingInfo
}

func (UpdateBillingIntent) Topic() string { return TopicSettings }

// UpdateApplicationIntent reemplaza las preferencias de la aplicación.
// Inmediata.
type UpdateApplicationIntent struct {
	Settings entity.ApplicationSettings
}

func (UpdateApplicationIntent) Topic() string { return TopicSettings }

// ── Intenciones del tablero ──────────────────────────────────────────────────

// FetchStatsIntent carga las métricas agregadas.
type FetchStatsIntent struct{}

func (FetchStatsIntent) Topic() string { return TopicDashboard }

// FetchRevenueIntent carga la serie de ingresos mensuales.
type FetchRevenueIntent struct{}

func (FetchRevenueIntent) Topic() string { return TopicDashboard }

// FetchDistributionIntent carga la distribución de órdenes por estado.
type FetchDistributionIntent struct{}

func (FetchDistributionIntent) Topic() string { return TopicDashboard }
