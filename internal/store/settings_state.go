package store

import (
	"sync"
	"time"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// SettingsSnapshot vista de solo lectura del agregado de configuración.
type SettingsSnapshot struct {
	Profile       *entity.UserProfile
	Notifications entity.NotificationSettings
	Security      entity.SecuritySettings
	Billing       *entity.BillingInfo
	Application   entity.ApplicationSettings
	Loading       bool
	Error         string
}

// SettingsState estado del agregado de configuración de la cuenta: perfil,
// notificaciones, seguridad, facturación y preferencias de la aplicación.
// Registros planos, cada uno con su operación de actualización independiente.
type SettingsState struct {
	mu            sync.RWMutex
	profile       *entity.UserProfile
	notifications entity.NotificationSettings
	security      entity.SecuritySettings
	billing       *entity.BillingInfo
	application   entity.ApplicationSettings
	loading       bool
	err           string
}

// NewSettingsState construye el estado con preferencias por defecto.
// Perfil y facturación llegan con el fetch inicial.
func NewSettingsState() *SettingsState {
	return &SettingsState{
		notifications: entity.DefaultNotificationSettings(),
		security:      entity.DefaultSecuritySettings(),
		application:   entity.DefaultApplicationSettings(),
	}
}

// BeginRequest marca la petición en curso.
func (s *SettingsState) BeginRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// ApplyFetch fija perfil y facturación recibidos del backend.
func (s *SettingsState) ApplyFetch(profile entity.UserProfile, billing entity.BillingInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	s.billing = &billing
	s.loading = false
	s.err = ""
}

// ApplyProfile reemplaza el perfil tras una actualización exitosa.
func (s *SettingsState) ApplyProfile(profile entity.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	s.loading = false
	s.err = ""
}

// ApplyPasswordChanged sella la fecha de último cambio de contraseña.
func (s *SettingsState) ApplyPasswordChanged(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.security.PasswordLastChanged = at
	s.loading = false
	s.err = ""
}

// ApplyNotifications reemplaza las preferencias de notificación.
// Transición inmediata, sin backend.
func (s *SettingsState) ApplyNotifications(n entity.NotificationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = n
}

// ApplySecurity reemplaza las preferencias de seguridad.
func (s *SettingsState) ApplySecurity(sec entity.SecuritySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.security = sec
}

// ApplyBilling reemplaza la información de facturación si ya fue cargada.
func (s *SettingsState) ApplyBilling(b entity.BillingInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.billing != nil {
		s.billing = &b
	}
}

// ApplyApplication reemplaza las preferencias de la aplicación.
func (s *SettingsState) ApplyApplication(a entity.ApplicationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.application = a
}

// SetError registra el mensaje de fallo y apaga loading.
func (s *SettingsState) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = message
}

// ClearError limpia el error.
func (s *SettingsState) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot devuelve una vista del agregado completo.
func (s *SettingsState) Snapshot() SettingsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsSnapshot{
		Profile:       s.profile,
		Notifications: s.notifications,
		Security:      s.security,
		Billing:       s.billing,
		Application:   s.application,
		Loading:       s.loading,
		Error:         s.err,
	}
}
