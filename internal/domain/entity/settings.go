package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile perfil editable del usuario de la sesión.
type UserProfile struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Avatar    string
	Bio       string
	Company   string
	Address   *Address
	UpdatedAt time.Time
}

// NotificationSettings preferencias de notificación. Registro plano,
// actualizaciones independientes sin invariantes cruzados.
type NotificationSettings struct {
	EmailNotifications bool
	PushNotifications  bool
	OrderUpdates       bool
	InventoryAlerts    bool
	DeliveryUpdates    bool
	MarketingEmails    bool
	WeeklyReports      bool
}

// DefaultNotificationSettings valores iniciales de notificaciones.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications: true,
		PushNotifications:  true,
		OrderUpdates:       true,
		InventoryAlerts:    true,
		DeliveryUpdates:    true,
		MarketingEmails:    false,
		WeeklyReports:      true,
	}
}

// SecuritySettings preferencias de seguridad de la cuenta.
type SecuritySettings struct {
	TwoFactorEnabled    bool
	LoginAlerts         bool
	SessionTimeout      int // minutos
	PasswordLastChanged time.Time
}

// DefaultSecuritySettings valores iniciales de seguridad.
func DefaultSecuritySettings() SecuritySettings {
	return SecuritySettings{
		TwoFactorEnabled:    false,
		LoginAlerts:         true,
		SessionTimeout:      30,
		PasswordLastChanged: time.Now(),
	}
}

// PaymentMethod método de pago asociado a la facturación.
type PaymentMethod struct {
	Type  string // card, bank
	Last4 string
	Brand string
}

// BillingInfo plan y estado de facturación de la cuenta.
type BillingInfo struct {
	Plan            string // basic, premium, enterprise
	Status          string // active, cancelled, past_due
	NextBillingDate time.Time
	Amount          decimal.Decimal
	Currency        string
	PaymentMethod   PaymentMethod
}

// ApplicationSettings preferencias de la aplicación.
type ApplicationSettings struct {
	Theme              string // light, dark, auto
	Language           string
	Timezone           string
	DateFormat         string
	Currency           string
	Units              string // metric, imperial
	AutoSave           bool
	NotificationsSound bool
	DashboardRefresh   int // segundos
}

// DefaultApplicationSettings valores iniciales de la aplicación.
func DefaultApplicationSettings() ApplicationSettings {
	return ApplicationSettings{
		Theme:              "light",
		Language:           "en",
		Timezone:           "America/New_York",
		DateFormat:         "MM/DD/YYYY",
		Currency:           "USD",
		Units:              "imperial",
		AutoSave:           true,
		NotificationsSound: true,
		DashboardRefresh:   30,
	}
}
