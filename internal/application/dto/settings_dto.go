package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// UserProfileDTO perfil del usuario en respuestas.
type UserProfileDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Avatar    string      `json:"avatar,omitempty"`
	Bio       string      `json:"bio,omitempty"`
	Company   string      `json:"company,omitempty"`
	Address   *AddressDTO `json:"address,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// FromProfile convierte la entidad a DTO.
func FromProfile(p entity.UserProfile) UserProfileDTO {
	out := UserProfileDTO{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Avatar:    p.Avatar,
		Bio:       p.Bio,
		Company:   p.Company,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Address != nil {
		a := FromAddress(*p.Address)
		out.Address = &a
	}
	return out
}

// UpdateProfileRequest actualización parcial del perfil: los campos nil
// conservan el valor actual. El handler hace el merge contra el snapshot.
type UpdateProfileRequest struct {
	Name    *string     `json:"name,omitempty"`
	Email   *string     `json:"email,omitempty"`
	Phone   *string     `json:"phone,omitempty"`
	Avatar  *string     `json:"avatar,omitempty"`
	Bio     *string     `json:"bio,omitempty"`
	Company *string     `json:"company,omitempty"`
	Address *AddressDTO `json:"address,omitempty"`
}

// MergeInto aplica los campos presentes sobre el perfil actual.
func (r UpdateProfileRequest) MergeInto(p entity.UserProfile) entity.UserProfile {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Avatar != nil {
		p.Avatar = *r.Avatar
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.Company != nil {
		p.Company = *r.Company
	}
	if r.Address != nil {
		a := r.Address.ToEntity()
		p.Address = &a
	}
	return p
}

// ChangePasswordRequest cambio de contraseña del usuario de la sesión.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// NotificationSettingsDTO preferencias de notificación completas.
type NotificationSettingsDTO struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	OrderUpdates       bool `json:"orderUpdates"`
	InventoryAlerts    bool `json:"inventoryAlerts"`
	DeliveryUpdates    bool `json:"deliveryUpdates"`
	MarketingEmails    bool `json:"marketingEmails"`
	WeeklyReports      bool `json:"weeklyReports"`
}

// UpdateNotificationSettingsRequest actualización parcial: nil conserva.
type UpdateNotificationSettingsRequest struct {
	EmailNotifications *bool `json:"emailNotifications,omitempty"`
	PushNotifications  *bool `json:"pushNotifications,omitempty"`
	OrderUpdates       *bool `json:"orderUpdates,omitempty"`
	InventoryAlerts    *bool `json:"inventoryAlerts,omitempty"`
	DeliveryUpdates    *bool `json:"deliveryUpdates,omitempty"`
	MarketingEmails    *bool `json:"marketingEmails,omitempty"`
	WeeklyReports      *bool `json:"weeklyReports,omitempty"`
}

// MergeInto aplica los campos presentes sobre las preferencias actuales.
func (r UpdateNotificationSettingsRequest) MergeInto(n entity.NotificationSettings) entity.NotificationSettings {
	if r.EmailNotifications != nil {
		n.EmailNotifications = *r.EmailNotifications
	}
	if r.PushNotifications != nil {
		n.PushNotifications = *r.PushNotifications
	}
	if r.OrderUpdates != nil {
		n.OrderUpdates = *r.OrderUpdates
	}
	if r.InventoryAlerts != nil {
		n.InventoryAlerts = *r.InventoryAlerts
	}
	if r.DeliveryUpdates != nil {
		n.DeliveryUpdates = *r.DeliveryUpdates
	}
	if r.MarketingEmails != nil {
		n.MarketingEmails = *r.MarketingEmails
	}
	if r.WeeklyReports != nil {
		n.WeeklyReports = *r.WeeklyReports
	}
	return n
}

// SecuritySettingsDTO preferencias de seguridad.
type SecuritySettingsDTO struct {
	TwoFactorEnabled    bool      `json:"twoFactorEnabled"`
	LoginAlerts         bool      `json:"loginAlerts"`
	SessionTimeout      int       `json:"sessionTimeout"`
	PasswordLastChanged time.Time `json:"passwordLastChanged"`
}

// UpdateSecuritySettingsRequest actualización parcial: nil conserva.
// PasswordLastChanged solo lo muta el cambio de contraseña.
type UpdateSecuritySettingsRequest struct {
	TwoFactorEnabled *bool `json:"twoFactorEnabled,omitempty"`
	LoginAlerts      *bool `json:"loginAlerts,omitempty"`
	SessionTimeout   *int  `json:"sessionTimeout,omitempty"`
}

// MergeInto aplica los campos presentes sobre las preferencias actuales.
func (r UpdateSecuritySettingsRequest) MergeInto(s entity.SecuritySettings) entity.SecuritySettings {
	if r.TwoFactorEnabled != nil {
		s.TwoFactorEnabled = *r.TwoFactorEnabled
	}
	if r.LoginAlerts != nil {
		s.LoginAlerts = *r.LoginAlerts
	}
	if r.SessionTimeout != nil {
		s.SessionTimeout = *r.SessionTimeout
	}
	return s
}

// PaymentMethodDTO método de pago.
type PaymentMethodDTO struct {
	Type  string `json:"type"`
	Last4 string `json:"last4"`
	Brand string `json:"brand,omitempty"`
}

// BillingInfoDTO plan y estado de facturación.
type BillingInfoDTO struct {
	Plan            string           `json:"plan"`
	Status          string           `json:"status"`
	NextBillingDate time.Time        `json:"nextBillingDate"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	PaymentMethod   PaymentMethodDTO `json:"paymentMethod"`
}

// FromBilling convierte la entidad a DTO.
func FromBilling(b entity.BillingInfo) BillingInfoDTO {
	return BillingInfoDTO{
		Plan:            b.Plan,
		Status:          b.Status,
		NextBillingDate: b.NextBillingDate,
		Amount:          b.Amount,
		Currency:        b.Currency,
		PaymentMethod: PaymentMethodDTO{
			Type:  b.PaymentMethod.Type,
			Last4: b.PaymentMethod.Last4,
			Brand: b.PaymentMethod.Brand,
		},
	}
}

// ToEntity convierte el DTO a entidad (reemplazo completo).
func (b BillingInfoDTO) ToEntity() entity.BillingInfo {
	return entity.BillingInfo{
		Plan:            b.Plan,
		Status:          b.Status,
		NextBillingDate: b.NextBillingDate,
		Amount:          b.Amount,
		Currency:        b.Currency,
		PaymentMethod: entity.PaymentMethod{
			Type:  b.PaymentMethod.Type,
			Last4: b.PaymentMethod.Last4,
			Brand: b.PaymentMethod.Brand,
		},
	}
}

// ApplicationSettingsDTO preferencias de la aplicación.
type ApplicationSettingsDTO struct {
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	DateFormat         string `json:"dateFormat"`
	Currency           string `json:"currency"`
	Units              string `json:"units"`
	AutoSave           bool   `json:"autoSave"`
	NotificationsSound bool   `json:"notificationsSound"`
	DashboardRefresh   int    `json:"dashboardRefresh"`
}

// UpdateApplicationSettingsRequest actualización parcial: nil conserva.
type UpdateApplicationSettingsRequest struct {
	Theme              *string `json:"theme,omitempty"`
	Language           *string `json:"language,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	DateFormat         *string `json:"dateFormat,omitempty"`
	Currency           *string `json:"currency,omitempty"`
	Units              *string `json:"units,omitempty"`
	AutoSave           *bool   `json:"autoSave,omitempty"`
	NotificationsSound *bool   `json:"notificationsSound,omitempty"`
	DashboardRefresh   *int    `json:"dashboardRefresh,omitempty"`
}

// MergeInto aplica los campos presentes sobre las preferencias actuales.
func (r UpdateApplicationSettingsRequest) MergeInto(a entity.ApplicationSettings) entity.ApplicationSettings {
	if r.Theme != nil {
		a.Theme = *r.Theme
	}
	if r.Language != nil {
		a.Language = *r.Language
	}
	if r.Timezone != nil {
		a.Timezone = *r.Timezone
	}
	if r.DateFormat != nil {
		a.DateFormat = *r.DateFormat
	}
	if r.Currency != nil {
		a.Currency = *r.Currency
	}
	if r.Units != nil {
		a.Units = *r.Units
	}
	if r.AutoSave != nil {
		a.AutoSave = *r.AutoSave
	}
	if r.NotificationsSound != nil {
		a.NotificationsSound = *r.NotificationsSound
	}
	if r.DashboardRefresh != nil {
		a.DashboardRefresh = *r.DashboardRefresh
	}
	return a
}

// SettingsSnapshotResponse snapshot del agregado de configuración.
type SettingsSnapshotResponse struct {
	Profile       *UserProfileDTO         `json:"profile,omitempty"`
	Notifications NotificationSettingsDTO `json:"notifications"`
	Security      SecuritySettingsDTO     `json:"security"`
	Billing       *BillingInfoDTO         `json:"billing,omitempty"`
	Application   ApplicationSettingsDTO  `json:"application"`
	Loading       bool                    `json:"loading"`
	Error         string                  `json:"error,omitempty"`
}

// FromSettingsSnapshot convierte el snapshot del estado a DTO.
func FromSettingsSnapshot(s store.SettingsSnapshot) SettingsSnapshotResponse {
	out := SettingsSnapshotResponse{
		Notifications: NotificationSettingsDTO(s.Notifications),
		Security: SecuritySettingsDTO{
			TwoFactorEnabled:    s.Security.TwoFactorEnabled,
			LoginAlerts:         s.Security.LoginAlerts,
			SessionTimeout:      s.Security.SessionTimeout,
			PasswordLastChanged: s.Security.PasswordLastChanged,
		},
		Application: ApplicationSettingsDTO(s.Application),
		Loading:     s.Loading,
		Error:       s.Error,
	}
	if s.Profile != nil {
		p := FromProfile(*s.Profile)
		out.Profile = &p
	}
	if s.Billing != nil {
		b := FromBilling(*s.Billing)
		out.Billing = &b
	}
	return out
}
