package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/application/dto"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// SettingsHandler maneja el agregado de configuración de la cuenta
// (protegido). Perfil, contraseña y carga inicial pasan por el backend;
// las preferencias son actualizaciones inmediatas.
type SettingsHandler struct {
	bus   *dispatch.Bus
	state *store.SettingsState
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(bus *dispatch.Bus, state *store.SettingsState) *SettingsHandler {
	return &SettingsHandler{bus: bus, state: state}
}

// Get godoc
// @Summary      Cargar la configuración de la cuenta
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsSnapshotResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.FetchSettingsIntent{})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// UpdateProfile godoc
// @Summary      Actualizar el perfil
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a cambiar; los omitidos se conservan"
// @Success      200   {object}  dto.SettingsSnapshotResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap := h.state.Snapshot()
	if snap.Profile == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_LOADED", Message: "la configuración no ha sido cargada"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateProfileIntent{Profile: in.MergeInto(*snap.Profile)})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseña actual y nueva"
// @Success      200   {object}  dto.SettingsSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/password [post]
func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "currentPassword y newPassword son requeridos"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.ChangePasswordIntent{
		Email:           GetEmail(c),
		CurrentPassword: in.CurrentPassword,
		NewPassword:     in.NewPassword,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrPasswordTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_TOO_SHORT", Message: err.Error()})
		}
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// UpdateNotifications godoc
// @Summary      Actualizar las preferencias de notificación
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateNotificationSettingsRequest  true  "Campos a cambiar; los omitidos se conservan"
// @Success      200   {object}  dto.SettingsSnapshotResponse
// @Router       /api/settings/notifications [put]
func (h *SettingsHandler) UpdateNotifications(c *fiber.Ctx) error {
	var in dto.UpdateNotificationSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap := h.state.Snapshot()
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateNotificationsIntent{Settings: in.MergeInto(snap.Notifications)})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// UpdateSecurity godoc
// @Summary      Actualizar las preferencias de seguridad
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSecuritySettingsRequest  true  "Campos a cambiar; los omitidos se conservan"
// @Success      200   {object}  dto.SettingsSnapshotResponse
// @Router       /api/settings/security [put]
func (h *SettingsHandler) UpdateSecurity(c *fiber.Ctx) error {
	var in dto.UpdateSecuritySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap := h.state.Snapshot()
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateSecurityIntent{Settings: in.MergeInto(snap.Security)})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// UpdateBilling godoc
// @Summary      Reemplazar la información de facturación
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BillingInfoDTO  true  "Registro completo; se ignora si la configuración no fue cargada"
// @Success      200   {object}  dto.SettingsSnapshotResponse
// @Router       /api/settings/billing [put]
func (h *SettingsHandler) UpdateBilling(c *fiber.Ctx) error {
	var in dto.BillingInfoDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateBillingIntent{Billing: in.ToEntity()})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// UpdateApplication godoc
// @Summary      Actualizar las preferencias de la aplicación
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateApplicationSettingsRequest  true  "Campos a cambiar; los omitidos se conservan"
// @Success      200   {object}  dto.SettingsSnapshotResponse
// @Router       /api/settings/application [put]
func (h *SettingsHandler) UpdateApplication(c *fiber.Ctx) error {
	var in dto.UpdateApplicationSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap := h.state.Snapshot()
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateApplicationIntent{Settings: in.MergeInto(snap.Application)})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}

// ClearError godoc
// @Summary      Limpiar el error de configuración
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsSnapshotResponse
// @Router       /api/settings/clear-error [post]
func (h *SettingsHandler) ClearError(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.ClearErrorIntent{Entity: coordinator.TopicSettings})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromSettingsSnapshot(h.state.Snapshot()))
}
