package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/application/dto"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// DeliveryHandler maneja las peticiones HTTP para entregas (protegido).
type DeliveryHandler struct {
	bus   *dispatch.Bus
	store *store.Store[entity.Delivery]
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(bus *dispatch.Bus, st *store.Store[entity.Delivery]) *DeliveryHandler {
	return &DeliveryHandler{bus: bus, store: st}
}

// List godoc
// @Summary      Refrescar y listar entregas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeliverySnapshotResponse
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.FetchIntent{Entity: coordinator.TopicDeliveries})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDeliverySnapshot(h.store.Snapshot()))
}

// Create godoc
// @Summary      Programar entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos de la entrega; número lo genera el backend"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" || in.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderId y customerName son requeridos"})
	}
	if in.Status != "" && !entity.IsValidDeliveryStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de entrega desconocido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.CreateIntent[entity.Delivery]{
		Entity: coordinator.TopicDeliveries,
		Draft:  in.ToEntity(),
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	created := ticket.Result().(entity.Delivery)
	return c.Status(fiber.StatusCreated).JSON(dto.FromDelivery(created))
}

// Update godoc
// @Summary      Actualizar entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrega"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "Registro completo"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status != "" && !entity.IsValidDeliveryStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de entrega desconocido"})
	}
	item := in.ToEntity()
	item.ID = id
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateIntent[entity.Delivery]{
		Entity: coordinator.TopicDeliveries,
		Item:   item,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	updated := ticket.Result().(entity.Delivery)
	return c.JSON(dto.FromDelivery(updated))
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrega"
// @Param        body  body  dto.StatusRequest  true  "Estado nuevo; delivered sella la hora real de entrega"
// @Success      200   {object}  dto.DeliverySnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/status [patch]
func (h *DeliveryHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.IsValidDeliveryStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de entrega desconocido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.StatusIntent{
		Entity: coordinator.TopicDeliveries,
		ID:     id,
		Status: in.Status,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDeliverySnapshot(h.store.Snapshot()))
}

// Delete godoc
// @Summary      Eliminar entrega
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.DeliverySnapshotResponse
// @Router       /api/deliveries/{id} [delete]
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.DeleteIntent{Entity: coordinator.TopicDeliveries, ID: id})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDeliverySnapshot(h.store.Snapshot()))
}

// Select godoc
// @Summary      Marcar entrega en edición
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.DeliverySnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/select [post]
func (h *DeliveryHandler) Select(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := h.store.Snapshot()
	var found *entity.Delivery
	for i := range snap.Items {
		if snap.Items[i].ID == id {
			found = &snap.Items[i]
			break
		}
	}
	if found == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrega no encontrada"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.SelectIntent[entity.Delivery]{
		Entity: coordinator.TopicDeliveries,
		Item:   found,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDeliverySnapshot(h.store.Snapshot()))
}

// Deselect godoc
// @Summary      Limpiar la selección de edición
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeliverySnapshotResponse
// @Router       /api/deliveries/select [delete]
func (h *DeliveryHandler) Deselect(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.SelectIntent[entity.Delivery]{Entity: coordinator.TopicDeliveries})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDeliverySnapshot(h.store.Snapshot()))
}

// ClearError godoc
// @Summary      Limpiar el error del slice de entregas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeliverySnapshotResponse
// @Router       /api/deliveries/clear-error [post]
func (h *DeliveryHandler) ClearError(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.ClearErrorIntent{Entity: coordinator.TopicDeliveries})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDeliverySnapshot(h.store.Snapshot()))
}
