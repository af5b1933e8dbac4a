package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/application/dto"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// OrderHandler maneja las peticiones HTTP para órdenes (protegido).
type OrderHandler struct {
	bus   *dispatch.Bus
	store *store.Store[entity.Order]
}

// NewOrderHandler construye el handler.
func NewOrderHandler(bus *dispatch.Bus, st *store.Store[entity.Order]) *OrderHandler {
	return &OrderHandler{bus: bus, store: st}
}

// List godoc
// @Summary      Refrescar y listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderSnapshotResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.FetchIntent{Entity: coordinator.TopicOrders})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromOrderSnapshot(h.store.Snapshot()))
}

// Create godoc
// @Summary      Crear orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden; número y total los genera el backend"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerName == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerName y al menos un item son requeridos"})
	}
	if in.Status != "" && !entity.IsValidOrderStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de orden desconocido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.CreateIntent[entity.Order]{
		Entity: coordinator.TopicOrders,
		Draft:  in.ToEntity(),
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	created := ticket.Result().(entity.Order)
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(created))
}

// Update godoc
// @Summary      Actualizar orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Registro completo; el total se recalcula"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status != "" && !entity.IsValidOrderStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de orden desconocido"})
	}
	item := in.ToEntity()
	item.ID = id
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateIntent[entity.Order]{
		Entity: coordinator.TopicOrders,
		Item:   item,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	updated := ticket.Result().(entity.Order)
	return c.JSON(dto.FromOrder(updated))
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.StatusRequest  true  "Estado nuevo"
// @Success      200   {object}  dto.OrderSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.IsValidOrderStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de orden desconocido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.StatusIntent{
		Entity: coordinator.TopicOrders,
		ID:     id,
		Status: in.Status,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromOrderSnapshot(h.store.Snapshot()))
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderSnapshotResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.DeleteIntent{Entity: coordinator.TopicOrders, ID: id})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromOrderSnapshot(h.store.Snapshot()))
}

// Select godoc
// @Summary      Marcar orden en edición
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/select [post]
func (h *OrderHandler) Select(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := h.store.Snapshot()
	var found *entity.Order
	for i := range snap.Items {
		if snap.Items[i].ID == id {
			found = &snap.Items[i]
			break
		}
	}
	if found == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.SelectIntent[entity.Order]{
		Entity: coordinator.TopicOrders,
		Item:   found,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromOrderSnapshot(h.store.Snapshot()))
}

// Deselect godoc
// @Summary      Limpiar la selección de edición
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderSnapshotResponse
// @Router       /api/orders/select [delete]
func (h *OrderHandler) Deselect(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.SelectIntent[entity.Order]{Entity: coordinator.TopicOrders})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromOrderSnapshot(h.store.Snapshot()))
}

// ClearError godoc
// @Summary      Limpiar el error del slice de órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderSnapshotResponse
// @Router       /api/orders/clear-error [post]
func (h *OrderHandler) ClearError(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.ClearErrorIntent{Entity: coordinator.TopicOrders})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromOrderSnapshot(h.store.Snapshot()))
}
