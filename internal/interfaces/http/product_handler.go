package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/application/dto"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
// Cada operación despacha una intención y espera su transición terminal
// antes de responder con el snapshot o el resultado.
type ProductHandler struct {
	bus   *dispatch.Bus
	store *store.Store[entity.Product]
}

// NewProductHandler construye el handler.
func NewProductHandler(bus *dispatch.Bus, st *store.Store[entity.Product]) *ProductHandler {
	return &ProductHandler{bus: bus, store: st}
}

// List godoc
// @Summary      Refrescar y listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductSnapshotResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.FetchIntent{Entity: coordinator.TopicProducts})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromProductSnapshot(h.store.Snapshot()))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y sku son requeridos"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.CreateIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Draft:  in.ToEntity(),
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	created := ticket.Result().(entity.Product)
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(created))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Registro completo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item := in.ToEntity()
	item.ID = id
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.UpdateIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Item:   item,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	updated := ticket.Result().(entity.Product)
	return c.JSON(dto.FromProduct(updated))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductSnapshotResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.DeleteIntent{Entity: coordinator.TopicProducts, ID: id})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromProductSnapshot(h.store.Snapshot()))
}

// Select godoc
// @Summary      Marcar producto en edición
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/select [post]
func (h *ProductHandler) Select(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := h.store.Snapshot()
	var found *entity.Product
	for i := range snap.Items {
		if snap.Items[i].ID == id {
			found = &snap.Items[i]
			break
		}
	}
	if found == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.SelectIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Item:   found,
	})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromProductSnapshot(h.store.Snapshot()))
}

// Deselect godoc
// @Summary      Limpiar la selección de edición
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductSnapshotResponse
// @Router       /api/products/select [delete]
func (h *ProductHandler) Deselect(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.SelectIntent[entity.Product]{Entity: coordinator.TopicProducts})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromProductSnapshot(h.store.Snapshot()))
}

// ClearError godoc
// @Summary      Limpiar el error del slice de productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductSnapshotResponse
// @Router       /api/products/clear-error [post]
func (h *ProductHandler) ClearError(c *fiber.Ctx) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), coordinator.ClearErrorIntent{Entity: coordinator.TopicProducts})
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromProductSnapshot(h.store.Snapshot()))
}
