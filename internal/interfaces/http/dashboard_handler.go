package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/application/dto"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// DashboardHandler maneja las métricas del tablero (protegido).
type DashboardHandler struct {
	bus   *dispatch.Bus
	state *store.DashboardState
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(bus *dispatch.Bus, state *store.DashboardState) *DashboardHandler {
	return &DashboardHandler{bus: bus, state: state}
}

// Get godoc
// @Summary      Cargar el tablero completo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSnapshotResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	// Las tres cargas corren como tareas independientes y se esperan juntas.
	intents := []dispatch.Intent{
		coordinator.FetchStatsIntent{},
		coordinator.FetchRevenueIntent{},
		coordinator.FetchDistributionIntent{},
	}
	tickets := make([]*dispatch.Ticket, 0, len(intents))
	for _, in := range intents {
		ticket, err := h.bus.Dispatch(c.UserContext(), in)
		if err != nil {
			return replyUnavailable(c, err)
		}
		tickets = append(tickets, ticket)
	}
	for _, ticket := range tickets {
		if err := ticket.Wait(c.UserContext()); err != nil {
			return replyInternal(c, err)
		}
	}
	return c.JSON(dto.FromDashboardSnapshot(h.state.Snapshot()))
}

// Stats godoc
// @Summary      Cargar las métricas agregadas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSnapshotResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return h.fetch(c, coordinator.FetchStatsIntent{})
}

// Revenue godoc
// @Summary      Cargar la serie de ingresos mensuales
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSnapshotResponse
// @Router       /api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	return h.fetch(c, coordinator.FetchRevenueIntent{})
}

// Distribution godoc
// @Summary      Cargar la distribución de órdenes por estado
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSnapshotResponse
// @Router       /api/dashboard/distribution [get]
func (h *DashboardHandler) Distribution(c *fiber.Ctx) error {
	return h.fetch(c, coordinator.FetchDistributionIntent{})
}

// ClearError godoc
// @Summary      Limpiar el error del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSnapshotResponse
// @Router       /api/dashboard/clear-error [post]
func (h *DashboardHandler) ClearError(c *fiber.Ctx) error {
	return h.fetch(c, coordinator.ClearErrorIntent{Entity: coordinator.TopicDashboard})
}

func (h *DashboardHandler) fetch(c *fiber.Ctx, intent dispatch.Intent) error {
	ticket, err := h.bus.Dispatch(c.UserContext(), intent)
	if err != nil {
		return replyUnavailable(c, err)
	}
	if err := ticket.Wait(c.UserContext()); err != nil {
		return replyInternal(c, err)
	}
	return c.JSON(dto.FromDashboardSnapshot(h.state.Snapshot()))
}
