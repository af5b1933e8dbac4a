package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/money"
)

// StatsResponse métricas agregadas del tablero.
type StatsResponse struct {
	TotalOrders            int             `json:"totalOrders"`
	MonthlyIncome          decimal.Decimal `json:"monthlyIncome"`
	MonthlyIncomeFormatted string          `json:"monthlyIncomeFormatted"`
	ActiveProducts         int             `json:"activeProducts"`
	PendingDeliveries      int             `json:"pendingDeliveries"`
}

// FromStats convierte las métricas agregadas a respuesta.
func FromStats(s entity.Stats) StatsResponse {
	return StatsResponse{
		TotalOrders:            s.TotalOrders,
		MonthlyIncome:          s.MonthlyIncome,
		MonthlyIncomeFormatted: money.Format(s.MonthlyIncome, "USD"),
		ActiveProducts:         s.ActiveProducts,
		PendingDeliveries:      s.PendingDeliveries,
	}
}

// RevenuePointResponse punto de la serie de ingresos mensuales.
type RevenuePointResponse struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// OrderDistributionResponse conteo de órdenes por estado.
type OrderDistributionResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardSnapshotResponse vista completa del estado del tablero.
type DashboardSnapshotResponse struct {
	Stats        *StatsResponse              `json:"stats"`
	Revenue      []RevenuePointResponse      `json:"revenue"`
	Distribution []OrderDistributionResponse `json:"distribution"`
	Loading      bool                        `json:"loading"`
	Error        string                      `json:"error,omitempty"`
}

// FromDashboardSnapshot convierte la vista del estado a respuesta.
func FromDashboardSnapshot(s store.DashboardSnapshot) DashboardSnapshotResponse {
	resp := DashboardSnapshotResponse{
		Revenue:      make([]RevenuePointResponse, 0, len(s.Revenue)),
		Distribution: make([]OrderDistributionResponse, 0, len(s.Distribution)),
		Loading:      s.Loading,
		Error:        s.Error,
	}
	if s.Stats != nil {
		stats := FromStats(*s.Stats)
		resp.Stats = &stats
	}
	for _, p := range s.Revenue {
		resp.Revenue = append(resp.Revenue, RevenuePointResponse{Month: p.Month, Revenue: p.Revenue})
	}
	for _, d := range s.Distribution {
		resp.Distribution = append(resp.Distribution, OrderDistributionResponse{Status: d.Status, Count: d.Count})
	}
	return resp
}
