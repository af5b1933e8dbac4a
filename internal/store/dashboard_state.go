package store

import (
	"sync"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// DashboardSnapshot vista de solo lectura de las métricas del tablero.
type DashboardSnapshot struct {
	Stats        *entity.Stats
	Revenue      []entity.RevenuePoint
	Distribution []entity.OrderDistribution
	Loading      bool
	Error        string
}

// DashboardState métricas agregadas del tablero: stats, serie de ingresos
// y distribución de órdenes por estado.
type DashboardState struct {
	mu           sync.RWMutex
	stats        *entity.Stats
	revenue      []entity.RevenuePoint
	distribution []entity.OrderDistribution
	loading      bool
	err          string
}

// NewDashboardState construye el estado del tablero vacío.
func NewDashboardState() *DashboardState {
	return &DashboardState{}
}

// BeginRequest marca la petición en curso.
func (s *DashboardState) BeginRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// ApplyStats fija las métricas agregadas.
func (s *DashboardState) ApplyStats(stats entity.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &stats
	s.loading = false
	s.err = ""
}

// ApplyRevenue fija la serie de ingresos mensuales.
func (s *DashboardState) ApplyRevenue(points []entity.RevenuePoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue = points
	s.loading = false
	s.err = ""
}

// ApplyDistribution fija la distribución de órdenes por estado.
func (s *DashboardState) ApplyDistribution(dist []entity.OrderDistribution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.distribution = dist
	s.loading = false
	s.err = ""
}

// SetError registra el mensaje de fallo y apaga loading.
func (s *DashboardState) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = message
}

// ClearError limpia el error.
func (s *DashboardState) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot devuelve una vista de las métricas actuales.
func (s *DashboardState) Snapshot() DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	revenue := make([]entity.RevenuePoint, len(s.revenue))
	copy(revenue, s.revenue)
	dist := make([]entity.OrderDistribution, len(s.distribution))
	copy(dist, s.distribution)
	return DashboardSnapshot{
		Stats:        s.stats,
		Revenue:      revenue,
		Distribution: dist,
		Loading:      s.loading,
		Error:        s.err,
	}
}
