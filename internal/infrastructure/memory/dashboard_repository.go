package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo backend simulado del tablero. Stats y distribución se
// derivan de las colecciones vivas de órdenes, productos y entregas; la
// serie de ingresos es sembrada.
type DashboardRepo struct {
	lat        Latency
	products   *ProductRepo
	orders     *OrderRepo
	deliveries *DeliveryRepo
	revenue    []entity.RevenuePoint
}

func newDashboardRepo(lat Latency, products *ProductRepo, orders *OrderRepo, deliveries *DeliveryRepo) *DashboardRepo {
	return &DashboardRepo{
		lat:        lat,
		products:   products,
		orders:     orders,
		deliveries: deliveries,
		revenue: []entity.RevenuePoint{
			{Month: "Jan", Revenue: decimal.NewFromInt(12000)},
			{Month: "Feb", Revenue: decimal.NewFromInt(15000)},
			{Month: "Mar", Revenue: decimal.NewFromInt(18000)},
			{Month: "Apr", Revenue: decimal.NewFromInt(22000)},
			{Month: "May", Revenue: decimal.NewFromInt(25000)},
			{Month: "Jun", Revenue: decimal.NewFromInt(28000)},
		},
	}
}

// Stats deriva las métricas agregadas del estado actual del backend.
func (r *DashboardRepo) Stats(ctx context.Context) (entity.Stats, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return entity.Stats{}, err
	}
	orders := r.orders.list()
	income := decimal.Zero
	for _, o := range orders {
		if o.Status != entity.OrderStatusCancelled {
			income = income.Add(o.TotalAmount)
		}
	}
	active := 0
	for _, p := range r.products.list() {
		if p.Stock > 0 {
			active++
		}
	}
	pending := 0
	for _, d := range r.deliveries.list() {
		if d.Status == entity.DeliveryStatusScheduled || d.Status == entity.DeliveryStatusInTransit {
			pending++
		}
	}
	return entity.Stats{
		TotalOrders:       len(orders),
		MonthlyIncome:     income,
		ActiveProducts:    active,
		PendingDeliveries: pending,
	}, nil
}

// Revenue devuelve la serie de ingresos mensuales.
func (r *DashboardRepo) Revenue(ctx context.Context) ([]entity.RevenuePoint, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return nil, err
	}
	out := make([]entity.RevenuePoint, len(r.revenue))
	copy(out, r.revenue)
	return out, nil
}

// Distribution cuenta órdenes por cada estado del enum, incluyendo ceros.
func (r *DashboardRepo) Distribution(ctx context.Context) ([]entity.OrderDistribution, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, o := range r.orders.list() {
		counts[o.Status]++
	}
	statuses := []string{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	}
	out := make([]entity.OrderDistribution, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, entity.OrderDistribution{Status: st, Count: counts[st]})
	}
	return out, nil
}
