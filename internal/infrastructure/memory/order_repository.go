package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo backend simulado de órdenes. Recalcula TotalAmount desde las
// líneas en cada create/update, de modo que el invariante total = suma de
// subtotales se cumple siempre.
type OrderRepo struct {
	lat Latency
	seq *sequence

	mu     sync.Mutex
	orders []entity.Order
}

func newOrderRepo(lat Latency) *OrderRepo {
	now := time.Now()
	return &OrderRepo{
		lat: lat,
		seq: newSequence("ORD", 3),
		orders: []entity.Order{
			{
				ID:            "1",
				OrderNumber:   "ORD-001",
				CustomerName:  "John Doe",
				CustomerEmail: "john.doe@example.com",
				CustomerPhone: "+1-555-0123",
				Items: []entity.OrderItem{
					{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 2, Price: decimal.NewFromFloat(199.99)},
					{ProductID: "2", ProductName: "Smart Watch", Quantity: 1, Price: decimal.NewFromFloat(299.99)},
				},
				TotalAmount: decimal.NewFromFloat(699.97),
				Status:      entity.OrderStatusProcessing,
				ShippingAddress: entity.Address{
					Street:  "123 Main St",
					City:    "New York",
					State:   "NY",
					ZipCode: "10001",
					Country: "USA",
				},
				OrderDate: now,
				Notes:     "Please handle with care",
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:            "2",
				OrderNumber:   "ORD-002",
				CustomerName:  "Jane Smith",
				CustomerEmail: "jane.smith@example.com",
				CustomerPhone: "+1-555-0456",
				Items: []entity.OrderItem{
					{ProductID: "3", ProductName: "Coffee Maker", Quantity: 1, Price: decimal.NewFromFloat(89.99)},
				},
				TotalAmount: decimal.NewFromFloat(89.99),
				Status:      entity.OrderStatusPending,
				ShippingAddress: entity.Address{
					Street:  "456 Oak Ave",
					City:    "Los Angeles",
					State:   "CA",
					ZipCode: "90210",
					Country: "USA",
				},
				OrderDate: now,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}
}

// FetchAll devuelve una copia de la colección completa.
func (r *OrderRepo) FetchAll(ctx context.Context) ([]entity.Order, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Create asigna identidad, número de orden y sellos, y recalcula el total.
func (r *OrderRepo) Create(ctx context.Context, draft entity.Order) (entity.Order, error) {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return entity.Order{}, err
	}
	now := time.Now()
	draft.ID = newID()
	draft.OrderNumber = r.seq.Next()
	draft.TotalAmount = draft.ItemsTotal()
	if draft.Status == "" {
		draft.Status = entity.OrderStatusPending
	}
	if draft.OrderDate.IsZero() {
		draft.OrderDate = now
	}
	draft.CreatedAt = now
	draft.UpdatedAt = now
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, draft)
	return draft, nil
}

// Update reemplaza in situ (si existe), recalculando el total y el sello.
func (r *OrderRepo) Update(ctx context.Context, order entity.Order) (entity.Order, error) {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return entity.Order{}, err
	}
	order.TotalAmount = order.ItemsTotal()
	order.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			order.CreatedAt = r.orders[i].CreatedAt
			order.OrderNumber = r.orders[i].OrderNumber
			r.orders[i] = order
			break
		}
	}
	return order, nil
}

// Delete elimina por identidad. Ausente: no-op.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.orders[:0]
	for _, o := range r.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.orders = kept
	return nil
}

// UpdateStatus muta el estado y refresca el sello. Ausente: no-op.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			break
		}
	}
	return nil
}

// list copia la colección sin latencia (uso interno del tablero).
func (r *OrderRepo) list() []entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Order, len(r.orders))
	copy(out, r.orders)
	return out
}
