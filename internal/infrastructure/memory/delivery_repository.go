package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo backend simulado de entregas.
type DeliveryRepo struct {
	lat Latency
	seq *sequence

	mu         sync.Mutex
	deliveries []entity.Delivery
}

func newDeliveryRepo(lat Latency) *DeliveryRepo {
	now := time.Now()
	return &DeliveryRepo{
		lat: lat,
		seq: newSequence("DEL", 3),
		deliveries: []entity.Delivery{
			{
				ID:             "1",
				DeliveryNumber: "DEL-001",
				OrderID:        "1",
				OrderNumber:    "ORD-001",
				CustomerName:   "John Doe",
				CustomerPhone:  "+1-555-0123",
				DeliveryAddress: entity.Address{
					Street:  "123 Main St",
					City:    "New York",
					State:   "NY",
					ZipCode: "10001",
					Country: "USA",
				},
				ScheduledDate:         now.AddDate(0, 0, 2).Format("2006-01-02"),
				ScheduledTime:         "14:00",
				Status:                entity.DeliveryStatusScheduled,
				DriverName:            "Mike Johnson",
				DriverPhone:           "+1-555-0789",
				VehicleNumber:         "VH-001",
				EstimatedDeliveryTime: "14:00-16:00",
				Notes:                 "Customer prefers afternoon delivery",
				CreatedAt:             now,
				UpdatedAt:             now,
			},
			{
				ID:             "2",
				DeliveryNumber: "DEL-002",
				OrderID:        "2",
				OrderNumber:    "ORD-002",
				CustomerName:   "Jane Smith",
				CustomerPhone:  "+1-555-0456",
				DeliveryAddress: entity.Address{
					Street:  "456 Oak Ave",
					City:    "Los Angeles",
					State:   "CA",
					ZipCode: "90210",
					Country: "USA",
				},
				ScheduledDate:         now.AddDate(0, 0, 1).Format("2006-01-02"),
				ScheduledTime:         "10:00",
				Status:                entity.DeliveryStatusInTransit,
				DriverName:            "Sarah Wilson",
				DriverPhone:           "+1-555-0321",
				VehicleNumber:         "VH-002",
				EstimatedDeliveryTime: "10:00-12:00",
				CreatedAt:             now,
				UpdatedAt:             now,
			},
		},
	}
}

// FetchAll devuelve una copia de la colección completa.
func (r *DeliveryRepo) FetchAll(ctx context.Context) ([]entity.Delivery, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out, nil
}

// Create asigna identidad, número de entrega y sellos de fecha.
func (r *DeliveryRepo) Create(ctx context.Context, draft entity.Delivery) (entity.Delivery, error) {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return entity.Delivery{}, err
	}
	now := time.Now()
	draft.ID = newID()
	draft.DeliveryNumber = r.seq.Next()
	if draft.Status == "" {
		draft.Status = entity.DeliveryStatusScheduled
	}
	draft.CreatedAt = now
	draft.UpdatedAt = now
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, draft)
	return draft, nil
}

// Update reemplaza in situ (si existe), refrescando el sello.
func (r *DeliveryRepo) Update(ctx context.Context, delivery entity.Delivery) (entity.Delivery, error) {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return entity.Delivery{}, err
	}
	delivery.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.deliveries {
		if r.deliveries[i].ID == delivery.ID {
			delivery.CreatedAt = r.deliveries[i].CreatedAt
			delivery.DeliveryNumber = r.deliveries[i].DeliveryNumber
			r.deliveries[i] = delivery
			break
		}
	}
	return delivery, nil
}

// Delete elimina por identidad. Ausente: no-op.
func (r *DeliveryRepo) Delete(ctx context.Context, id string) error {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.deliveries[:0]
	for _, d := range r.deliveries {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	r.deliveries = kept
	return nil
}

// UpdateStatus muta el estado con la misma regla del store: al pasar a
// "delivered" sella ActualDeliveryTime incondicionalmente.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.deliveries {
		if r.deliveries[i].ID == id {
			r.deliveries[i] = entityDeliveryWithStatus(r.deliveries[i], status)
			break
		}
	}
	return nil
}

func entityDeliveryWithStatus(d entity.Delivery, status string) entity.Delivery {
	d.Status = status
	d.UpdatedAt = time.Now()
	if status == entity.DeliveryStatusDelivered {
		now := time.Now()
		d.ActualDeliveryTime = &now
	}
	return d
}

// list copia la colección sin latencia (uso interno del tablero).
func (r *DeliveryRepo) list() []entity.Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}
