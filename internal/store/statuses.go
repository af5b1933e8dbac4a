package store

import (
	"time"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// OrderStatusFunc regla de cambio de estado para Order: muta el estado y
// refresca el sello de actualización.
func OrderStatusFunc(o entity.Order, status string) entity.Order {
	o.Status = status
	o.UpdatedAt = time.Now()
	return o
}

// DeliveryStatusFunc regla de cambio de estado para Delivery. Al pasar a
// "delivered" sella ActualDeliveryTime siempre, incluso si la entrega ya
// estaba entregada (sobrescritura idempotente).
func DeliveryStatusFunc(d entity.Delivery, status string) entity.Delivery {
	d.Status = status
	d.UpdatedAt = time.Now()
	if status == entity.DeliveryStatusDelivered {
		now := time.Now()
		d.ActualDeliveryTime = &now
	}
	return d
}
