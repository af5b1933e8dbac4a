package entity

import "time"

// Estados válidos para Delivery.
const (
	DeliveryStatusScheduled = "scheduled"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
	DeliveryStatusCancelled = "cancelled"
)

// IsValidDeliveryStatus indica si el estado pertenece al enum de Delivery.
func IsValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryStatusScheduled, DeliveryStatusInTransit, DeliveryStatusDelivered,
		DeliveryStatusFailed, DeliveryStatusCancelled:
		return true
	}
	return false
}

// Delivery representa una entrega programada. Referencia la orden por ID
// y duplica OrderNumber, contacto y dirección del cliente al momento de crearla.
// ActualDeliveryTime se sella cada vez que el estado pasa a "delivered"
// (sobrescritura idempotente, incluso si ya estaba entregada).
type Delivery struct {
	ID                    string
	DeliveryNumber        string // generado, formato DEL-xxx
	OrderID               string
	OrderNumber           string
	CustomerName          string
	CustomerPhone         string
	DeliveryAddress       Address
	ScheduledDate         string // YYYY-MM-DD
	ScheduledTime         string // HH:MM
	Status                string
	DriverName            string
	DriverPhone           string
	VehicleNumber         string
	EstimatedDeliveryTime string // ventana estimada, ej. "14:00-16:00"
	ActualDeliveryTime    *time.Time
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// EntityID implementa store.Identifiable.
func (d Delivery) EntityID() string { return d.ID }
