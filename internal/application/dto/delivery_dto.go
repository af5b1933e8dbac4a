package dto

import (
	"time"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// CreateDeliveryRequest datos para programar una entrega. Número y sellos
// los genera el backend; contacto y dirección vienen copiados de la orden.
type CreateDeliveryRequest struct {
	OrderID               string     `json:"orderId"`
	OrderNumber           string     `json:"orderNumber"`
	CustomerName          string     `json:"customerName"`
	CustomerPhone         string     `json:"customerPhone"`
	DeliveryAddress       AddressDTO `json:"deliveryAddress"`
	ScheduledDate         string     `json:"scheduledDate"`
	ScheduledTime         string     `json:"scheduledTime"`
	Status                string     `json:"status,omitempty"`
	DriverName            string     `json:"driverName,omitempty"`
	DriverPhone           string     `json:"driverPhone,omitempty"`
	VehicleNumber         string     `json:"vehicleNumber,omitempty"`
	EstimatedDeliveryTime string     `json:"estimatedDeliveryTime,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
}

// ToEntity convierte la petición en borrador de entidad.
func (r CreateDeliveryRequest) ToEntity() entity.Delivery {
	return entity.Delivery{
		OrderID:               r.OrderID,
		OrderNumber:           r.OrderNumber,
		CustomerName:          r.CustomerName,
		CustomerPhone:         r.CustomerPhone,
		DeliveryAddress:       r.DeliveryAddress.ToEntity(),
		ScheduledDate:         r.ScheduledDate,
		ScheduledTime:         r.ScheduledTime,
		Status:                r.Status,
		DriverName:            r.DriverName,
		DriverPhone:           r.DriverPhone,
		VehicleNumber:         r.VehicleNumber,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		Notes:                 r.Notes,
	}
}

// UpdateDeliveryRequest registro completo para reemplazo in situ.
type UpdateDeliveryRequest struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	OrderNumber           string     `json:"orderNumber"`
	CustomerName          string     `json:"customerName"`
	CustomerPhone         string     `json:"customerPhone"`
	DeliveryAddress       AddressDTO `json:"deliveryAddress"`
	ScheduledDate         string     `json:"scheduledDate"`
	ScheduledTime         string     `json:"scheduledTime"`
	Status                string     `json:"status"`
	DriverName            string     `json:"driverName,omitempty"`
	DriverPhone           string     `json:"driverPhone,omitempty"`
	VehicleNumber         string     `json:"vehicleNumber,omitempty"`
	EstimatedDeliveryTime string     `json:"estimatedDeliveryTime,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
}

// ToEntity convierte la petición en entidad.
func (r UpdateDeliveryRequest) ToEntity() entity.Delivery {
	return entity.Delivery{
		ID:                    r.ID,
		OrderID:               r.OrderID,
		OrderNumber:           r.OrderNumber,
		CustomerName:          r.CustomerName,
		CustomerPhone:         r.CustomerPhone,
		DeliveryAddress:       r.DeliveryAddress.ToEntity(),
		ScheduledDate:         r.ScheduledDate,
		ScheduledTime:         r.ScheduledTime,
		Status:                r.Status,
		DriverName:            r.DriverName,
		DriverPhone:           r.DriverPhone,
		VehicleNumber:         r.VehicleNumber,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		Notes:                 r.Notes,
	}
}

// DeliveryResponse representación de salida de una entrega.
type DeliveryResponse struct {
	ID                    string     `json:"id"`
	DeliveryNumber        string     `json:"deliveryNumber"`
	OrderID               string     `json:"orderId"`
	OrderNumber           string     `json:"orderNumber"`
	CustomerName          string     `json:"customerName"`
	CustomerPhone         string     `json:"customerPhone"`
	DeliveryAddress       AddressDTO `json:"deliveryAddress"`
	ScheduledDate         string     `json:"scheduledDate"`
	ScheduledTime         string     `json:"scheduledTime"`
	Status                string     `json:"status"`
	DriverName            string     `json:"driverName,omitempty"`
	DriverPhone           string     `json:"driverPhone,omitempty"`
	VehicleNumber         string     `json:"vehicleNumber,omitempty"`
	EstimatedDeliveryTime string     `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// FromDelivery convierte la entidad a DTO de salida.
func FromDelivery(d entity.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:                    d.ID,
		DeliveryNumber:        d.DeliveryNumber,
		OrderID:               d.OrderID,
		OrderNumber:           d.OrderNumber,
		CustomerName:          d.CustomerName,
		CustomerPhone:         d.CustomerPhone,
		DeliveryAddress:       FromAddress(d.DeliveryAddress),
		ScheduledDate:         d.ScheduledDate,
		ScheduledTime:         d.ScheduledTime,
		Status:                d.Status,
		DriverName:            d.DriverName,
		DriverPhone:           d.DriverPhone,
		VehicleNumber:         d.VehicleNumber,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		Notes:                 d.Notes,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

// DeliverySnapshotResponse snapshot del slice de entregas.
type DeliverySnapshotResponse struct {
	Items    []DeliveryResponse `json:"items"`
	Loading  bool               `json:"loading"`
	Error    string             `json:"error,omitempty"`
	Selected *DeliveryResponse  `json:"selected,omitempty"`
}

// FromDeliverySnapshot convierte el snapshot del store a DTO.
func FromDeliverySnapshot(s store.Snapshot[entity.Delivery]) DeliverySnapshotResponse {
	items := make([]DeliveryResponse, 0, len(s.Items))
	for _, d := range s.Items {
		items = append(items, FromDelivery(d))
	}
	out := DeliverySnapshotResponse{Items: items, Loading: s.Loading, Error: s.Error}
	if s.Selected != nil {
		sel := FromDelivery(*s.Selected)
		out.Selected = &sel
	}
	return out
}
