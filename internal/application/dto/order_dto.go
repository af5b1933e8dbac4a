package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/money"
)

// OrderItemDTO línea de orden en peticiones y respuestas.
type OrderItemDTO struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// ToEntity convierte la línea a entidad.
func (i OrderItemDTO) ToEntity() entity.OrderItem {
	return entity.OrderItem{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Price:       i.Price,
	}
}

func itemsToEntity(items []OrderItemDTO) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToEntity())
	}
	return out
}

func itemsFromEntity(items []entity.OrderItem) []OrderItemDTO {
	out := make([]OrderItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return out
}

// CreateOrderRequest datos para crear una orden. Número y total los
// genera/recalcula el backend.
type CreateOrderRequest struct {
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	Items           []OrderItemDTO `json:"items"`
	Status          string         `json:"status,omitempty"`
	ShippingAddress AddressDTO     `json:"shippingAddress"`
	Notes           string         `json:"notes,omitempty"`
}

// ToEntity convierte la petición en borrador de entidad.
func (r CreateOrderRequest) ToEntity() entity.Order {
	return entity.Order{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Items:           itemsToEntity(r.Items),
		Status:          r.Status,
		ShippingAddress: r.ShippingAddress.ToEntity(),
		Notes:           r.Notes,
	}
}

// UpdateOrderRequest registro completo para reemplazo in situ.
type UpdateOrderRequest struct {
	ID              string         `json:"id"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	Items           []OrderItemDTO `json:"items"`
	Status          string         `json:"status"`
	ShippingAddress AddressDTO     `json:"shippingAddress"`
	Notes           string         `json:"notes,omitempty"`
}

// ToEntity convierte la petición en entidad.
func (r UpdateOrderRequest) ToEntity() entity.Order {
	return entity.Order{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Items:           itemsToEntity(r.Items),
		Status:          r.Status,
		ShippingAddress: r.ShippingAddress.ToEntity(),
		Notes:           r.Notes,
	}
}

// StatusRequest cambio de estado de una orden o entrega.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación de salida de una orden.
type OrderResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	Items           []OrderItemDTO  `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	TotalFormatted  string          `json:"totalFormatted"`
	Status          string          `json:"status"`
	ShippingAddress AddressDTO      `json:"shippingAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	DeliveryDate    *time.Time      `json:"deliveryDate,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// FromOrder convierte la entidad a DTO de salida.
func FromOrder(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		Items:           itemsFromEntity(o.Items),
		TotalAmount:     o.TotalAmount,
		TotalFormatted:  money.Format(o.TotalAmount, "USD"),
		Status:          o.Status,
		ShippingAddress: FromAddress(o.ShippingAddress),
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// OrderSnapshotResponse snapshot del slice de órdenes.
type OrderSnapshotResponse struct {
	Items    []OrderResponse `json:"items"`
	Loading  bool            `json:"loading"`
	Error    string          `json:"error,omitempty"`
	Selected *OrderResponse  `json:"selected,omitempty"`
}

// FromOrderSnapshot convierte el snapshot del store a DTO.
func FromOrderSnapshot(s store.Snapshot[entity.Order]) OrderSnapshotResponse {
	items := make([]OrderResponse, 0, len(s.Items))
	for _, o := range s.Items {
		items = append(items, FromOrder(o))
	}
	out := OrderSnapshotResponse{Items: items, Loading: s.Loading, Error: s.Error}
	if s.Selected != nil {
		sel := FromOrder(*s.Selected)
		out.Selected = &sel
	}
	return out
}
