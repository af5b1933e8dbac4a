package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order. No se impone un grafo de transiciones:
// el backend acepta cualquier estado conocido en cualquier momento.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// IsValidOrderStatus indica si el estado pertenece al enum de Order.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem línea de una orden. ProductName y Price son snapshots
// desnormalizados del producto al momento de crear la orden.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int // >= 1
	Price       decimal.Decimal
}

// Subtotal devuelve precio x cantidad de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order representa una orden de venta con sus líneas y estado.
// TotalAmount debe ser siempre la suma de los subtotales de Items;
// el backend lo recalcula en cada create/update.
type Order struct {
	ID              string
	OrderNumber     string // generado, formato ORD-xxx
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          string
	ShippingAddress Address
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EntityID implementa store.Identifiable.
func (o Order) EntityID() string { return o.ID }

// ItemsTotal suma los subtotales de todas las líneas.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
