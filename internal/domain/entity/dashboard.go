package entity

import "github.com/shopspring/decimal"

// Stats métricas agregadas del tablero.
type Stats struct {
	TotalOrders       int
	MonthlyIncome     decimal.Decimal
	ActiveProducts    int
	PendingDeliveries int
}

// RevenuePoint punto de la serie de ingresos mensuales.
type RevenuePoint struct {
	Month   string
	Revenue decimal.Decimal
}

// OrderDistribution conteo de órdenes por estado.
type OrderDistribution struct {
	Status string
	Count  int
}
