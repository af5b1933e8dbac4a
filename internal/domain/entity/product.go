package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del comercio.
// Stock es el conteo disponible; SKU es único dentro del catálogo.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario, nunca negativo
	Category    string
	Stock       int
	SKU         string
	Image       string // URL opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntityID implementa store.Identifiable.
func (p Product) EntityID() string { return p.ID }
