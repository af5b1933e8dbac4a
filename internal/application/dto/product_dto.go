package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// CreateProductRequest datos para crear un producto. Id, sellos de fecha
// los genera el backend.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
	Image       string          `json:"image,omitempty"`
}

// ToEntity convierte la petición en borrador de entidad.
func (r CreateProductRequest) ToEntity() entity.Product {
	return entity.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		SKU:         r.SKU,
		Image:       r.Image,
	}
}

// UpdateProductRequest registro completo para reemplazo in situ.
type UpdateProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
	Image       string          `json:"image,omitempty"`
}

// ToEntity convierte la petición en entidad (sellos los pone el backend).
func (r UpdateProductRequest) ToEntity() entity.Product {
	return entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		SKU:         r.SKU,
		Image:       r.Image,
	}
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// FromProduct convierte la entidad a DTO de salida.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		SKU:         p.SKU,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductSnapshotResponse snapshot del slice de productos: colección,
// banderas de ciclo de petición y selección de edición.
type ProductSnapshotResponse struct {
	Items    []ProductResponse `json:"items"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
	Selected *ProductResponse  `json:"selected,omitempty"`
}

// FromProductSnapshot convierte el snapshot del store a DTO.
func FromProductSnapshot(s store.Snapshot[entity.Product]) ProductSnapshotResponse {
	items := make([]ProductResponse, 0, len(s.Items))
	for _, p := range s.Items {
		items = append(items, FromProduct(p))
	}
	out := ProductSnapshotResponse{Items: items, Loading: s.Loading, Error: s.Error}
	if s.Selected != nil {
		sel := FromProduct(*s.Selected)
		out.Selected = &sel
	}
	return out
}
