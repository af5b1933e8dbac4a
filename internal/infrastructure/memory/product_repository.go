package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo backend simulado de productos.
type ProductRepo struct {
	lat Latency

	mu       sync.Mutex
	products []entity.Product
}

func newProductRepo(lat Latency) *ProductRepo {
	now := time.Now()
	return &ProductRepo{
		lat: lat,
		products: []entity.Product{
			{
				ID:          "1",
				Name:        "Wireless Headphones",
				Description: "High-quality wireless headphones with noise cancellation",
				Price:       decimal.NewFromFloat(199.99),
				Category:    "Electronics",
				Stock:       50,
				SKU:         "WH-001",
				Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          "2",
				Name:        "Smart Watch",
				Description: "Fitness tracking smartwatch with heart rate monitor",
				Price:       decimal.NewFromFloat(299.99),
				Category:    "Electronics",
				Stock:       25,
				SKU:         "SW-002",
				Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          "3",
				Name:        "Coffee Maker",
				Description: "Automatic drip coffee maker with programmable timer",
				Price:       decimal.NewFromFloat(89.99),
				Category:    "Appliances",
				Stock:       15,
				SKU:         "CM-003",
				Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=300&h=300&fit=crop",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
	}
}

// FetchAll devuelve una copia de la colección completa.
func (r *ProductRepo) FetchAll(ctx context.Context) ([]entity.Product, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Create asigna identidad y sellos de fecha, y agrega al final.
func (r *ProductRepo) Create(ctx context.Context, draft entity.Product) (entity.Product, error) {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return entity.Product{}, err
	}
	now := time.Now()
	draft.ID = newID()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, draft)
	return draft, nil
}

// Update refresca el sello de actualización y reemplaza in situ si la
// identidad existe. Identidad ausente no es un fallo (ninguno modelado).
func (r *ProductRepo) Update(ctx context.Context, product entity.Product) (entity.Product, error) {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return entity.Product{}, err
	}
	product.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			product.CreatedAt = r.products[i].CreatedAt
			r.products[i] = product
			break
		}
	}
	return product, nil
}

// Delete elimina por identidad. Ausente: no-op.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}

// list copia la colección sin latencia (uso interno del tablero).
func (r *ProductRepo) list() []entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}
