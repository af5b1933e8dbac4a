package repository

import (
	"context"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// ProductRepository define el puerto del backend remoto para Product (DIP).
// La implementación simulada aplica latencia artificial en cada operación.
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, draft entity.Product) (entity.Product, error)
	Update(ctx context.Context, product entity.Product) (entity.Product, error)
	Delete(ctx context.Context, id string) error
}
