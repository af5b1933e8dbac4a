package repository

import (
	"context"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// OrderRepository define el puerto del backend remoto para Order (DIP).
type OrderRepository interface {
	FetchAll(ctx context.Context) ([]entity.Order, error)
	Create(ctx context.Context, draft entity.Order) (entity.Order, error)
	Update(ctx context.Context, order entity.Order) (entity.Order, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
}
