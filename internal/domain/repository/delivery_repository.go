package repository

import (
	"context"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// DeliveryRepository define el puerto del backend remoto para Delivery (DIP).
type DeliveryRepository interface {
	FetchAll(ctx context.Context) ([]entity.Delivery, error)
	Create(ctx context.Context, draft entity.Delivery) (entity.Delivery, error)
	Update(ctx context.Context, delivery entity.Delivery) (entity.Delivery, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
}
