package repository

import (
	"context"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// DashboardRepository define el puerto del backend remoto para las métricas
// del tablero.
type DashboardRepository interface {
	Stats(ctx context.Context) (entity.Stats, error)
	Revenue(ctx context.Context) ([]entity.RevenuePoint, error)
	Distribution(ctx context.Context) ([]entity.OrderDistribution, error)
}
