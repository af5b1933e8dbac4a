package repository

import (
	"context"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// SettingsRepository define el puerto del backend remoto para el agregado
// de configuración de la cuenta (perfil + facturación).
type SettingsRepository interface {
	Fetch(ctx context.Context) (entity.UserProfile, entity.BillingInfo, error)
	UpdateProfile(ctx context.Context, profile entity.UserProfile) (entity.UserProfile, error)
}
