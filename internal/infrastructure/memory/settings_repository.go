package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo backend simulado del agregado de configuración.
type SettingsRepo struct {
	lat Latency

	mu      sync.Mutex
	profile entity.UserProfile
	billing entity.BillingInfo
}

func newSettingsRepo(lat Latency) *SettingsRepo {
	return &SettingsRepo{
		lat: lat,
		profile: entity.UserProfile{
			ID:      "1",
			Name:    "John Doe",
			Email:   "john.doe@example.com",
			Phone:   "+1 (555) 123-4567",
			Avatar:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Bio:     "Experienced retailer with 10+ years in the industry",
			Company: "Retail Solutions Inc.",
			Address: &entity.Address{
				Street:  "123 Business Ave",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Country: "USA",
			},
			UpdatedAt: time.Now(),
		},
		billing: entity.BillingInfo{
			Plan:            "premium",
			Status:          "active",
			NextBillingDate: time.Now().AddDate(0, 0, 30),
			Amount:          decimal.NewFromInt(79),
			Currency:        "USD",
			PaymentMethod: entity.PaymentMethod{
				Type:  "card",
				Last4: "4242",
				Brand: "Visa",
			},
		},
	}
}

// Fetch devuelve perfil y facturación actuales.
func (r *SettingsRepo) Fetch(ctx context.Context) (entity.UserProfile, entity.BillingInfo, error) {
	if err := r.lat.Wait(ctx, latencySettings); err != nil {
		return entity.UserProfile{}, entity.BillingInfo{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile, r.billing, nil
}

// UpdateProfile persiste el perfil y refresca su sello de actualización.
func (r *SettingsRepo) UpdateProfile(ctx context.Context, profile entity.UserProfile) (entity.UserProfile, error) {
	if err := r.lat.Wait(ctx, latencyProfile); err != nil {
		return entity.UserProfile{}, err
	}
	profile.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = r.profile.ID
	}
	r.profile = profile
	return profile, nil
}
