package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Credenciales sembradas del backend simulado.
const (
	SeedUserEmail    = "admin@example.com"
	SeedUserPassword = "password"
)

// UserRepo backend simulado de usuarios.
type UserRepo struct {
	lat Latency

	mu    sync.Mutex
	users []entity.User
}

func newUserRepo(lat Latency) *UserRepo {
	now := time.Now()
	// Cost mínimo: son datos de arranque simulados, no credenciales reales.
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedUserPassword), bcrypt.MinCost)
	return &UserRepo{
		lat: lat,
		users: []entity.User{
			{
				ID:           "1",
				Name:         "Sakir Shaikh",
				Email:        SeedUserEmail,
				PasswordHash: string(hash),
				Avatar:       "https://avatars.githubusercontent.com/u/106683015?v=4?w=32&h=32&fit=crop&crop=face",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
	}
}

// Create agrega el usuario nuevo.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := r.lat.Wait(ctx, latencyMutate); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *user)
	return nil
}

// FindByEmail devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := r.lat.Wait(ctx, latencyFetch); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// UpdatePassword reemplaza el hash del usuario con ese email.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if err := r.lat.Wait(ctx, latencyPassword); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			r.users[i].PasswordHash = passwordHash
			r.users[i].UpdatedAt = time.Now()
			break
		}
	}
	return nil
}
