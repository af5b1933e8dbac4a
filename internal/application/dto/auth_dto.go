package dto

import (
	"time"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest registro de un usuario nuevo.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación de salida de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUser convierte la entidad a DTO de salida.
func FromUser(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResponse token más usuario autenticado.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthSnapshotResponse vista del estado de sesión.
type AuthSnapshotResponse struct {
	User            *UserResponse `json:"user"`
	IsAuthenticated bool          `json:"isAuthenticated"`
	Loading         bool          `json:"loading"`
	Error           string        `json:"error,omitempty"`
}

// FromAuthSnapshot convierte la vista del estado de sesión a respuesta.
func FromAuthSnapshot(s store.AuthSnapshot) AuthSnapshotResponse {
	out := AuthSnapshotResponse{
		IsAuthenticated: s.IsAuthenticated,
		Loading:         s.Loading,
		Error:           s.Error,
	}
	if s.User != nil {
		u := FromUser(*s.User)
		out.User = &u
	}
	return out
}
