package store

import (
	"sync"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// AuthSnapshot vista de solo lectura del estado de sesión.
type AuthSnapshot struct {
	User            *entity.User
	IsAuthenticated bool
	Loading         bool
	Error           string
}

// AuthState estado de la sesión del usuario. No es una colección: guarda el
// usuario autenticado (o nil) más las banderas de ciclo de petición.
type AuthState struct {
	mu      sync.RWMutex
	user    *entity.User
	loading bool
	err     string
}

// NewAuthState construye el estado de sesión vacío (sin autenticar).
func NewAuthState() *AuthState {
	return &AuthState{}
}

// BeginRequest marca la petición en curso.
func (s *AuthState) BeginRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// ApplySession fija el usuario autenticado (login o signup exitoso).
func (s *AuthState) ApplySession(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.loading = false
	s.err = ""
}

// Logout limpia la sesión. Transición inmediata, sin backend.
func (s *AuthState) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.loading = false
	s.err = ""
}

// SetError registra el fallo de login/signup.
func (s *AuthState) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = message
}

// ClearError limpia el error sin tocar la sesión.
func (s *AuthState) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot devuelve una vista del estado de sesión.
func (s *AuthState) Snapshot() AuthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AuthSnapshot{
		User:            s.user,
		IsAuthenticated: s.user != nil,
		Loading:         s.loading,
		Error:           s.err,
	}
}
