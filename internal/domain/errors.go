package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes son el
// contrato visible al usuario: la capa de presentación los muestra tal cual.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailAlreadyExists = errors.New("User with this email already exists")
	ErrWrongPassword      = errors.New("Current password is incorrect")
	ErrPasswordTooShort   = errors.New("New password must be at least 8 characters long")
)
