package entity

import "time"

// User representa un usuario del back-office.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
