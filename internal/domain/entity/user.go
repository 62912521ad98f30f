package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Estados de usuario.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string // admin | staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
