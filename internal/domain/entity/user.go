package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin | operator
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
