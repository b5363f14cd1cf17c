package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// GetByID/FindByEmail devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
