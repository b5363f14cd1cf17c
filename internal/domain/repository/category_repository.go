package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
// GetByID devuelve (nil, nil) si el ID no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	List() ([]*entity.Category, error)
}
