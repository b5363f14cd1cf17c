package repository

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia para el libro de movimientos.
// El libro es append-only desde el punto de vista del dominio: solo Create y Delete,
// nunca update. GetByID devuelve (nil, nil) si el ID no existe.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Delete(id string) error
	// List devuelve todos los movimientos ordenados por OccurredAt descendente.
	List() ([]*entity.Movement, error)
	// ListByProduct devuelve los movimientos de un producto, OccurredAt descendente.
	ListByProduct(productID string) ([]*entity.Movement, error)
	CountByProduct(productID string) (int, error)
	CountCreatedSince(since time.Time) (int, error)
}
