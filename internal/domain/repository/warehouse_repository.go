package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para almacenes.
// GetByID devuelve (nil, nil) si el ID no existe.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
	List() ([]*entity.Warehouse, error)
	Count() (int, error)
}
