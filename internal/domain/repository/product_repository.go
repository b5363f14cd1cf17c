package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// GetByID/GetForUpdate devuelven (nil, nil) si el ID no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila dentro de la transacción
	// actual (SELECT FOR UPDATE). Serializa la secuencia verificar-stock-y-anexar.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
	Count() (int, error)
	CountByWarehouse(warehouseID string) (int, error)
	CountByCategory(categoryID string) (int, error)
}
