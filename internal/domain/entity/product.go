package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// No almacena el stock actual: el stock siempre se deriva del libro de movimientos.
// CategoryID vacío significa producto sin categoría.
type Product struct {
	ID          string
	Name        string
	WarehouseID string
	CategoryID  string
	MinQuantity decimal.Decimal // umbral mínimo, >= 0
	UnitCost    decimal.Decimal // costo unitario, >= 0
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
