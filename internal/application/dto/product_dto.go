package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// MinQuantity y UnitCost deben ser >= 0; el caso de uso valida los numéricos
// porque validator no inspecciona decimal.Decimal.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	CategoryID  string          `json:"category_id"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Description string          `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	WarehouseID *string          `json:"warehouse_id"`
	CategoryID  *string          `json:"category_id"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto (sin stock: el stock siempre se deriva).
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	WarehouseID string          `json:"warehouse_id"`
	CategoryID  string          `json:"category_id,omitempty"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductWithStockResponse vista derivada: producto más stock actual, valor y estado.
// Nunca se persiste; se recalcula del libro de movimientos en cada lectura.
type ProductWithStockResponse struct {
	ProductResponse
	CurrentStock decimal.Decimal `json:"current_stock"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Status       string          `json:"status"` // critical | warning | success
}
