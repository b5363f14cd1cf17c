package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest entrada para registrar una entrada o salida de stock.
// OccurredAt en formato YYYY-MM-DD.
type RecordMovementRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	OccurredAt  string          `json:"occurred_at" validate:"required"`
	Observation string          `json:"observation"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"` // entry | exit
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	OccurredAt  string          `json:"occurred_at"` // YYYY-MM-DD
	Observation string          `json:"observation,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Total int                `json:"total"`
	Items []MovementResponse `json:"items"`
}
