package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementEntry = "entry" // entrada: suma al stock derivado
	MovementExit  = "exit"  // salida: resta del stock derivado
)

// Movement representa una fila del libro de movimientos, única fuente de verdad del stock.
// Inmutable una vez creado; solo se permite crear y eliminar, nunca actualizar.
type Movement struct {
	ID          string
	Kind        string // entry | exit
	ProductID   string
	Quantity    decimal.Decimal // siempre > 0, el signo lo da Kind
	OccurredAt  time.Time
	Observation string
	CreatedAt   time.Time
}

// IsEntry indica si el movimiento suma stock.
func (m Movement) IsEntry() bool { return m.Kind == MovementEntry }

// IsExit indica si el movimiento resta stock.
func (m Movement) IsExit() bool { return m.Kind == MovementExit }
