package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// Dependencias que bloquean una eliminación (ConflictError.Dependency).
const (
	DependencyProducts  = "has-products"
	DependencyMovements = "has-movements"
)

// ConflictError indica que una eliminación está bloqueada por registros dependientes.
// Dependency identifica la colección que bloquea, para que el caller pueda explicar el porqué.
type ConflictError struct {
	Dependency string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("eliminación bloqueada por registros dependientes (%s)", e.Dependency)
}

// Unwrap permite errors.Is(err, ErrConflict).
func (e *ConflictError) Unwrap() error { return ErrConflict }

// InsufficientStockError indica que una salida dejaría el stock en negativo.
// Incluye la cantidad solicitada y el stock disponible para el mensaje al usuario.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: solicitado %s, disponible %s",
		e.ProductID, e.Requested.String(), e.Available.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
