package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
// Los campos opcionales llevan el detalle estructurado de la regla violada,
// suficiente para construir el mensaje al usuario sin rederivar nada.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Dependency colección que bloquea una eliminación ("has-products", "has-movements").
	Dependency string `json:"dependency,omitempty"`

	// Requested/Available detalle de una salida rechazada por stock insuficiente.
	Requested *decimal.Decimal `json:"requested,omitempty"`
	Available *decimal.Decimal `json:"available,omitempty"`
}
