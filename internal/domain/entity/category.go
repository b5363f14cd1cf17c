package entity

import "time"

// Category representa una categoría opcional de productos.
// No puede eliminarse mientras algún producto la referencie.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
