package entity

import "time"

// Warehouse representa un almacén donde se guardan productos.
// No puede eliminarse mientras algún producto lo referencie.
type Warehouse struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
