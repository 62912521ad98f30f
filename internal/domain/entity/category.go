package entity

import "time"

// Category representa una categoría de productos (Flour, Snacks, Veg, ...).
// Solo puede eliminarse cuando no tiene productos asociados.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
