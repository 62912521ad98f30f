package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El stock de apertura inicializa current, closing y total_added.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	UnitType     string          `json:"unit_type"` // kg, gram, litre, ml, unit, piece
	OpeningStock decimal.Decimal `json:"opening_stock"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// Los campos de stock no se tocan por aquí: solo vía movimientos.
type UpdateProductRequest struct {
	Name       string `json:"name,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	UnitType   string `json:"unit_type,omitempty"`
}

// ProductResponse representación de un producto con sus contadores de balance.
type ProductResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	Name         string          `json:"name"`
	UnitType     string          `json:"unit_type"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	ClosingStock decimal.Decimal `json:"closing_stock"`
	TotalAdded   decimal.Decimal `json:"total_added"`
	TotalUsed    decimal.Decimal `json:"total_used"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
