package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddMovementRequest body para POST /api/stock (forma delta).
type AddMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // IN | OUT
	Quantity  decimal.Decimal `json:"quantity"`
	UnitType  string          `json:"unit_type,omitempty"` // vacío = unidad del producto
}

// SetClosingStockRequest body para PUT /api/products/:id/closing-stock
// (forma absoluta: "me quedan N").
type SetClosingStockRequest struct {
	ClosingStock decimal.Decimal `json:"closing_stock"`
}

// MovementResponse movimiento con nombres resueltos para listados.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitType    string          `json:"unit_type"`
	CreatedBy   string          `json:"created_by"`
	Username    string          `json:"username"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DashboardSummaryResponse totales para el tablero de inicio.
type DashboardSummaryResponse struct {
	TotalCategories int               `json:"total_categories"`
	TotalProducts   int               `json:"total_products"`
	LowStock        []ProductResponse `json:"low_stock"`
}
