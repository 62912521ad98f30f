package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario con su balance en la unidad indicada.
//
// Invariante (mantenido únicamente por el caso de uso de movimientos, no por la DB):
//
//	CurrentStock == TotalAdded - TotalUsed
//
// TotalAdded incluye el stock de apertura: la creación del producto siembra
// TotalAdded = OpeningStock, y a partir de ahí solo los movimientos ajustan
// los contadores.
//
// CreatedAt cumple doble función: fecha de creación de la fila y fecha efectiva del
// stock de apertura para el histórico semanal. Retroceder la apertura implica ajustar
// este campo directamente; no existe una fecha efectiva separada.
type Product struct {
	ID           string
	CategoryID   string
	Name         string
	UnitType     string // kg, gram, litre, ml, unit, piece
	OpeningStock decimal.Decimal
	CurrentStock decimal.Decimal
	ClosingStock decimal.Decimal // snapshot cacheado del último "set closing stock"
	TotalAdded   decimal.Decimal
	TotalUsed    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
