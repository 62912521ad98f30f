package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (reservado en el esquema; no entra al histórico)
)

// StockMovement representa un movimiento de stock. Append-only: una vez creado
// no existe ruta de actualización ni borrado. Quantity siempre es la magnitud
// (no negativa); el signo lo determina Type.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT, ADJUSTMENT
	Quantity  decimal.Decimal
	UnitType  string
	CreatedBy string // UserID
	CreatedAt time.Time
}
