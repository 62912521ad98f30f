package repository

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// MovementRecord es el modelo de lectura de un movimiento con los nombres
// resueltos para listados (JOIN con products y users).
type MovementRecord struct {
	entity.StockMovement
	ProductName string
	Username    string
}

// StockMovementRepository define el puerto de persistencia para movimientos.
// El ledger es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListAllAscending devuelve todos los movimientos en orden cronológico
	// (created_at ASC, desempate por id de inserción). Insumo del histórico.
	ListAllAscending() ([]*entity.StockMovement, error)
	// ListRecent devuelve movimientos con nombres resueltos, el más reciente primero.
	ListRecent(limit, offset int) ([]*MovementRecord, error)
}
