package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL (usable con pool o tx). El ledger es append-only: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un nuevo movimiento.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, unit_type, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.UnitType, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListAllAscending devuelve todos los movimientos en orden cronológico
// (desempate por id para un orden total estable). Insumo del histórico.
func (r *StockMovementRepo) ListAllAscending() ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, unit_type, created_by, created_at
		FROM stock_movements ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitType, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListRecent devuelve movimientos con nombres de producto y usuario resueltos,
// el más reciente primero. LEFT JOIN: un producto o usuario borrado no oculta
// el movimiento en el listado.
func (r *StockMovementRepo) ListRecent(limit, offset int) ([]*repository.MovementRecord, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.unit_type, m.created_by, m.created_at,
		       COALESCE(p.name, ''), COALESCE(u.username, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.created_by
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Type, &rec.Quantity, &rec.UnitType,
			&rec.CreatedBy, &rec.CreatedAt, &rec.ProductName, &rec.Username); err != nil {
			return nil, fmt.Errorf("scan movement record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
