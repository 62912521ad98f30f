package inventory

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// MovementListUseCase listado de movimientos para revisión (solo lectura).
type MovementListUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementListUseCase construye el caso de uso.
func NewMovementListUseCase(movRepo repository.StockMovementRepository) *MovementListUseCase {
	return &MovementListUseCase{movRepo: movRepo}
}

// ListRecent devuelve los movimientos más recientes primero, con nombres de
// producto y usuario resueltos.
func (uc *MovementListUseCase) ListRecent(ctx context.Context, limit, offset int) ([]dto.MovementResponse, error) {
	records, err := uc.movRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.MovementResponse{
			ID:          r.ID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Type:        r.Type,
			Quantity:    r.Quantity,
			UnitType:    r.UnitType,
			CreatedBy:   r.CreatedBy,
			Username:    r.Username,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}
