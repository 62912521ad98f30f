// Package history contiene el caso de uso del histórico semanal: carga los
// snapshots de lectura y delega todo el cálculo en el motor de dominio.
package history

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain/history"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// HistoryUseCase reconstruye el reporte mes → semana → categoría → producto en
// cada petición. Sin estado propio: toma snapshots de lectura y produce un
// valor desechable por request (ningún caché, ninguna vista materializada).
type HistoryUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.StockMovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movRepo repository.StockMovementRepository,
) *HistoryUseCase {
	return &HistoryUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movRepo:      movRepo,
	}
}

// GetWeeklyHistory carga todos los productos (sin filtro de fechas) y todos
// los movimientos en orden cronológico, y ejecuta el motor de agregación.
func (uc *HistoryUseCase) GetWeeklyHistory(ctx context.Context) ([]history.MonthHistory, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("histórico: cargar productos: %w", err)
	}
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("histórico: cargar categorías: %w", err)
	}
	movements, err := uc.movRepo.ListAllAscending()
	if err != nil {
		return nil, fmt.Errorf("histórico: cargar movimientos: %w", err)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	prodSnaps := make([]history.Product, 0, len(products))
	for _, p := range products {
		prodSnaps = append(prodSnaps, history.Product{
			ID:           p.ID,
			Name:         p.Name,
			CategoryName: categoryNames[p.CategoryID], // vacío si no resuelve → Uncategorized
			Unit:         p.UnitType,
			OpeningStock: p.OpeningStock,
			CreatedAt:    p.CreatedAt,
		})
	}

	movSnaps := make([]history.Movement, 0, len(movements))
	for _, m := range movements {
		movSnaps = append(movSnaps, history.Movement{
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			CreatedAt: m.CreatedAt,
		})
	}

	return history.Aggregate(prodSnaps, movSnaps), nil
}
