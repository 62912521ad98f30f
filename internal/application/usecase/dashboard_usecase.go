package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// Umbrales de stock bajo según la unidad de medida.
var (
	lowStockThresholdWeight = decimal.NewFromInt(5)  // kg, litre
	lowStockThresholdCount  = decimal.NewFromInt(10) // packet, piece, etc.
)

// DashboardUseCase totales rápidos para la pantalla de inicio.
type DashboardUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// GetSummary devuelve conteo de categorías, de productos y los productos con
// stock bajo. El umbral depende de la unidad: 5 para kg/litre, 10 para el
// resto.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}

	lowStock := make([]dto.ProductResponse, 0)
	for _, p := range products {
		threshold := lowStockThresholdCount
		if p.UnitType == "kg" || p.UnitType == "litre" {
			threshold = lowStockThresholdWeight
		}
		if p.CurrentStock.LessThan(threshold) {
			lowStock = append(lowStock, *toProductResponse(p))
		}
	}

	return &dto.DashboardSummaryResponse{
		TotalCategories: len(categories),
		TotalProducts:   len(products),
		LowStock:        lowStock,
	}, nil
}
