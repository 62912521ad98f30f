package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Los contadores de stock se
// manejan exclusivamente vía movimientos (RegisterMovementUseCase).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. El stock de apertura inicializa current, closing y
// total_added; total_used arranca en cero. CreatedAt queda como fecha efectiva
// de la apertura para el histórico.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UnitType == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OpeningStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		UnitType:     in.UnitType,
		OpeningStock: in.OpeningStock,
		CurrentStock: in.OpeningStock,
		ClosingStock: in.OpeningStock,
		TotalAdded:   in.OpeningStock,
		TotalUsed:    decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve productos, opcionalmente filtrados por categoría.
func (uc *ProductUseCase) List(categoryID string) ([]*dto.ProductResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	if categoryID != "" {
		products, err = uc.repo.ListByCategory(categoryID)
	} else {
		products, err = uc.repo.ListAll()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza nombre, categoría y unidad. Los campos de stock no se
// modifican por esta ruta.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = in.CategoryID
	}
	if in.UnitType != "" {
		product.UnitType = in.UnitType
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.UpdateInfo(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		UnitType:     p.UnitType,
		OpeningStock: p.OpeningStock,
		CurrentStock: p.CurrentStock,
		ClosingStock: p.ClosingStock,
		TotalAdded:   p.TotalAdded,
		TotalUsed:    p.TotalUsed,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
