package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphistory "github.com/jhoicas/Despensa-api/internal/application/history"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/history"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ products []*entity.Product }

func (r *fakeProductRepo) Create(*entity.Product) error                     { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)          { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) UpdateInfo(*entity.Product) error                 { return nil }
func (r *fakeProductRepo) UpdateStock(*entity.Product) error                { return nil }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)              { return r.products, nil }
func (r *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) CountByCategory(string) (int, error)              { return 0, nil }
func (r *fakeProductRepo) Delete(string) error                              { return nil }

type fakeCategoryRepo struct{ categories []*entity.Category }

func (r *fakeCategoryRepo) Create(*entity.Category) error            { return nil }
func (r *fakeCategoryRepo) GetByID(string) (*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error            { return nil }
func (r *fakeCategoryRepo) List() ([]*entity.Category, error)        { return r.categories, nil }
func (r *fakeCategoryRepo) Delete(string) error                      { return nil }

type fakeMovementRepo struct{ movements []*entity.StockMovement }

func (r *fakeMovementRepo) Create(*entity.StockMovement) error { return nil }
func (r *fakeMovementRepo) ListAllAscending() ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) ListRecent(int, int) ([]*repository.MovementRecord, error) {
	return nil, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// El caso de uso resuelve el nombre de categoría por ID antes de delegar en el
// motor; una categoría que no resuelve cae en Uncategorized.
func TestGetWeeklyHistory_ResuelveCategoriasYAgrega(t *testing.T) {
	dic := time.Date(2024, time.December, 2, 10, 0, 0, 0, time.UTC)

	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", CategoryID: "cat-flour", Name: "Maida", UnitType: "kg", OpeningStock: dec("10"), CreatedAt: dic},
		{ID: "p2", CategoryID: "cat-borrada", Name: "Suelto", UnitType: "unit", OpeningStock: dec("3"), CreatedAt: dic},
	}}
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: "cat-flour", Name: "Flour"},
	}}
	movementRepo := &fakeMovementRepo{movements: []*entity.StockMovement{
		{ID: "m1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: dec("5"), CreatedAt: dic.Add(time.Hour)},
	}}

	uc := apphistory.NewHistoryUseCase(productRepo, categoryRepo, movementRepo)
	report, err := uc.GetWeeklyHistory(context.Background())
	require.NoError(t, err)

	require.Len(t, report, 1)
	assert.Equal(t, "December 2024", report[0].Month)
	require.Len(t, report[0].Weeks, 1)
	assert.Equal(t, "Week 1", report[0].Weeks[0].Week)

	var names []string
	for _, cat := range report[0].Weeks[0].Categories {
		names = append(names, cat.Name)
	}
	assert.Contains(t, names, "Flour")
	assert.Contains(t, names, history.UncategorizedLabel,
		"categoría inexistente debe proyectarse como Uncategorized")
}

func TestGetWeeklyHistory_SinDatos_ReporteVacio(t *testing.T) {
	uc := apphistory.NewHistoryUseCase(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeMovementRepo{})

	report, err := uc.GetWeeklyHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report)
}
