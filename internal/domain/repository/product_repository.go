package repository

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock se usan solo dentro de transacciones (motor de stock).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar movimientos concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateInfo actualiza nombre, categoría y unidad. Los campos de stock
	// solo cambian vía movimientos (UpdateStock).
	UpdateInfo(product *entity.Product) error
	// UpdateStock persiste los contadores de balance (current/closing/added/used).
	UpdateStock(product *entity.Product) error
	// ListAll devuelve todos los productos sin filtro (insumo del histórico).
	ListAll() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
