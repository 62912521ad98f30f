package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. Es la única ruta
// que toca los contadores de balance del producto, por lo que mantiene el
// invariante CurrentStock == OpeningStock + TotalAdded - TotalUsed.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento (forma delta).
// Quantity es la magnitud (> 0); el signo lo pone Type.
type MovementInput struct {
	ProductID string
	Type      string // IN | OUT
	Quantity  decimal.Decimal
	UnitType  string // vacío = unidad del producto
	UserID    string
}

// RegisterMovement inicia una transacción, bloquea la fila del producto,
// inserta el movimiento y ajusta los contadores. Todo confirma junto o nada
// persiste: un fallo después del insert revierte también el movimiento, así el
// ledger y los balances nunca divergen. Sin reintentos: el caller ve el
// resultado de la transacción tal cual.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.Product, error) {
	if in.ProductID == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		unit := in.UnitType
		if unit == "" {
			unit = product.UnitType
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			UnitType:  unit,
			CreatedBy: in.UserID,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		applyMovement(product, in.Type, in.Quantity, now)
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetClosingStock forma absoluta: "me quedan target". Calcula la diferencia
// contra el stock actual, sintetiza un movimiento IN/OUT por la magnitud (o
// ninguno si la diferencia es cero) y sobreescribe el snapshot ClosingStock.
func (uc *RegisterMovementUseCase) SetClosingStock(ctx context.Context, productID string, target decimal.Decimal, userID string) (*entity.Product, error) {
	if productID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		diff := target.Sub(product.CurrentStock)
		if !diff.IsZero() {
			movType := entity.MovementTypeIN
			if diff.IsNegative() {
				movType = entity.MovementTypeOUT
			}
			qty := diff.Abs()
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      movType,
				Quantity:  qty,
				UnitType:  product.UnitType,
				CreatedBy: userID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			applyMovement(product, movType, qty, now)
		}

		product.ClosingStock = target
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyMovement ajusta los contadores del producto según el tipo.
func applyMovement(p *entity.Product, movType string, qty decimal.Decimal, now time.Time) {
	if movType == entity.MovementTypeIN {
		p.CurrentStock = p.CurrentStock.Add(qty)
		p.TotalAdded = p.TotalAdded.Add(qty)
	} else {
		p.CurrentStock = p.CurrentStock.Sub(qty)
		p.TotalUsed = p.TotalUsed.Add(qty)
	}
	p.UpdatedAt = now
}
