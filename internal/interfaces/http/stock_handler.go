package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	apphistory "github.com/jhoicas/Despensa-api/internal/application/history"
	"github.com/jhoicas/Despensa-api/internal/application/inventory"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// StockHandler maneja movimientos de stock y el histórico semanal (protegido).
type StockHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	listUC     *inventory.MovementListUseCase
	historyUC  *apphistory.HistoryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	registerUC *inventory.RegisterMovementUseCase,
	listUC *inventory.MovementListUseCase,
	historyUC *apphistory.HistoryUseCase,
) *StockHandler {
	return &StockHandler{registerUC: registerUC, listUC: listUC, historyUC: historyUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (forma delta)
// @Description  staff solo puede registrar entradas (IN); admin registra IN y OUT
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.AddMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if GetRole(c) == entity.RoleStaff && in.Type != entity.MovementTypeIN {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "staff solo puede registrar entradas (IN)"})
	}
	product, err := h.registerUC.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitType:  in.UnitType,
		UserID:    GetUserID(c),
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido: type debe ser IN u OUT y quantity > 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductResponse{
		ID:           product.ID,
		CategoryID:   product.CategoryID,
		Name:         product.Name,
		UnitType:     product.UnitType,
		OpeningStock: product.OpeningStock,
		CurrentStock: product.CurrentStock,
		ClosingStock: product.ClosingStock,
		TotalAdded:   product.TotalAdded,
		TotalUsed:    product.TotalUsed,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	})
}

// ListMovements godoc
// @Summary      Listar movimientos recientes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/stock [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.listUC.ListRecent(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Histórico semanal de stock (mes → semana → categoría → producto)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  history.MonthHistory
// @Router       /api/stock/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	out, err := h.historyUC.GetWeeklyHistory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
