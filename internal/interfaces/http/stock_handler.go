package http

import (
	"github.com/gofiber/fiber/v2"

	appstock "github.com/jhoicas/smartstock-api/internal/application/stock"
	"github.com/jhoicas/smartstock-api/internal/application/dto"
)

// StockHandler lecturas de stock: overview, filas crudas y lotes FIFO.
type StockHandler struct {
	uc *appstock.OverviewUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *appstock.OverviewUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Overview godoc
// @Summary      Overview de stock por producto (estado, pronóstico, sugerencia)
// @Tags         stock
// @Produce      json
// @Param        store_id  path  int  true  "ID de la tienda"
// @Success      200  {array}   dto.StockOverviewItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/overview/{store_id} [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("store_id")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id inválido"})
	}
	items, err := h.uc.StoreOverview(c.Context(), storeID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// Stock godoc
// @Summary      Filas crudas de stock de una tienda (producto + lote)
// @Tags         stock
// @Produce      json
// @Param        store_id  path  int  true  "ID de la tienda"
// @Success      200  {array}   dto.StockRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{store_id} [get]
func (h *StockHandler) Stock(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("store_id")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id inválido"})
	}
	rows, err := h.uc.StoreStock(c.Context(), storeID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(rows)
}

// ProductBatches godoc
// @Summary      Lotes con stock de un producto en orden FIFO
// @Tags         stock
// @Produce      json
// @Param        store_id    path  int  true  "ID de la tienda"
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {array}   dto.BatchStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{store_id}/product/{product_id}/batches [get]
func (h *StockHandler) ProductBatches(c *fiber.Ctx) error {
	storeID, err1 := c.ParamsInt("store_id")
	productID, err2 := c.ParamsInt("product_id")
	if err1 != nil || err2 != nil || storeID <= 0 || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id o product_id inválido"})
	}
	batches, err := h.uc.ProductBatches(c.Context(), storeID, productID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(batches)
}
