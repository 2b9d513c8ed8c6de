package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	appstock "github.com/jhoicas/smartstock-api/internal/application/stock"
)

// AlertsHandler alertas de stock de una tienda.
type AlertsHandler struct {
	uc *appstock.AlertsUseCase
}

// NewAlertsHandler construye el handler de alertas.
func NewAlertsHandler(uc *appstock.AlertsUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// Alerts godoc
// @Summary      Alertas: low stock, overstock, por vencer y quiebre proyectado
// @Tags         alerts
// @Produce      json
// @Param        store_id    path   int  true   "ID de la tienda"
// @Param        category_id query  int  false  "Filtrar por categoría"
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200  {object}  dto.AlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{store_id} [get]
func (h *AlertsHandler) Alerts(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("store_id")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id inválido"})
	}
	filters := appstock.AlertFilters{
		CategoryID: c.QueryInt("category_id"),
		ProductID:  c.QueryInt("product_id"),
	}
	out, err := h.uc.Alerts(c.Context(), storeID, filters)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
