package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	appreplenishment "github.com/jhoicas/smartstock-api/internal/application/replenishment"
	appstock "github.com/jhoicas/smartstock-api/internal/application/stock"
)

const dateLayout = "2006-01-02"

// ReplenishmentHandler operaciones de reposición: siguiente lote FIFO,
// commit, historial, cadencias y listas.
type ReplenishmentHandler struct {
	overviewUC *appstock.OverviewUseCase
	commitUC   *appreplenishment.CommitUseCase
	cadenceUC  *appreplenishment.CadenceUseCase
	listUC     *appreplenishment.ListUseCase
}

// NewReplenishmentHandler construye el handler de reposición.
func NewReplenishmentHandler(
	overviewUC *appstock.OverviewUseCase,
	commitUC *appreplenishment.CommitUseCase,
	cadenceUC *appreplenishment.CadenceUseCase,
	listUC *appreplenishment.ListUseCase,
) *ReplenishmentHandler {
	return &ReplenishmentHandler{
		overviewUC: overviewUC,
		commitUC:   commitUC,
		cadenceUC:  cadenceUC,
		listUC:     listUC,
	}
}

// NextBatch godoc
// @Summary      Siguiente lote a reponer según FIFO
// @Tags         replenishment
// @Produce      json
// @Param        store_id    path  int  true  "ID de la tienda"
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.NextBatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/next-batch/{store_id}/{product_id} [get]
func (h *ReplenishmentHandler) NextBatch(c *fiber.Ctx) error {
	storeID, err1 := c.ParamsInt("store_id")
	productID, err2 := c.ParamsInt("product_id")
	if err1 != nil || err2 != nil || storeID <= 0 || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id o product_id inválido"})
	}
	out, err := h.overviewUC.NextBatch(c.Context(), storeID, productID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar una reposición (atómica, con request_id idempotente)
// @Tags         replenishment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitRequest  true  "reposición a confirmar"
// @Success      200   {object}  dto.CommitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/replenishment/commit [post]
func (h *ReplenishmentHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	effective := time.Now()
	if in.EffectiveDate != nil {
		effective = *in.EffectiveDate
	}
	out, err := h.commitUC.Commit(c.Context(), appreplenishment.CommitInput{
		RequestID:        in.RequestID,
		StoreID:          in.StoreID,
		ProductID:        in.ProductID,
		BatchID:          in.BatchID,
		Quantity:         in.Quantity,
		ExpirationDate:   in.ExpirationDate,
		EffectiveDate:    effective,
		Actor:            GetActor(c),
		OverrideReason:   in.OverrideReason,
		OverridePriority: in.OverridePriority,
		OverrideNotes:    in.OverrideNotes,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de reposiciones de un producto en una tienda
// @Tags         replenishment
// @Produce      json
// @Param        store_id    path  int  true  "ID de la tienda"
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.LogEntryResponse
// @Router       /api/replenishment/logs/{store_id}/{product_id} [get]
func (h *ReplenishmentHandler) History(c *fiber.Ctx) error {
	storeID, err1 := c.ParamsInt("store_id")
	productID, err2 := c.ParamsInt("product_id")
	if err1 != nil || err2 != nil || storeID <= 0 || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id o product_id inválido"})
	}
	out, err := h.commitUC.History(c.Context(), storeID, productID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SetFrequency godoc
// @Summary      Crear o actualizar la cadencia de un par (producto, tienda)
// @Tags         replenishment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadenceRequest  true  "product_id, store_id, frequency_days (1..3)"
// @Success      200   {object}  dto.CadenceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/replenishment/frequency [post]
func (h *ReplenishmentHandler) SetFrequency(c *fiber.Ctx) error {
	var in dto.CadenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cadenceUC.Set(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListFrequencies godoc
// @Summary      Listar cadencias (filtros opcionales store_id, product_id)
// @Tags         replenishment
// @Produce      json
// @Param        store_id    query  int  false  "Filtrar por tienda"
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200  {array}  dto.CadenceResponse
// @Router       /api/replenishment/frequency [get]
func (h *ReplenishmentHandler) ListFrequencies(c *fiber.Ctx) error {
	out, err := h.cadenceUC.List(c.Context(), c.QueryInt("store_id"), c.QueryInt("product_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetFrequency godoc
// @Summary      Cadencia de un par (producto, tienda)
// @Tags         replenishment
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Param        store_id    path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.CadenceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/frequency/{product_id}/{store_id} [get]
func (h *ReplenishmentHandler) GetFrequency(c *fiber.Ctx) error {
	productID, storeID, ok := pairParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id o store_id inválido"})
	}
	out, err := h.cadenceUC.Get(c.Context(), productID, storeID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateFrequency godoc
// @Summary      Actualizar la cadencia de un par
// @Tags         replenishment
// @Accept       json
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Param        store_id    path  int  true  "ID de la tienda"
// @Param        body  body  dto.CadenceRequest  true  "frequency_days (1..3)"
// @Success      200   {object}  dto.CadenceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/frequency/{product_id}/{store_id} [put]
func (h *ReplenishmentHandler) UpdateFrequency(c *fiber.Ctx) error {
	productID, storeID, ok := pairParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id o store_id inválido"})
	}
	var in dto.CadenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ProductID = productID
	in.StoreID = storeID
	out, err := h.cadenceUC.Set(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteFrequency godoc
// @Summary      Borrar la cadencia de un par
// @Tags         replenishment
// @Param        product_id  path  int  true  "ID del producto"
// @Param        store_id    path  int  true  "ID de la tienda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/frequency/{product_id}/{store_id} [delete]
func (h *ReplenishmentHandler) DeleteFrequency(c *fiber.Ctx) error {
	productID, storeID, ok := pairParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id o store_id inválido"})
	}
	if err := h.cadenceUC.Delete(c.Context(), productID, storeID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DailyList godoc
// @Summary      Lista diaria automática de reposición
// @Tags         replenishment
// @Produce      json
// @Param        store_id  path  int  true  "ID de la tienda"
// @Success      200  {array}   dto.DailyListItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/list/{store_id} [get]
func (h *ReplenishmentHandler) DailyList(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("store_id")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id inválido"})
	}
	out, err := h.listUC.DailyList(c.Context(), storeID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GenerateList godoc
// @Summary      Materializar la lista diaria como lista gestionada (draft)
// @Tags         replenishment
// @Produce      json
// @Param        store_id  path   int     true   "ID de la tienda"
// @Param        date      query  string  false  "Fecha YYYY-MM-DD (default hoy)"
// @Success      201  {object}  dto.ListWithItemsResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/replenishment/lists/generate/{store_id} [post]
func (h *ReplenishmentHandler) GenerateList(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("store_id")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id inválido"})
	}
	var listDate time.Time
	if raw := c.Query("date"); raw != "" {
		listDate, err = time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
	}
	out, err := h.listUC.Generate(c.Context(), storeID, listDate)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetList godoc
// @Summary      Lista gestionada de una tienda para una fecha
// @Tags         replenishment
// @Produce      json
// @Param        store_id   path  int     true  "ID de la tienda"
// @Param        list_date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200  {object}  dto.ListWithItemsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/lists/{store_id}/{list_date} [get]
func (h *ReplenishmentHandler) GetList(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("store_id")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id inválido"})
	}
	listDate, err := time.Parse(dateLayout, c.Params("list_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "list_date debe ser YYYY-MM-DD"})
	}
	out, err := h.listUC.Get(c.Context(), storeID, listDate)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// OverrideItem godoc
// @Summary      Override de un renglón de lista (solo manager, con justificación)
// @Tags         replenishment
// @Accept       json
// @Produce      json
// @Param        item_id  path  int  true  "ID del renglón"
// @Param        body  body  dto.OverrideItemRequest  true  "quantity, reason, priority"
// @Success      200   {object}  dto.ListItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/replenishment/lists/items/{item_id}/override [put]
func (h *ReplenishmentHandler) OverrideItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("item_id")
	if err != nil || itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id inválido"})
	}
	var in dto.OverrideItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.listUC.OverrideItem(c.Context(), GetActor(c), itemID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

func pairParams(c *fiber.Ctx) (productID, storeID int, ok bool) {
	productID, err1 := c.ParamsInt("product_id")
	storeID, err2 := c.ParamsInt("store_id")
	if err1 != nil || err2 != nil || productID <= 0 || storeID <= 0 {
		return 0, 0, false
	}
	return productID, storeID, true
}
