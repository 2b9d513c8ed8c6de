package replenishment

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
	domstock "github.com/jhoicas/smartstock-api/internal/domain/stock"
)

// Razones de la lista diaria automática.
const (
	reasonOutOfStock    = "Out of stock"
	reasonFrequencyDue  = "Frequency due"
	reasonOutAndFreqDue = "Out of stock & Frequency due"
)

// ListUseCase lista diaria automática de reposición y listas gestionadas
// persistidas. El override de un renglón está restringido a managers y
// exige justificación.
type ListUseCase struct {
	stockRepo   repository.StockRepository
	salesRepo   repository.SalesRepository
	cadenceRepo repository.CadenceRepository
	listRepo    repository.ReplenishmentListRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	policy      domstock.Policy
	now         func() time.Time
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(
	stockRepo repository.StockRepository,
	salesRepo repository.SalesRepository,
	cadenceRepo repository.CadenceRepository,
	listRepo repository.ReplenishmentListRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	policy domstock.Policy,
) *ListUseCase {
	return &ListUseCase{
		stockRepo:   stockRepo,
		salesRepo:   salesRepo,
		cadenceRepo: cadenceRepo,
		listRepo:    listRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		policy:      policy,
		now:         time.Now,
	}
}

// DailyList genera la lista automática del día para una tienda: productos
// sin stock y productos cuya cadencia ya venció, con la cantidad estimada
// desde el promedio diario de ventas.
func (uc *ListUseCase) DailyList(ctx context.Context, storeID int) ([]dto.DailyListItem, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	today := uc.now()
	since := today.AddDate(0, 0, -uc.policy.SalesLookbackDays)

	cadences, err := uc.cadenceRepo.List(ctx, storeID, 0)
	if err != nil {
		return nil, err
	}
	rows, err := uc.stockRepo.ListStoreBatchRows(ctx, storeID)
	if err != nil {
		return nil, err
	}
	soldByProduct, err := uc.salesRepo.UnitsSoldByProductSince(ctx, storeID, since)
	if err != nil {
		return nil, err
	}

	type stockInfo struct {
		name  string
		total int
	}
	stockByProduct := make(map[int]stockInfo)
	for _, r := range rows {
		info := stockByProduct[r.ProductID]
		info.name = r.ProductName
		info.total += r.Batch.Quantity
		stockByProduct[r.ProductID] = info
	}

	items := make([]dto.DailyListItem, 0)
	inCadence := make(map[int]bool, len(cadences))

	for _, c := range cadences {
		inCadence[c.ProductID] = true
		info, hasStock := stockByProduct[c.ProductID]
		if !hasStock {
			// Producto con cadencia configurada pero sin filas de stock en
			// la tienda: cuenta como quebrado con cantidad cero y el nombre
			// se resuelve del catálogo. Cadencias huérfanas se omiten.
			product, err := uc.productRepo.GetByID(ctx, c.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				continue
			}
			info = stockInfo{name: product.Name, total: 0}
		}

		outOfStock := info.total == 0
		due := c.DueOn(today)

		var reason string
		var priority domstock.Priority
		switch {
		case outOfStock && due:
			reason, priority = reasonOutAndFreqDue, domstock.PriorityHigh
		case outOfStock:
			reason, priority = reasonOutOfStock, domstock.PriorityHigh
		case due:
			reason, priority = reasonFrequencyDue, domstock.PriorityMedium
		default:
			continue
		}

		item := dto.DailyListItem{
			ProductID:         c.ProductID,
			ProductName:       info.name,
			CurrentStock:      info.total,
			LastReplenishment: c.LastReplenishmentDate,
			Reason:            reason,
			Priority:          string(priority),
		}
		freq := c.FrequencyDays
		item.FrequencyDays = &freq
		if next, immediate := c.NextDue(); !immediate {
			item.NextReplenishment = &next
		}
		item.Quantity = estimateQuantity(soldByProduct[c.ProductID], uc.policy.SalesLookbackDays, c.FrequencyDays, info.total)
		items = append(items, item)
	}

	// Productos quebrados sin cadencia configurada: se estiman con la
	// frecuencia máxima como horizonte.
	for productID, info := range stockByProduct {
		if inCadence[productID] || info.total != 0 {
			continue
		}
		items = append(items, dto.DailyListItem{
			ProductID:    productID,
			ProductName:  info.name,
			CurrentStock: info.total,
			Reason:       reasonOutOfStock,
			Priority:     string(domstock.PriorityHigh),
			Quantity:     estimateQuantity(soldByProduct[productID], uc.policy.SalesLookbackDays, entity.MaxFrequencyDays, info.total),
		})
	}

	rank := map[string]int{
		string(domstock.PriorityHigh):   0,
		string(domstock.PriorityMedium): 1,
		string(domstock.PriorityLow):    2,
	}
	sort.SliceStable(items, func(i, j int) bool {
		if rank[items[i].Priority] != rank[items[j].Priority] {
			return rank[items[i].Priority] < rank[items[j].Priority]
		}
		return items[i].ProductName < items[j].ProductName
	})
	return items, nil
}

// estimateQuantity stock necesario para cubrir la cadencia menos el stock
// actual. nil cuando no hay historial de ventas para estimar.
func estimateQuantity(unitsSold, windowDays, frequencyDays, currentStock int) *int {
	fc := domstock.ComputeForecast(unitsSold, windowDays, currentStock, nil)
	if !fc.AverageDailySales.IsPositive() {
		return nil
	}
	avg, _ := fc.AverageDailySales.Float64()
	needed := int(math.Round(avg*float64(frequencyDays) - float64(currentStock)))
	if needed < 0 {
		needed = 0
	}
	return &needed
}

// Generate materializa la lista diaria como lista gestionada (estado draft)
// para la fecha dada. ErrDuplicate si ya existe una para (tienda, fecha).
func (uc *ListUseCase) Generate(ctx context.Context, storeID int, listDate time.Time) (*dto.ListWithItemsResponse, error) {
	if listDate.IsZero() {
		listDate = uc.now()
	}
	existing, err := uc.listRepo.GetListByStoreDate(ctx, storeID, listDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	daily, err := uc.DailyList(ctx, storeID)
	if err != nil {
		return nil, err
	}

	list := &entity.ReplenishmentList{
		StoreID:   storeID,
		ListDate:  listDate,
		Status:    entity.ListStatusDraft,
		Notes:     fmt.Sprintf("Auto-generated on %s", uc.now().Format("2006-01-02")),
		CreatedAt: uc.now(),
	}
	if err := uc.listRepo.CreateList(ctx, list); err != nil {
		return nil, err
	}
	for _, d := range daily {
		qty := 0
		if d.Quantity != nil {
			qty = *d.Quantity
		}
		item := &entity.ReplenishmentListItem{
			ListID:       list.ID,
			ProductID:    d.ProductID,
			Quantity:     qty,
			CurrentStock: d.CurrentStock,
			Reason:       d.Reason,
			Priority:     d.Priority,
		}
		if err := uc.listRepo.AddItem(ctx, item); err != nil {
			return nil, err
		}
	}
	return uc.listWithItems(ctx, list)
}

// Get lista gestionada con sus renglones. ErrNotFound si no existe.
func (uc *ListUseCase) Get(ctx context.Context, storeID int, listDate time.Time) (*dto.ListWithItemsResponse, error) {
	list, err := uc.listRepo.GetListByStoreDate(ctx, storeID, listDate)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	return uc.listWithItems(ctx, list)
}

// OverrideItem aplica el override de un manager sobre un renglón: cantidad,
// razón y prioridad nuevas, notas opcionales. Un employee recibe
// ErrAuthorization y no se muta nada; razón o prioridad vacías son
// ErrInvalidInput.
func (uc *ListUseCase) OverrideItem(ctx context.Context, actor entity.Actor, itemID int, in dto.OverrideItemRequest) (*dto.ListItemResponse, error) {
	if !actor.Role.CanOverride() {
		return nil, domain.ErrAuthorization
	}
	if in.Quantity < 0 || strings.TrimSpace(in.Reason) == "" || strings.TrimSpace(in.Priority) == "" {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.listRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Quantity = in.Quantity
	item.Reason = in.Reason
	item.Priority = in.Priority
	item.Notes = in.Notes
	if err := uc.listRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	resp := toListItemResponse(item)
	return &resp, nil
}

func (uc *ListUseCase) listWithItems(ctx context.Context, list *entity.ReplenishmentList) (*dto.ListWithItemsResponse, error) {
	items, err := uc.listRepo.ItemsByList(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListWithItemsResponse{
		ListID:    list.ID,
		StoreID:   list.StoreID,
		ListDate:  list.ListDate,
		Status:    list.Status,
		Notes:     list.Notes,
		CreatedAt: list.CreatedAt,
		Items:     make([]dto.ListItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toListItemResponse(it))
	}
	return resp, nil
}

func toListItemResponse(it *entity.ReplenishmentListItem) dto.ListItemResponse {
	return dto.ListItemResponse{
		ItemID:       it.ID,
		ListID:       it.ListID,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		Quantity:     it.Quantity,
		CurrentStock: it.CurrentStock,
		Reason:       it.Reason,
		Priority:     it.Priority,
		Notes:        it.Notes,
	}
}
