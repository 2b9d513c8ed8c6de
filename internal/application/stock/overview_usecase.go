package stock

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
	domstock "github.com/jhoicas/smartstock-api/internal/domain/stock"
)

// OverviewUseCase consultas de lectura del motor: overview consolidado por
// producto, stock crudo y lotes en orden FIFO. Combina el ledger de stock,
// el historial de ventas y la cadencia; toda la computación es pura.
type OverviewUseCase struct {
	stockRepo   repository.StockRepository
	salesRepo   repository.SalesRepository
	cadenceRepo repository.CadenceRepository
	storeRepo   repository.StoreRepository
	policy      domstock.Policy
	now         func() time.Time
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(
	stockRepo repository.StockRepository,
	salesRepo repository.SalesRepository,
	cadenceRepo repository.CadenceRepository,
	storeRepo repository.StoreRepository,
	policy domstock.Policy,
) *OverviewUseCase {
	return &OverviewUseCase{
		stockRepo:   stockRepo,
		salesRepo:   salesRepo,
		cadenceRepo: cadenceRepo,
		storeRepo:   storeRepo,
		policy:      policy,
		now:         time.Now,
	}
}

// productGroup acumulado de las filas de stock de un producto.
type productGroup struct {
	productID   int
	productName string
	totalQty    int
	// reorderLevel aplicable: el mayor entre las filas del producto (las
	// filas son por lote y pueden divergir).
	reorderLevel int
	batches      []entity.BatchStock
}

func groupByProduct(rows []repository.StoreBatchRow) []*productGroup {
	byID := make(map[int]*productGroup)
	order := make([]*productGroup, 0)
	for _, r := range rows {
		g, ok := byID[r.ProductID]
		if !ok {
			g = &productGroup{productID: r.ProductID, productName: r.ProductName}
			byID[r.ProductID] = g
			order = append(order, g)
		}
		g.totalQty += r.Batch.Quantity
		if r.Batch.ReorderLevel > g.reorderLevel {
			g.reorderLevel = r.Batch.ReorderLevel
		}
		g.batches = append(g.batches, r.Batch)
	}
	return order
}

// StoreOverview devuelve el estado consolidado de cada producto con stock en
// la tienda: clasificación, pronóstico, cadencia y sugerencia del
// planificador, ordenado por prioridad descendente y nombre.
func (uc *OverviewUseCase) StoreOverview(ctx context.Context, storeID int) ([]dto.StockOverviewItem, error) {
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	rows, err := uc.stockRepo.ListStoreBatchRows(ctx, storeID)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	since := today.AddDate(0, 0, -uc.policy.SalesLookbackDays)

	soldByProduct, err := uc.salesRepo.UnitsSoldByProductSince(ctx, storeID, since)
	if err != nil {
		return nil, err
	}
	lastSaleByProduct, err := uc.salesRepo.LastSaleAtByProduct(ctx, storeID)
	if err != nil {
		return nil, err
	}
	cadences, err := uc.cadenceRepo.List(ctx, storeID, 0)
	if err != nil {
		return nil, err
	}
	cadenceByProduct := make(map[int]*entity.ReplenishmentCadence, len(cadences))
	for _, c := range cadences {
		cadenceByProduct[c.ProductID] = c
	}

	items := make([]dto.StockOverviewItem, 0)
	for _, g := range groupByProduct(rows) {
		var fifoExpiration *time.Time
		if next, err := domstock.NextBatch(g.batches); err == nil {
			fifoExpiration = next.ExpirationDate
		}

		cls := domstock.Classify(g.totalQty, g.reorderLevel, fifoExpiration, today, uc.policy)

		var lastSale *time.Time
		if ts, ok := lastSaleByProduct[g.productID]; ok {
			t := ts
			lastSale = &t
		}
		fc := domstock.ComputeForecast(soldByProduct[g.productID], uc.policy.SalesLookbackDays, g.totalQty, lastSale)

		sug := domstock.Plan(cls, g.totalQty, g.reorderLevel, uc.policy)

		item := dto.StockOverviewItem{
			ProductID:         g.productID,
			ProductName:       g.productName,
			TotalQuantity:     g.totalQty,
			ReorderLevel:      g.reorderLevel,
			Status:            string(cls.Status),
			Overstock:         cls.Overstock,
			Expiring:          cls.Expiring,
			Progress:          cls.Progress,
			AverageDailySales: fc.AverageDailySales,
			DaysToOutOfStock:  fc.DaysToOutOfStock,
			LastSaleAt:        fc.LastSaleAt,
			SuggestedQuantity: sug.Quantity,
			Priority:          string(sug.Priority),
			Reason:            sug.Reason,
		}
		if c, ok := cadenceByProduct[g.productID]; ok {
			freq := c.FrequencyDays
			item.FrequencyDays = &freq
			if next, immediate := c.NextDue(); !immediate {
				item.NextReplenishment = &next
			}
		}
		items = append(items, item)
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

// StoreStock filas crudas (producto, lote, cantidad) de una tienda.
func (uc *OverviewUseCase) StoreStock(ctx context.Context, storeID int) ([]dto.StockRow, error) {
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	rows, err := uc.stockRepo.ListStoreBatchRows(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockRow{
			ProductName:    r.ProductName,
			BatchCode:      r.Batch.BatchCode,
			ExpirationDate: r.Batch.ExpirationDate,
			Quantity:       r.Batch.Quantity,
		})
	}
	return out, nil
}

// ProductBatches lotes con stock de un producto en orden FIFO.
func (uc *OverviewUseCase) ProductBatches(ctx context.Context, storeID, productID int) ([]dto.BatchStockResponse, error) {
	rows, err := uc.stockRepo.ListBatchStock(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchStockResponse, 0)
	for _, b := range domstock.AvailableFIFO(rows) {
		out = append(out, dto.BatchStockResponse{
			BatchID:        b.BatchID,
			BatchCode:      b.BatchCode,
			ExpirationDate: b.ExpirationDate,
			Quantity:       b.Quantity,
		})
	}
	return out, nil
}

// NextBatch lote que debe reponerse/consumirse a continuación.
// Propaga ErrNoAvailableBatch cuando ningún lote tiene cantidad positiva.
func (uc *OverviewUseCase) NextBatch(ctx context.Context, storeID, productID int) (*dto.NextBatchResponse, error) {
	rows, err := uc.stockRepo.ListBatchStock(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	next, err := domstock.NextBatch(rows)
	if err != nil {
		return nil, err
	}
	return &dto.NextBatchResponse{
		BatchID:        next.BatchID,
		BatchCode:      next.BatchCode,
		Quantity:       next.Quantity,
		ExpirationDate: next.ExpirationDate,
	}, nil
}

func (uc *OverviewUseCase) requireStore(ctx context.Context, storeID int) error {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return nil
}
