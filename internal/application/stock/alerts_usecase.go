package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
	domstock "github.com/jhoicas/smartstock-api/internal/domain/stock"
)

// AlertsUseCase tablero de alertas de una tienda: low stock, overstock,
// expiración próxima y predicción de quiebre. Son las mismas señales del
// clasificador/pronosticador, evaluadas fila por fila de stock.
type AlertsUseCase struct {
	stockRepo repository.StockRepository
	salesRepo repository.SalesRepository
	policy    domstock.Policy
	now       func() time.Time
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(stockRepo repository.StockRepository, salesRepo repository.SalesRepository, policy domstock.Policy) *AlertsUseCase {
	return &AlertsUseCase{stockRepo: stockRepo, salesRepo: salesRepo, policy: policy, now: time.Now}
}

// AlertFilters filtros opcionales (cero = sin filtro).
type AlertFilters struct {
	CategoryID int
	ProductID  int
}

// Alerts evalúa cada fila de stock de la tienda contra los umbrales de la
// política y proyecta el quiebre con el promedio diario de la ventana W.
func (uc *AlertsUseCase) Alerts(ctx context.Context, storeID int, filters AlertFilters) (*dto.AlertsResponse, error) {
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

	resp := &dto.AlertsResponse{
		LowStock:           []dto.AlertItem{},
		Overstock:          []dto.AlertItem{},
		ExpiringSoon:       []dto.AlertItem{},
		StockoutPrediction: []dto.AlertItem{},
	}
	horizon := today.AddDate(0, 0, uc.policy.ExpiryHorizonDays)

	for _, r := range rows {
		if filters.ProductID != 0 && r.ProductID != filters.ProductID {
			continue
		}
		if filters.CategoryID != 0 && r.CategoryID != filters.CategoryID {
			continue
		}
		b := r.Batch

		if b.Quantity <= b.ReorderLevel {
			resp.LowStock = append(resp.LowStock, dto.AlertItem{
				ProductID:    r.ProductID,
				ProductName:  r.ProductName,
				BatchCode:    b.BatchCode,
				Quantity:     b.Quantity,
				ReorderLevel: b.ReorderLevel,
				Message:      fmt.Sprintf("URGENT: stock (%d) at or below reorder level (%d)", b.Quantity, b.ReorderLevel),
			})
		}

		if b.Quantity > b.ReorderLevel*uc.policy.OverstockMultiple {
			resp.Overstock = append(resp.Overstock, dto.AlertItem{
				ProductID:    r.ProductID,
				ProductName:  r.ProductName,
				BatchCode:    b.BatchCode,
				Quantity:     b.Quantity,
				ReorderLevel: b.ReorderLevel,
				Message:      fmt.Sprintf("Overstock: quantity (%d) exceeds %dx reorder level", b.Quantity, uc.policy.OverstockMultiple),
			})
		}

		if b.ExpirationDate != nil && !b.ExpirationDate.Before(today) && !b.ExpirationDate.After(horizon) {
			resp.ExpiringSoon = append(resp.ExpiringSoon, dto.AlertItem{
				ProductID:      r.ProductID,
				ProductName:    r.ProductName,
				BatchCode:      b.BatchCode,
				Quantity:       b.Quantity,
				ExpirationDate: b.ExpirationDate,
				Message:        fmt.Sprintf("Batch %s expires soon (%s)", b.BatchCode, b.ExpirationDate.Format("2006-01-02")),
			})
		}

		fc := domstock.ComputeForecast(soldByProduct[r.ProductID], uc.policy.SalesLookbackDays, b.Quantity, nil)
		if fc.DaysToOutOfStock != nil {
			days, _ := fc.DaysToOutOfStock.Float64()
			if days < float64(uc.policy.StockoutWarningDays) {
				resp.StockoutPrediction = append(resp.StockoutPrediction, dto.AlertItem{
					ProductID:     r.ProductID,
					ProductName:   r.ProductName,
					BatchCode:     b.BatchCode,
					Quantity:      b.Quantity,
					DaysRemaining: &days,
					Message:       fmt.Sprintf("Prediction: batch stock runs out in %.1f days", days),
				})
			}
		}
	}
	return resp, nil
}
