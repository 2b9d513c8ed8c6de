package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forecast proyección de demanda derivada del historial de ventas.
// Puro: sin efectos secundarios ni acceso a datos.
type Forecast struct {
	AverageDailySales decimal.Decimal
	// DaysToOutOfStock nil = sin ventas en la ventana, proyección no
	// acotada (nunca un error de división).
	DaysToOutOfStock *decimal.Decimal
	LastSaleAt       *time.Time
}

// ComputeForecast calcula el promedio diario sobre la ventana W y los días
// estimados hasta quiebre de stock.
func ComputeForecast(unitsSold, windowDays, totalQty int, lastSaleAt *time.Time) Forecast {
	f := Forecast{LastSaleAt: lastSaleAt}
	if windowDays <= 0 || unitsSold <= 0 {
		f.AverageDailySales = decimal.Zero
		return f
	}

	f.AverageDailySales = decimal.NewFromInt(int64(unitsSold)).
		Div(decimal.NewFromInt(int64(windowDays))).
		Round(2)

	if f.AverageDailySales.IsPositive() {
		days := decimal.NewFromInt(int64(totalQty)).
			Div(f.AverageDailySales).
			Round(1)
		f.DaysToOutOfStock = &days
	}
	return f
}
