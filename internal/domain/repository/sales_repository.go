package repository

import (
	"context"
	"time"
)

// SalesRepository puerto de solo lectura sobre el historial de ventas
// ("Sales History Reader"). El registro de ventas lo escribe el POS, no
// este motor. Ambas lecturas agregan por producto para toda la tienda en
// una sola consulta (overview, alertas, lista diaria).
type SalesRepository interface {
	// UnitsSoldByProductSince unidades vendidas por producto desde la fecha
	// dada (suma de renglones de venta de todos los lotes del producto).
	UnitsSoldByProductSince(ctx context.Context, storeID int, since time.Time) (map[int]int, error)

	// LastSaleAtByProduct último timestamp de venta por producto; los
	// productos nunca vendidos no aparecen en el mapa.
	LastSaleAtByProduct(ctx context.Context, storeID int) (map[int]time.Time, error)
}
