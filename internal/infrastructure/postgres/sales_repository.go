package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/smartstock-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo lecturas agregadas sobre el historial de ventas. Las tablas
// sales y sale_lines las escribe el POS; aquí solo se consultan.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// UnitsSoldByProductSince suma de unidades vendidas por producto en la
// tienda desde la fecha dada.
func (r *SalesRepo) UnitsSoldByProductSince(ctx context.Context, storeID int, since time.Time) (map[int]int, error) {
	query := `
		SELECT b.product_id, COALESCE(SUM(sl.quantity), 0)
		FROM sale_lines sl
		JOIN sales sa ON sa.id = sl.sale_id
		JOIN batches b ON b.id = sl.batch_id
		WHERE sa.store_id = $1 AND sa.sold_at >= $2
		GROUP BY b.product_id`
	rows, err := r.q.Query(ctx, query, storeID, since)
	if err != nil {
		return nil, fmt.Errorf("units sold by product: %w", err)
	}
	defer rows.Close()
	result := make(map[int]int)
	for rows.Next() {
		var productID, units int
		if err := rows.Scan(&productID, &units); err != nil {
			return nil, fmt.Errorf("scan units sold: %w", err)
		}
		result[productID] = units
	}
	return result, rows.Err()
}

// LastSaleAtByProduct último timestamp de venta por producto en la tienda.
func (r *SalesRepo) LastSaleAtByProduct(ctx context.Context, storeID int) (map[int]time.Time, error) {
	query := `
		SELECT b.product_id, MAX(sa.sold_at)
		FROM sale_lines sl
		JOIN sales sa ON sa.id = sl.sale_id
		JOIN batches b ON b.id = sl.batch_id
		WHERE sa.store_id = $1
		GROUP BY b.product_id`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("last sale by product: %w", err)
	}
	defer rows.Close()
	result := make(map[int]time.Time)
	for rows.Next() {
		var productID int
		var last time.Time
		if err := rows.Scan(&productID, &last); err != nil {
			return nil, fmt.Errorf("scan last sale: %w", err)
		}
		result[productID] = last
	}
	return result, rows.Err()
}
