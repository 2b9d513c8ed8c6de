package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ListBatchStock filas (lote, cantidad) de un producto en una tienda,
// incluidas las de cantidad cero.
func (r *StockRepo) ListBatchStock(ctx context.Context, storeID, productID int) ([]entity.BatchStock, error) {
	query := `
		SELECT b.id, b.batch_code, b.expiration_date, s.quantity, s.reorder_level
		FROM stock_levels s
		JOIN batches b ON b.id = s.batch_id
		WHERE s.store_id = $1 AND b.product_id = $2
		ORDER BY b.id`
	rows, err := r.q.Query(ctx, query, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("list batch stock: %w", err)
	}
	defer rows.Close()
	var list []entity.BatchStock
	for rows.Next() {
		var bs entity.BatchStock
		if err := rows.Scan(&bs.BatchID, &bs.BatchCode, &bs.ExpirationDate, &bs.Quantity, &bs.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan batch stock: %w", err)
		}
		list = append(list, bs)
	}
	return list, rows.Err()
}

// ListStoreBatchRows todas las filas de stock de la tienda con su producto.
func (r *StockRepo) ListStoreBatchRows(ctx context.Context, storeID int) ([]repository.StoreBatchRow, error) {
	query := `
		SELECT b.product_id, p.name, p.category_id,
		       b.id, b.batch_code, b.expiration_date, s.quantity, s.reorder_level
		FROM stock_levels s
		JOIN batches b ON b.id = s.batch_id
		JOIN products p ON p.id = b.product_id
		WHERE s.store_id = $1 AND p.is_active
		ORDER BY p.name, b.id`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store batch rows: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreBatchRow
	for rows.Next() {
		var row repository.StoreBatchRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.CategoryID,
			&row.Batch.BatchID, &row.Batch.BatchCode, &row.Batch.ExpirationDate,
			&row.Batch.Quantity, &row.Batch.ReorderLevel,
		); err != nil {
			return nil, fmt.Errorf("scan store batch row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene la fila (tienda, lote) y la bloquea (SELECT FOR UPDATE).
// Si el par no tiene fila, primero la inserta en cero (reorder_level toma el
// DEFAULT del esquema); el insert hace que dos primeros commits concurrentes
// sobre el mismo par se serialicen en vez de perder una actualización.
func (r *StockRepo) GetForUpdate(ctx context.Context, storeID, batchID int) (*entity.StockLevel, error) {
	insert := `
		INSERT INTO stock_levels (store_id, batch_id, quantity, reorder_level, updated_at)
		VALUES ($1, $2, 0, DEFAULT, now())
		ON CONFLICT (store_id, batch_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, storeID, batchID); err != nil {
		return nil, fmt.Errorf("ensure stock level: %w", err)
	}

	query := `
		SELECT id, store_id, batch_id, quantity, reorder_level, updated_at
		FROM stock_levels WHERE store_id = $1 AND batch_id = $2
		FOR UPDATE`
	var l entity.StockLevel
	err := r.q.QueryRow(ctx, query, storeID, batchID).Scan(
		&l.ID, &l.StoreID, &l.BatchID, &l.Quantity, &l.ReorderLevel, &l.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &l, nil
}

// Upsert inserta o actualiza la cantidad de la fila (tienda, lote).
func (r *StockRepo) Upsert(ctx context.Context, level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (store_id, batch_id, quantity, reorder_level, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (store_id, batch_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reorder_level = EXCLUDED.reorder_level, updated_at = now()`
	_, err := r.q.Exec(ctx, query, level.StoreID, level.BatchID, level.Quantity, level.ReorderLevel)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}
