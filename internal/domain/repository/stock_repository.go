package repository

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// StoreBatchRow fila cruda del ledger de stock de una tienda: lote + producto.
// La produce la DB; los use cases la agrupan por producto.
type StoreBatchRow struct {
	ProductID   int
	ProductName string
	CategoryID  int
	Batch       entity.BatchStock
}

// StockRepository puerto de lectura/escritura del ledger de stock.
// Las lecturas son el "Stock Ledger Reader" del motor; GetForUpdate y Upsert
// solo se usan dentro de la transacción de commit.
type StockRepository interface {
	// ListBatchStock filas (lote, cantidad) de un producto en una tienda,
	// incluidas las de cantidad cero. El orden FIFO lo decide el dominio.
	ListBatchStock(ctx context.Context, storeID, productID int) ([]entity.BatchStock, error)

	// ListStoreBatchRows todas las filas de stock de la tienda con su
	// producto, para overview y alertas en una sola consulta.
	ListStoreBatchRows(ctx context.Context, storeID int) ([]StoreBatchRow, error)

	// GetForUpdate obtiene la fila (tienda, lote) y la bloquea
	// (SELECT FOR UPDATE) para serializar commits concurrentes. Si el par
	// no tiene fila todavía, la crea en cero con el reorder level por
	// defecto antes de bloquearla, de modo que dos primeros commits
	// concurrentes también se serialicen sobre la fila nueva.
	GetForUpdate(ctx context.Context, storeID, batchID int) (*entity.StockLevel, error)

	// Upsert inserta o actualiza la cantidad de la fila (tienda, lote).
	Upsert(ctx context.Context, level *entity.StockLevel) error
}
