package repository

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo. La edición del catálogo
// es externa a este motor.
type ProductRepository interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, productID int) (*entity.Product, error)
}

// BatchRepository puerto de lectura de lotes.
type BatchRepository interface {
	// GetByID devuelve el lote o nil si no existe.
	GetByID(ctx context.Context, batchID int) (*entity.Batch, error)
}

// StoreRepository puerto de lectura de tiendas.
type StoreRepository interface {
	// GetByID devuelve la tienda o nil si no existe.
	GetByID(ctx context.Context, storeID int) (*entity.Store, error)
}
