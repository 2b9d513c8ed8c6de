package repository

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// ReplenishmentLogRepository puerto del log inmutable de reposiciones.
// Solo Create y lecturas: las entradas nunca se actualizan ni se borran.
type ReplenishmentLogRepository interface {
	// Create agrega una entrada. Devuelve ErrDuplicate si ya existe una
	// entrada con el mismo RequestID (deduplicación de retries).
	Create(ctx context.Context, entry *entity.ReplenishmentLogEntry) error

	// GetByRequestID devuelve la entrada del request id o nil.
	GetByRequestID(ctx context.Context, requestID string) (*entity.ReplenishmentLogEntry, error)

	// ListByStoreProduct historial del par, más reciente primero. Finito y
	// re-consultable.
	ListByStoreProduct(ctx context.Context, storeID, productID int) ([]*entity.ReplenishmentLogEntry, error)
}
