package repository

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// CadenceRepository puerto de la cadencia de reposición por (producto,
// tienda). A lo sumo una fila por par (unique en DB).
type CadenceRepository interface {
	// Get devuelve la cadencia del par o nil si no está configurada.
	Get(ctx context.Context, productID, storeID int) (*entity.ReplenishmentCadence, error)

	// List filtra por tienda y/o producto (cero = sin filtro).
	List(ctx context.Context, storeID, productID int) ([]*entity.ReplenishmentCadence, error)

	// Upsert crea o actualiza la fila del par. La validación de rango de
	// FrequencyDays ocurre antes, en el use case.
	Upsert(ctx context.Context, cadence *entity.ReplenishmentCadence) error

	// Delete elimina la cadencia del par. ErrNotFound si no existe.
	Delete(ctx context.Context, productID, storeID int) error
}
