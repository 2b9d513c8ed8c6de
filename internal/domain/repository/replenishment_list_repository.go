package repository

import (
	"context"
	"time"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// ReplenishmentListRepository puerto de las listas de reposición gestionadas
// y sus items.
type ReplenishmentListRepository interface {
	// CreateList crea la lista; ErrDuplicate si ya existe una para
	// (tienda, fecha).
	CreateList(ctx context.Context, list *entity.ReplenishmentList) error

	// GetListByStoreDate devuelve la lista del par (tienda, fecha) o nil.
	GetListByStoreDate(ctx context.Context, storeID int, listDate time.Time) (*entity.ReplenishmentList, error)

	// AddItem agrega un renglón a la lista.
	AddItem(ctx context.Context, item *entity.ReplenishmentListItem) error

	// ItemsByList devuelve los renglones con nombre de producto.
	ItemsByList(ctx context.Context, listID int) ([]*entity.ReplenishmentListItem, error)

	// GetItem devuelve un renglón por id o nil.
	GetItem(ctx context.Context, itemID int) (*entity.ReplenishmentListItem, error)

	// UpdateItem persiste cantidad, razón, prioridad y notas del renglón.
	UpdateItem(ctx context.Context, item *entity.ReplenishmentListItem) error
}
