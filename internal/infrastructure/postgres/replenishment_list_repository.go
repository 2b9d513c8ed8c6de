package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
)

var _ repository.ReplenishmentListRepository = (*ReplenishmentListRepo)(nil)

// ReplenishmentListRepo listas de reposición gestionadas y sus renglones.
type ReplenishmentListRepo struct {
	q Querier
}

// NewReplenishmentListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReplenishmentListRepository(q Querier) *ReplenishmentListRepo {
	return &ReplenishmentListRepo{q: q}
}

// CreateList crea la lista; unique (store_id, list_date) -> ErrDuplicate.
func (r *ReplenishmentListRepo) CreateList(ctx context.Context, list *entity.ReplenishmentList) error {
	query := `
		INSERT INTO replenishment_lists (store_id, list_date, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, list.StoreID, list.ListDate, list.Status, list.Notes, list.CreatedAt).Scan(&list.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create replenishment list: %w", err)
	}
	return nil
}

// GetListByStoreDate devuelve la lista del par (tienda, fecha) o nil.
func (r *ReplenishmentListRepo) GetListByStoreDate(ctx context.Context, storeID int, listDate time.Time) (*entity.ReplenishmentList, error) {
	query := `
		SELECT id, store_id, list_date, status, notes, created_at
		FROM replenishment_lists
		WHERE store_id = $1 AND list_date = $2::date`
	var l entity.ReplenishmentList
	err := r.q.QueryRow(ctx, query, storeID, listDate).Scan(
		&l.ID, &l.StoreID, &l.ListDate, &l.Status, &l.Notes, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get replenishment list: %w", err)
	}
	return &l, nil
}

// AddItem agrega un renglón a la lista.
func (r *ReplenishmentListRepo) AddItem(ctx context.Context, item *entity.ReplenishmentListItem) error {
	query := `
		INSERT INTO replenishment_list_items
			(list_id, product_id, quantity, current_stock, reason, priority, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.ListID, item.ProductID, item.Quantity, item.CurrentStock,
		item.Reason, item.Priority, item.Notes,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("add list item: %w", err)
	}
	return nil
}

// ItemsByList devuelve los renglones con nombre de producto.
func (r *ReplenishmentListRepo) ItemsByList(ctx context.Context, listID int) ([]*entity.ReplenishmentListItem, error) {
	query := `
		SELECT i.id, i.list_id, i.product_id, p.name, i.quantity, i.current_stock,
		       i.reason, i.priority, i.notes
		FROM replenishment_list_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.list_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("list items by list: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReplenishmentListItem
	for rows.Next() {
		var it entity.ReplenishmentListItem
		if err := rows.Scan(
			&it.ID, &it.ListID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.CurrentStock, &it.Reason, &it.Priority, &it.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetItem devuelve un renglón por id o nil.
func (r *ReplenishmentListRepo) GetItem(ctx context.Context, itemID int) (*entity.ReplenishmentListItem, error) {
	query := `
		SELECT i.id, i.list_id, i.product_id, p.name, i.quantity, i.current_stock,
		       i.reason, i.priority, i.notes
		FROM replenishment_list_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.id = $1`
	var it entity.ReplenishmentListItem
	err := r.q.QueryRow(ctx, query, itemID).Scan(
		&it.ID, &it.ListID, &it.ProductID, &it.ProductName,
		&it.Quantity, &it.CurrentStock, &it.Reason, &it.Priority, &it.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get list item: %w", err)
	}
	return &it, nil
}

// UpdateItem persiste cantidad, razón, prioridad y notas del renglón.
func (r *ReplenishmentListRepo) UpdateItem(ctx context.Context, item *entity.ReplenishmentListItem) error {
	query := `
		UPDATE replenishment_list_items
		SET quantity = $2, reason = $3, priority = $4, notes = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, item.ID, item.Quantity, item.Reason, item.Priority, item.Notes)
	if err != nil {
		return fmt.Errorf("update list item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
