package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
)

var _ repository.CadenceRepository = (*CadenceRepo)(nil)

// CadenceRepo implementación de CadenceRepository sobre PostgreSQL.
type CadenceRepo struct {
	q Querier
}

// NewCadenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCadenceRepository(q Querier) *CadenceRepo {
	return &CadenceRepo{q: q}
}

// Get devuelve la cadencia del par (producto, tienda) o nil si no existe.
func (r *CadenceRepo) Get(ctx context.Context, productID, storeID int) (*entity.ReplenishmentCadence, error) {
	query := `
		SELECT id, product_id, store_id, frequency_days, last_replenishment_date
		FROM replenishment_cadences
		WHERE product_id = $1 AND store_id = $2`
	var c entity.ReplenishmentCadence
	err := r.q.QueryRow(ctx, query, productID, storeID).Scan(
		&c.ID, &c.ProductID, &c.StoreID, &c.FrequencyDays, &c.LastReplenishmentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cadence: %w", err)
	}
	return &c, nil
}

// List filtra por tienda y/o producto (cero = sin filtro).
func (r *CadenceRepo) List(ctx context.Context, storeID, productID int) ([]*entity.ReplenishmentCadence, error) {
	query := `
		SELECT id, product_id, store_id, frequency_days, last_replenishment_date
		FROM replenishment_cadences
		WHERE ($1 = 0 OR store_id = $1) AND ($2 = 0 OR product_id = $2)
		ORDER BY store_id, product_id`
	rows, err := r.q.Query(ctx, query, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("list cadences: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReplenishmentCadence
	for rows.Next() {
		var c entity.ReplenishmentCadence
		if err := rows.Scan(&c.ID, &c.ProductID, &c.StoreID, &c.FrequencyDays, &c.LastReplenishmentDate); err != nil {
			return nil, fmt.Errorf("scan cadence: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Upsert crea o actualiza la fila del par (unique en product_id, store_id).
func (r *CadenceRepo) Upsert(ctx context.Context, cadence *entity.ReplenishmentCadence) error {
	query := `
		INSERT INTO replenishment_cadences (product_id, store_id, frequency_days, last_replenishment_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET frequency_days = EXCLUDED.frequency_days,
		              last_replenishment_date = EXCLUDED.last_replenishment_date
		RETURNING id`
	err := r.q.QueryRow(ctx, query, cadence.ProductID, cadence.StoreID, cadence.FrequencyDays, cadence.LastReplenishmentDate).Scan(&cadence.ID)
	if err != nil {
		return fmt.Errorf("upsert cadence: %w", err)
	}
	return nil
}

// Delete elimina la cadencia del par. ErrNotFound si no existe.
func (r *CadenceRepo) Delete(ctx context.Context, productID, storeID int) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM replenishment_cadences WHERE product_id = $1 AND store_id = $2`, productID, storeID)
	if err != nil {
		return fmt.Errorf("delete cadence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
