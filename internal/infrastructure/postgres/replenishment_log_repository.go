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

var _ repository.ReplenishmentLogRepository = (*ReplenishmentLogRepo)(nil)

// ReplenishmentLogRepo log inmutable de reposiciones sobre PostgreSQL.
// Solo INSERT y SELECT; no hay UPDATE ni DELETE sobre esta tabla.
type ReplenishmentLogRepo struct {
	q Querier
}

// NewReplenishmentLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReplenishmentLogRepository(q Querier) *ReplenishmentLogRepo {
	return &ReplenishmentLogRepo{q: q}
}

// Create agrega una entrada. El índice único sobre request_id convierte un
// retry duplicado en ErrDuplicate.
func (r *ReplenishmentLogRepo) Create(ctx context.Context, entry *entity.ReplenishmentLogEntry) error {
	query := `
		INSERT INTO replenishment_log
			(request_id, product_id, store_id, batch_id, expiration_date, quantity, user_id,
			 ts, override, override_reason, override_priority, override_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		entry.RequestID, entry.ProductID, entry.StoreID, entry.BatchID,
		entry.ExpirationDate, entry.Quantity, entry.UserID, entry.Timestamp,
		entry.Override, entry.OverrideReason, entry.OverridePriority, entry.OverrideNotes,
	).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create replenishment log entry: %w", err)
	}
	return nil
}

// GetByRequestID devuelve la entrada del request id o nil.
func (r *ReplenishmentLogRepo) GetByRequestID(ctx context.Context, requestID string) (*entity.ReplenishmentLogEntry, error) {
	query := `
		SELECT id, request_id, product_id, store_id, batch_id, expiration_date, quantity, user_id,
		       ts, override, override_reason, override_priority, override_notes
		FROM replenishment_log WHERE request_id = $1`
	e, err := scanLogEntry(r.q.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get log entry by request id: %w", err)
	}
	return e, nil
}

// ListByStoreProduct historial del par, más reciente primero.
func (r *ReplenishmentLogRepo) ListByStoreProduct(ctx context.Context, storeID, productID int) ([]*entity.ReplenishmentLogEntry, error) {
	query := `
		SELECT id, request_id, product_id, store_id, batch_id, expiration_date, quantity, user_id,
		       ts, override, override_reason, override_priority, override_notes
		FROM replenishment_log
		WHERE store_id = $1 AND product_id = $2
		ORDER BY ts DESC, id DESC`
	rows, err := r.q.Query(ctx, query, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReplenishmentLogEntry
	for rows.Next() {
		e, err := scanLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanLogEntry(row pgx.Row) (*entity.ReplenishmentLogEntry, error) {
	var e entity.ReplenishmentLogEntry
	err := row.Scan(
		&e.ID, &e.RequestID, &e.ProductID, &e.StoreID, &e.BatchID,
		&e.ExpirationDate, &e.Quantity, &e.UserID, &e.Timestamp,
		&e.Override, &e.OverrideReason, &e.OverridePriority, &e.OverrideNotes,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
