package replenishment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/smartstock-api/internal/application/dto"
	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
	domstock "github.com/jhoicas/smartstock-api/internal/domain/stock"
)

// CommitUseCase confirma una reposición como unidad atómica: muta la fila
// StockLevel (con bloqueo de fila), agrega exactamente una entrada al log
// inmutable y actualiza last_replenishment_date de la cadencia. El techo
// FIFO se valida antes de mutar; excederlo exige rol manager con
// justificación explícita.
type CommitUseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	batchRepo   repository.BatchRepository
	logRepo     repository.ReplenishmentLogRepository
	cadenceRepo repository.CadenceRepository
	now         func() time.Time
}

// NewCommitUseCase construye el caso de uso.
func NewCommitUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	logRepo repository.ReplenishmentLogRepository,
	cadenceRepo repository.CadenceRepository,
) *CommitUseCase {
	return &CommitUseCase{
		txRunner:    txRunner,
		stockRepo:   stockRepo,
		batchRepo:   batchRepo,
		logRepo:     logRepo,
		cadenceRepo: cadenceRepo,
		now:         time.Now,
	}
}

// CommitInput entrada del commit. El actor viaja explícito en cada request;
// RequestID (UUID del caller) deduplica reintentos tras timeout.
type CommitInput struct {
	RequestID      string
	StoreID        int
	ProductID      int
	BatchID        int
	Quantity       int
	ExpirationDate *time.Time
	EffectiveDate  time.Time
	Actor          entity.Actor

	OverrideReason   string
	OverridePriority string
	OverrideNotes    string
}

func (in *CommitInput) validate() error {
	if in.Quantity <= 0 || in.StoreID <= 0 || in.ProductID <= 0 || in.BatchID <= 0 {
		return domain.ErrInvalidInput
	}
	if _, err := uuid.Parse(in.RequestID); err != nil {
		return domain.ErrInvalidInput
	}
	if !in.Actor.Role.Valid() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Commit ejecuta el flujo Suggested → {StandardCommit | AuthorizedOverrideCommit}
// → Committed. Cualquier fallo de persistencia hace rollback completo: nunca
// queda stock mutado sin entrada de log ni al revés.
func (uc *CommitUseCase) Commit(ctx context.Context, in CommitInput) (*dto.CommitResponse, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	batch, err := uc.batchRepo.GetByID(ctx, in.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil || batch.ProductID != in.ProductID {
		return nil, domain.ErrNotFound
	}

	// Reintento del mismo request: éxito idempotente, sin reaplicar.
	if existing, err := uc.logRepo.GetByRequestID(ctx, in.RequestID); err != nil {
		return nil, err
	} else if existing != nil {
		return uc.committedResponse(ctx, in, true)
	}

	override, err := uc.checkFifoCeiling(ctx, in)
	if err != nil {
		return nil, err
	}

	effective := in.EffectiveDate
	if effective.IsZero() {
		effective = uc.now()
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		logRepo repository.ReplenishmentLogRepository,
		cadenceRepo repository.CadenceRepository,
	) error {
		// Serializa commits concurrentes sobre la misma fila (tienda, lote).
		level, err := stockRepo.GetForUpdate(ctx, in.StoreID, in.BatchID)
		if err != nil {
			return err
		}
		level.Quantity += in.Quantity
		level.UpdatedAt = uc.now()
		if err := stockRepo.Upsert(ctx, level); err != nil {
			return err
		}

		entry := &entity.ReplenishmentLogEntry{
			RequestID:      in.RequestID,
			ProductID:      in.ProductID,
			StoreID:        in.StoreID,
			BatchID:        in.BatchID,
			ExpirationDate: in.ExpirationDate,
			Quantity:       in.Quantity,
			UserID:         in.Actor.UserID,
			Timestamp:      uc.now(),
		}
		if override {
			entry.Override = true
			entry.OverrideReason = in.OverrideReason
			entry.OverridePriority = in.OverridePriority
			entry.OverrideNotes = in.OverrideNotes
		}
		if err := logRepo.Create(ctx, entry); err != nil {
			return err
		}

		cadence, err := cadenceRepo.Get(ctx, in.ProductID, in.StoreID)
		if err != nil {
			return err
		}
		if cadence == nil {
			// La cadencia del par debe existir antes del primer commit.
			return domain.ErrNotFound
		}
		cadence.LastReplenishmentDate = &effective
		return cadenceRepo.Upsert(ctx, cadence)
	})
	if err != nil {
		// Carrera entre el pre-chequeo y el insert: otro retry ganó la
		// unicidad de request_id. El commit ya está aplicado.
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.committedResponse(ctx, in, true)
		}
		return nil, err
	}

	return uc.committedResponse(ctx, in, false)
}

// checkFifoCeiling aplica la regla de techo del lote más antiguo: un actor
// sin privilegio no puede reponer un lote más nuevo que el FIFO ni pedir más
// de lo que ese lote tiene. Un manager sí, con reason y priority presentes.
// Devuelve si el commit queda marcado como override.
func (uc *CommitUseCase) checkFifoCeiling(ctx context.Context, in CommitInput) (bool, error) {
	rows, err := uc.stockRepo.ListBatchStock(ctx, in.StoreID, in.ProductID)
	if err != nil {
		return false, err
	}
	next, err := domstock.NextBatch(rows)
	if errors.Is(err, domain.ErrNoAvailableBatch) {
		// Sin stock en ningún lote no hay orden FIFO que violar.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	violates := in.BatchID != next.BatchID || in.Quantity > next.Quantity
	if !violates {
		return false, nil
	}
	if !in.Actor.Role.CanOverride() {
		return false, domain.ErrFifoViolation
	}
	if strings.TrimSpace(in.OverrideReason) == "" || strings.TrimSpace(in.OverridePriority) == "" {
		// El override autorizado exige justificación y prioridad explícitas.
		return false, domain.ErrInvalidInput
	}
	return true, nil
}

func (uc *CommitUseCase) committedResponse(ctx context.Context, in CommitInput, alreadyApplied bool) (*dto.CommitResponse, error) {
	cadence, err := uc.cadenceRepo.Get(ctx, in.ProductID, in.StoreID)
	if err != nil {
		return nil, err
	}
	if cadence == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CommitResponse{
		FrequencyDays:         cadence.FrequencyDays,
		LastReplenishmentDate: cadence.LastReplenishmentDate,
		AlreadyApplied:        alreadyApplied,
	}, nil
}

// History historial de reposiciones del par, más reciente primero.
func (uc *CommitUseCase) History(ctx context.Context, storeID, productID int) ([]dto.LogEntryResponse, error) {
	entries, err := uc.logRepo.ListByStoreProduct(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LogEntryResponse{
			LogID:            e.ID,
			RequestID:        e.RequestID,
			ProductID:        e.ProductID,
			StoreID:          e.StoreID,
			BatchID:          e.BatchID,
			ExpirationDate:   e.ExpirationDate,
			Quantity:         e.Quantity,
			UserID:           e.UserID,
			Timestamp:        e.Timestamp,
			Override:         e.Override,
			OverrideReason:   e.OverrideReason,
			OverridePriority: e.OverridePriority,
			OverrideNotes:    e.OverrideNotes,
		})
	}
	return out, nil
}
