package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/stock"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func batchIDs(rows []entity.BatchStock) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.BatchID)
	}
	return ids
}

// ──────────────────────────────────────────────────────────────────────────────
// SortFIFO
// ──────────────────────────────────────────────────────────────────────────────

// La expiración más temprana va primero; los lotes sin fecha al final.
func TestSortFIFO_ExpiracionTempranaPrimero_SinFechaAlFinal(t *testing.T) {
	rows := []entity.BatchStock{
		{BatchID: 1, ExpirationDate: nil, Quantity: 10},
		{BatchID: 2, ExpirationDate: date(t, "2026-09-15"), Quantity: 5},
		{BatchID: 3, ExpirationDate: date(t, "2026-09-01"), Quantity: 8},
	}
	stock.SortFIFO(rows)

	assert.Equal(t, []int{3, 2, 1}, batchIDs(rows),
		"el orden debe ser: expiración más temprana, luego más tardía, nil al final")
}

// Empate de expiración: desempata el batch_id menor (determinista).
func TestSortFIFO_EmpateDeExpiracion_DesempataPorBatchID(t *testing.T) {
	exp := date(t, "2026-09-10")
	rows := []entity.BatchStock{
		{BatchID: 7, ExpirationDate: exp},
		{BatchID: 3, ExpirationDate: exp},
		{BatchID: 5, ExpirationDate: exp},
	}
	stock.SortFIFO(rows)

	assert.Equal(t, []int{3, 5, 7}, batchIDs(rows))
}

// Varios lotes sin fecha mantienen orden determinista por batch_id.
func TestSortFIFO_SinFecha_OrdenPorBatchID(t *testing.T) {
	rows := []entity.BatchStock{
		{BatchID: 9},
		{BatchID: 2},
		{BatchID: 4},
	}
	stock.SortFIFO(rows)

	assert.Equal(t, []int{2, 4, 9}, batchIDs(rows))
}

// ──────────────────────────────────────────────────────────────────────────────
// AvailableFIFO / NextBatch
// ──────────────────────────────────────────────────────────────────────────────

// Los lotes con cantidad cero no participan del orden FIFO.
func TestAvailableFIFO_ExcluyeCantidadCero(t *testing.T) {
	rows := []entity.BatchStock{
		{BatchID: 1, ExpirationDate: date(t, "2026-09-01"), Quantity: 0},
		{BatchID: 2, ExpirationDate: date(t, "2026-09-05"), Quantity: 4},
		{BatchID: 3, ExpirationDate: nil, Quantity: 6},
	}
	available := stock.AvailableFIFO(rows)

	assert.Equal(t, []int{2, 3}, batchIDs(available),
		"el lote agotado más temprano no debe aparecer")
}

// AvailableFIFO no debe mutar el slice de entrada.
func TestAvailableFIFO_NoMutaEntrada(t *testing.T) {
	rows := []entity.BatchStock{
		{BatchID: 2, ExpirationDate: date(t, "2026-09-05"), Quantity: 4},
		{BatchID: 1, ExpirationDate: date(t, "2026-09-01"), Quantity: 3},
	}
	_ = stock.AvailableFIFO(rows)

	assert.Equal(t, []int{2, 1}, batchIDs(rows), "la entrada debe quedar intacta")
}

// El siguiente lote es el FIFO con stock; su cantidad es el techo estándar.
func TestNextBatch_DevuelveElMasAntiguoConStock(t *testing.T) {
	rows := []entity.BatchStock{
		{BatchID: 1, ExpirationDate: date(t, "2026-09-01"), Quantity: 0},
		{BatchID: 2, ExpirationDate: date(t, "2026-09-03"), Quantity: 5},
		{BatchID: 3, ExpirationDate: date(t, "2026-09-02"), Quantity: 7},
	}
	next, err := stock.NextBatch(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, next.BatchID, "gana la expiración más temprana con stock")
	assert.Equal(t, 7, next.Quantity)
}

// Sin lotes con stock no hay siguiente: ErrNoAvailableBatch, nunca pánico.
func TestNextBatch_SinStock_ErrNoAvailableBatch(t *testing.T) {
	rows := []entity.BatchStock{
		{BatchID: 1, Quantity: 0},
		{BatchID: 2, Quantity: 0},
	}
	_, err := stock.NextBatch(rows)
	assert.ErrorIs(t, err, domain.ErrNoAvailableBatch)

	_, err = stock.NextBatch(nil)
	assert.ErrorIs(t, err, domain.ErrNoAvailableBatch, "también aplica sin filas")
}
