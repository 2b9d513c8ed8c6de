package stock

import (
	"sort"

	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// SortFIFO ordena los lotes en orden de consumo: expiración no nula más
// temprana primero, lotes sin fecha después de todos los fechados, empates
// por batch_id menor. El orden es estable y determinista.
func SortFIFO(rows []entity.BatchStock) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.ExpirationDate == nil && b.ExpirationDate == nil:
			return a.BatchID < b.BatchID
		case a.ExpirationDate == nil:
			return false
		case b.ExpirationDate == nil:
			return true
		case a.ExpirationDate.Equal(*b.ExpirationDate):
			return a.BatchID < b.BatchID
		default:
			return a.ExpirationDate.Before(*b.ExpirationDate)
		}
	})
}

// AvailableFIFO devuelve los lotes con cantidad positiva en orden FIFO.
// No muta el slice de entrada.
func AvailableFIFO(rows []entity.BatchStock) []entity.BatchStock {
	available := make([]entity.BatchStock, 0, len(rows))
	for _, r := range rows {
		if r.Quantity > 0 {
			available = append(available, r)
		}
	}
	SortFIFO(available)
	return available
}

// NextBatch devuelve el lote que debe consumirse (o reponerse) a
// continuación para el par (tienda, producto) representado por rows.
// Su cantidad actúa como techo de reposición para actores sin privilegio
// de override. Devuelve ErrNoAvailableBatch si ningún lote tiene stock.
func NextBatch(rows []entity.BatchStock) (entity.BatchStock, error) {
	available := AvailableFIFO(rows)
	if len(available) == 0 {
		return entity.BatchStock{}, domain.ErrNoAvailableBatch
	}
	return available[0], nil
}
