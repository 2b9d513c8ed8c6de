package stock

import "time"

// Status salud del stock de un producto en una tienda.
type Status string

// Estados posibles.
const (
	StatusStable   Status = "Stable"
	StatusLow      Status = "Low"
	StatusCritical Status = "Critical"
)

// Classification resultado del clasificador. Las señales son independientes
// y pueden coexistir: un producto puede estar Stable por cantidad y aun así
// expiring por su lote más antiguo.
type Classification struct {
	Status    Status
	Overstock bool
	Expiring  bool
	// Progress cantidad normalizada a [0,1] contra el techo
	// reorder_level * OverstockMultiple.
	Progress float64
}

// Classify deriva el estado a partir de la cantidad total del producto en la
// tienda, el reorder_level aplicable y la expiración del lote FIFO (nil si
// no hay lote fechado con stock).
func Classify(totalQty, reorderLevel int, fifoExpiration *time.Time, today time.Time, p Policy) Classification {
	c := Classification{Status: StatusStable}

	if totalQty <= reorderLevel {
		c.Status = StatusLow
		if float64(totalQty) <= float64(reorderLevel)*p.CriticalFraction {
			c.Status = StatusCritical
		}
	}

	c.Overstock = totalQty > reorderLevel*p.OverstockMultiple

	if fifoExpiration != nil {
		horizon := today.AddDate(0, 0, p.ExpiryHorizonDays)
		if !fifoExpiration.Before(today) && !fifoExpiration.After(horizon) {
			c.Expiring = true
		}
	}

	ceiling := reorderLevel * p.OverstockMultiple
	if ceiling > 0 {
		c.Progress = float64(totalQty) / float64(ceiling)
		if c.Progress > 1 {
			c.Progress = 1
		} else if c.Progress < 0 {
			c.Progress = 0
		}
	}

	return c
}
