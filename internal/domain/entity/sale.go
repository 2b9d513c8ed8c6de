package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta histórica. Este motor solo la lee: el registro
// de ventas lo produce el punto de venta (colaborador externo).
type Sale struct {
	ID          int
	StoreID     int
	Date        time.Time
	TotalAmount decimal.Decimal
}

// SaleLine renglón de venta por lote. Append-only; alimenta el pronóstico
// de demanda.
type SaleLine struct {
	ID       int
	SaleID   int
	BatchID  int
	Quantity int
	Subtotal decimal.Decimal
}
