package stock

// Policy agrupa los umbrales del motor en una estructura nombrada, para que
// clasificación y planificación sean testeables y afinables sin constantes
// dispersas.
type Policy struct {
	// SalesLookbackDays ventana W (días) para el promedio diario de ventas.
	SalesLookbackDays int
	// ExpiryHorizonDays horizonte N: el lote FIFO que expira dentro de N
	// días marca el producto como "expiring".
	ExpiryHorizonDays int
	// CriticalFraction fracción del reorder_level bajo la cual Low pasa a
	// Critical.
	CriticalFraction float64
	// OverstockMultiple sobrestock cuando quantity > reorder_level * este
	// múltiplo. También es el techo de la barra de progreso.
	OverstockMultiple int
	// RefillTargetMultiple nivel objetivo de reposición como múltiplo del
	// reorder_level.
	RefillTargetMultiple int
	// StockoutWarningDays alerta de quiebre cuando la proyección cae por
	// debajo de estos días.
	StockoutWarningDays int
}

// DefaultPolicy valores por defecto documentados del motor.
func DefaultPolicy() Policy {
	return Policy{
		SalesLookbackDays:    30,
		ExpiryHorizonDays:    2,
		CriticalFraction:     0.5,
		OverstockMultiple:    3,
		RefillTargetMultiple: 2,
		StockoutWarningDays:  7,
	}
}
