package stock

// Priority urgencia de una sugerencia de reposición.
type Priority string

// Prioridades en orden descendente de urgencia.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Razones legibles de la sugerencia; misma precedencia que la prioridad.
const (
	ReasonLowStock    = "Low stock"
	ReasonExpiring    = "Expiring soon"
	ReasonOverstock   = "Overstock"
	ReasonNormalStock = "Normal stock"
)

// Suggestion salida del planificador para un producto en una tienda.
type Suggestion struct {
	Quantity int
	Priority Priority
	Reason   string
}

// Plan combina la clasificación con la política de relleno. La cantidad es
// nivel objetivo (reorder_level * RefillTargetMultiple) menos stock actual,
// con piso en 0. Cuando coinciden varias condiciones gana la prioridad más
// alta: Critical/Low > Expiring > Overstock > normal.
func Plan(c Classification, totalQty, reorderLevel int, p Policy) Suggestion {
	s := Suggestion{}

	target := reorderLevel * p.RefillTargetMultiple
	if target > totalQty {
		s.Quantity = target - totalQty
	}

	switch {
	case c.Status == StatusCritical || c.Status == StatusLow:
		s.Priority = PriorityHigh
		s.Reason = ReasonLowStock
	case c.Expiring:
		s.Priority = PriorityMedium
		s.Reason = ReasonExpiring
	case c.Overstock:
		s.Priority = PriorityLow
		s.Reason = ReasonOverstock
	default:
		s.Priority = PriorityLow
		s.Reason = ReasonNormalStock
	}
	return s
}
