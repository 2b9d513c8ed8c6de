package entity

import "time"

// Límites de la frecuencia de reposición (días).
const (
	MinFrequencyDays = 1
	MaxFrequencyDays = 3
)

// ValidFrequencyDays indica si la frecuencia está dentro del rango [1,3].
func ValidFrequencyDays(days int) bool {
	return days >= MinFrequencyDays && days <= MaxFrequencyDays
}

// ReplenishmentCadence frecuencia configurada de reposición para un par
// (producto, tienda). Una fila por par. LastReplenishmentDate se actualiza
// en cada commit de reposición.
type ReplenishmentCadence struct {
	ID                    int
	ProductID             int
	StoreID               int
	FrequencyDays         int
	LastReplenishmentDate *time.Time
}

// NextDue devuelve la próxima fecha esperada de reposición. Si nunca se ha
// repuesto (last = nil), la reposición está vencida de inmediato.
func (c *ReplenishmentCadence) NextDue() (next time.Time, immediate bool) {
	if c.LastReplenishmentDate == nil {
		return time.Time{}, true
	}
	return c.LastReplenishmentDate.AddDate(0, 0, c.FrequencyDays), false
}

// DueOn indica si en la fecha dada ya corresponde reponer.
func (c *ReplenishmentCadence) DueOn(today time.Time) bool {
	next, immediate := c.NextDue()
	if immediate {
		return true
	}
	return !today.Before(next)
}

// ReplenishmentLogEntry registro inmutable de una reposición confirmada.
// Append-only: nunca se actualiza ni borra; es la fuente de verdad del
// historial y de la actualización de cadencia. RequestID deduplica retries.
type ReplenishmentLogEntry struct {
	ID             int
	RequestID      string
	ProductID      int
	StoreID        int
	BatchID        int
	ExpirationDate *time.Time
	Quantity       int
	UserID         int
	Timestamp      time.Time

	// Campos de override: solo presentes cuando un manager autorizó exceder
	// el techo FIFO o alterar la sugerencia. Distinguen el commit en el
	// historial.
	Override         bool
	OverrideReason   string
	OverridePriority string
	OverrideNotes    string
}

// Estados de una lista de reposición gestionada.
const (
	ListStatusDraft     = "draft"
	ListStatusCompleted = "completed"
	ListStatusCancelled = "cancelled"
)

// ReplenishmentList lista de reposición de una tienda para una fecha.
type ReplenishmentList struct {
	ID        int
	StoreID   int
	ListDate  time.Time
	Status    string
	Notes     string
	CreatedAt time.Time
}

// ReplenishmentListItem renglón de una lista: cantidad propuesta para un
// producto con su razón y prioridad. Los overrides de manager mutan estos
// campos y quedan registrados en notes/reason.
type ReplenishmentListItem struct {
	ID           int
	ListID       int
	ProductID    int
	ProductName  string
	Quantity     int
	CurrentStock int
	Reason       string
	Priority     string
	Notes        string
}
