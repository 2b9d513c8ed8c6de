package dto

import "time"

// NextBatchResponse lote que debe reponerse/consumirse a continuación según
// el orden FIFO.
type NextBatchResponse struct {
	BatchID        int        `json:"batch_id"`
	BatchCode      string     `json:"batch_code"`
	Quantity       int        `json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// CommitRequest body para POST /api/replenishment/commit.
// RequestID es el identificador de idempotencia provisto por el caller:
// reintentar el mismo commit no lo aplica dos veces.
type CommitRequest struct {
	RequestID      string     `json:"request_id"`
	StoreID        int        `json:"store_id"`
	ProductID      int        `json:"product_id"`
	BatchID        int        `json:"batch_id"`
	Quantity       int        `json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date"`
	EffectiveDate  *time.Time `json:"effective_date"` // nil = hoy

	// Campos de override (obligatorios cuando el commit excede el techo
	// FIFO y el actor es manager).
	OverrideReason   string `json:"override_reason,omitempty"`
	OverridePriority string `json:"override_priority,omitempty"`
	OverrideNotes    string `json:"override_notes,omitempty"`
}

// CommitResponse cadencia resultante tras el commit.
type CommitResponse struct {
	FrequencyDays         int        `json:"frequency_days"`
	LastReplenishmentDate *time.Time `json:"last_replenishment_date"`
	AlreadyApplied        bool       `json:"already_applied,omitempty"` // request_id repetido
}

// LogEntryResponse entrada del historial de reposiciones.
type LogEntryResponse struct {
	LogID            int        `json:"log_id"`
	RequestID        string     `json:"request_id"`
	ProductID        int        `json:"product_id"`
	StoreID          int        `json:"store_id"`
	BatchID          int        `json:"batch_id"`
	ExpirationDate   *time.Time `json:"expiration_date"`
	Quantity         int        `json:"quantity"`
	UserID           int        `json:"user_id"`
	Timestamp        time.Time  `json:"timestamp"`
	Override         bool       `json:"override"`
	OverrideReason   string     `json:"override_reason,omitempty"`
	OverridePriority string     `json:"override_priority,omitempty"`
	OverrideNotes    string     `json:"override_notes,omitempty"`
}

// CadenceRequest body para crear/actualizar la frecuencia de un par.
type CadenceRequest struct {
	ProductID             int        `json:"product_id"`
	StoreID               int        `json:"store_id"`
	FrequencyDays         int        `json:"frequency_days"`
	LastReplenishmentDate *time.Time `json:"last_replenishment_date,omitempty"`
}

// CadenceResponse cadencia de un par con su próxima fecha esperada.
type CadenceResponse struct {
	ProductID             int        `json:"product_id"`
	StoreID               int        `json:"store_id"`
	FrequencyDays         int        `json:"frequency_days"`
	LastReplenishmentDate *time.Time `json:"last_replenishment_date"`
	NextDue               *time.Time `json:"next_due"` // null = vencida de inmediato
	DueImmediately        bool       `json:"due_immediately"`
}

// DailyListItem renglón de la lista diaria automática de reposición.
type DailyListItem struct {
	ProductID         int        `json:"product_id"`
	ProductName       string     `json:"product_name"`
	CurrentStock      int        `json:"current_stock"`
	FrequencyDays     *int       `json:"replenishment_frequency"`
	LastReplenishment *time.Time `json:"last_replenishment_date"`
	NextReplenishment *time.Time `json:"next_replenishment_date"`
	Reason            string     `json:"reason"`
	Priority          string     `json:"priority"`
	Quantity          *int       `json:"quantity"` // null = sin historial para estimar
}

// ListItemResponse renglón persistido de una lista gestionada.
type ListItemResponse struct {
	ItemID       int    `json:"item_id"`
	ListID       int    `json:"list_id"`
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name,omitempty"`
	Quantity     int    `json:"quantity"`
	CurrentStock int    `json:"current_stock"`
	Reason       string `json:"reason"`
	Priority     string `json:"priority"`
	Notes        string `json:"notes,omitempty"`
}

// ListWithItemsResponse lista gestionada con sus renglones.
type ListWithItemsResponse struct {
	ListID    int                `json:"list_id"`
	StoreID   int                `json:"store_id"`
	ListDate  time.Time          `json:"list_date"`
	Status    string             `json:"status"`
	Notes     string             `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []ListItemResponse `json:"items"`
}

// OverrideItemRequest body del override de un renglón (solo Manager): la
// justificación y la prioridad son obligatorias para que el override quede
// distinguible en el historial.
type OverrideItemRequest struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
	Notes    string `json:"notes,omitempty"`
}
