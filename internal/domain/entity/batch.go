package entity

import "time"

// Batch representa un lote físico recibido de un producto. Se crea al
// recibir mercadería y no se muta después; los cambios de cantidad pasan
// por StockLevel.
type Batch struct {
	ID             int
	ProductID      int
	BatchCode      string
	ExpirationDate *time.Time // nil = lote sin fecha de vencimiento
}

// StockLevel cantidad actual de un lote en una tienda. Una fila por par
// (tienda, lote). Quantity y ReorderLevel nunca son negativos.
type StockLevel struct {
	ID           int
	StoreID      int
	BatchID      int
	Quantity     int
	ReorderLevel int
	UpdatedAt    time.Time
}

// BatchStock vista de lectura que une lote y stock para una tienda.
// Es la unidad sobre la que trabaja el asignador FIFO.
type BatchStock struct {
	BatchID        int
	BatchCode      string
	ExpirationDate *time.Time
	Quantity       int
	ReorderLevel   int
}
