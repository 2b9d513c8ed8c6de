package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRow fila cruda del stock de una tienda (producto + lote).
type StockRow struct {
	ProductName    string     `json:"product_name"`
	BatchCode      string     `json:"batch_code"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Quantity       int        `json:"quantity"`
}

// BatchStockResponse lote con stock de un producto, en orden FIFO.
type BatchStockResponse struct {
	BatchID        int        `json:"batch_id"`
	BatchCode      string     `json:"batch_code"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Quantity       int        `json:"quantity"`
}

// StockOverviewItem estado consolidado de un producto en una tienda:
// clasificación + pronóstico + cadencia + sugerencia del planificador.
type StockOverviewItem struct {
	ProductID         int              `json:"product_id"`
	ProductName       string           `json:"product_name"`
	TotalQuantity     int              `json:"total_quantity"`
	ReorderLevel      int              `json:"reorder_level"`
	Status            string           `json:"status"`
	Overstock         bool             `json:"overstock"`
	Expiring          bool             `json:"expiring"`
	Progress          float64          `json:"progress"`
	AverageDailySales decimal.Decimal  `json:"average_daily_sales"`
	DaysToOutOfStock  *decimal.Decimal `json:"days_to_out_of_stock"` // null = no acotado
	LastSaleAt        *time.Time       `json:"last_sale_at"`
	FrequencyDays     *int             `json:"frequency_days"`
	NextReplenishment *time.Time       `json:"next_replenishment_date"` // null = inmediato o sin cadencia
	SuggestedQuantity int              `json:"suggested_quantity"`
	Priority          string           `json:"priority"`
	Reason            string           `json:"reason"`
}

// AlertItem alerta individual del tablero (low stock, overstock, expiración
// o predicción de quiebre).
type AlertItem struct {
	ProductID      int        `json:"product_id"`
	ProductName    string     `json:"product_name"`
	BatchCode      string     `json:"batch_code,omitempty"`
	Quantity       int        `json:"quantity"`
	ReorderLevel   int        `json:"reorder_level,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	DaysRemaining  *float64   `json:"days_remaining,omitempty"`
	Message        string     `json:"message"`
}

// AlertsResponse alertas agrupadas de una tienda.
type AlertsResponse struct {
	LowStock           []AlertItem `json:"low_stock"`
	Overstock          []AlertItem `json:"overstock"`
	ExpiringSoon       []AlertItem `json:"expiring_soon"`
	StockoutPrediction []AlertItem `json:"stockout_prediction"`
}
