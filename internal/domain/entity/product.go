package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. La identidad es inmutable;
// los atributos los edita el módulo de catálogo (externo a este motor).
type Product struct {
	ID         int
	Name       string
	UnitPrice  decimal.Decimal
	SupplierID int
	CategoryID int
	IsActive   bool
}
