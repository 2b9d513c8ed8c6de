package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/smartstock-api/internal/domain/stock"
)

// Escenario de referencia: qty=5, reorder=10 => High / "Low stock",
// sugerencia 2*10-5 = 15.
func TestPlan_LowStock_PrioridadAlta(t *testing.T) {
	p := stock.DefaultPolicy()
	c := stock.Classify(5, 10, nil, testToday, p)
	s := stock.Plan(c, 5, 10, p)

	assert.Equal(t, stock.PriorityHigh, s.Priority)
	assert.Equal(t, stock.ReasonLowStock, s.Reason)
	assert.Equal(t, 15, s.Quantity)
}

func TestPlan_Expiring_PrioridadMedia(t *testing.T) {
	p := stock.DefaultPolicy()
	tomorrow := testToday.AddDate(0, 0, 1)
	c := stock.Classify(15, 5, &tomorrow, testToday, p)
	s := stock.Plan(c, 15, 5, p)

	assert.Equal(t, stock.PriorityMedium, s.Priority)
	assert.Equal(t, stock.ReasonExpiring, s.Reason)
	assert.Equal(t, 0, s.Quantity, "15 ya supera el objetivo 2*5: nada que pedir")
}

func TestPlan_Overstock_PrioridadBaja(t *testing.T) {
	p := stock.DefaultPolicy()
	c := stock.Classify(500, 20, nil, testToday, p)
	s := stock.Plan(c, 500, 20, p)

	assert.Equal(t, stock.PriorityLow, s.Priority)
	assert.Equal(t, stock.ReasonOverstock, s.Reason)
	assert.Equal(t, 0, s.Quantity)
}

func TestPlan_Normal_PrioridadBaja(t *testing.T) {
	p := stock.DefaultPolicy()
	c := stock.Classify(15, 10, nil, testToday, p)
	s := stock.Plan(c, 15, 10, p)

	assert.Equal(t, stock.PriorityLow, s.Priority)
	assert.Equal(t, stock.ReasonNormalStock, s.Reason)
	assert.Equal(t, 5, s.Quantity, "objetivo 20 menos 15 en stock")
}

// Cuando Low y Expiring coinciden gana la condición más urgente.
func TestPlan_Precedencia_LowGanaAExpiring(t *testing.T) {
	p := stock.DefaultPolicy()
	tomorrow := testToday.AddDate(0, 0, 1)
	c := stock.Classify(4, 10, &tomorrow, testToday, p)
	s := stock.Plan(c, 4, 10, p)

	assert.Equal(t, stock.PriorityHigh, s.Priority)
	assert.Equal(t, stock.ReasonLowStock, s.Reason)
}

// La cantidad sugerida nunca es negativa.
func TestPlan_CantidadNuncaNegativa(t *testing.T) {
	p := stock.DefaultPolicy()
	c := stock.Classify(100, 10, nil, testToday, p)
	s := stock.Plan(c, 100, 10, p)

	assert.Equal(t, 0, s.Quantity)
}
