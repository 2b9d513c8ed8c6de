package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smartstock-api/internal/domain/stock"
)

func TestComputeForecast_PromedioYDias(t *testing.T) {
	// 60 unidades en 30 días => 2.00/día; 10 en stock => 5 días.
	f := stock.ComputeForecast(60, 30, 10, nil)

	assert.Equal(t, "2", f.AverageDailySales.String())
	require.NotNil(t, f.DaysToOutOfStock)
	assert.Equal(t, "5", f.DaysToOutOfStock.String())
}

func TestComputeForecast_RedondeaADosDecimales(t *testing.T) {
	// 10 unidades en 30 días => 0.33/día.
	f := stock.ComputeForecast(10, 30, 4, nil)

	assert.Equal(t, "0.33", f.AverageDailySales.String())
	require.NotNil(t, f.DaysToOutOfStock)
	// 4 / 0.33 = 12.12... => 12.1 a un decimal.
	assert.Equal(t, "12.1", f.DaysToOutOfStock.String())
}

// Cero ventas: promedio 0 y proyección no acotada, nunca división por cero.
func TestComputeForecast_SinVentas_ProyeccionNoAcotada(t *testing.T) {
	f := stock.ComputeForecast(0, 30, 100, nil)

	assert.True(t, f.AverageDailySales.IsZero())
	assert.Nil(t, f.DaysToOutOfStock, "sin ventas no hay días hasta quiebre")
}

func TestComputeForecast_VentanaInvalida_ProyeccionNoAcotada(t *testing.T) {
	f := stock.ComputeForecast(50, 0, 100, nil)

	assert.True(t, f.AverageDailySales.IsZero())
	assert.Nil(t, f.DaysToOutOfStock)
}

func TestComputeForecast_StockCero_CeroDias(t *testing.T) {
	f := stock.ComputeForecast(30, 30, 0, nil)

	require.NotNil(t, f.DaysToOutOfStock)
	assert.True(t, f.DaysToOutOfStock.IsZero(), "sin stock el quiebre es ahora")
}
