package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

func TestValidFrequencyDays(t *testing.T) {
	assert.True(t, entity.ValidFrequencyDays(1))
	assert.True(t, entity.ValidFrequencyDays(2))
	assert.True(t, entity.ValidFrequencyDays(3))

	assert.False(t, entity.ValidFrequencyDays(0))
	assert.False(t, entity.ValidFrequencyDays(4))
	assert.False(t, entity.ValidFrequencyDays(-1))
}

// Sin reposición previa la cadencia está vencida de inmediato.
func TestCadence_NextDue_SinHistorial_Inmediata(t *testing.T) {
	c := entity.ReplenishmentCadence{FrequencyDays: 2}

	_, immediate := c.NextDue()
	assert.True(t, immediate)
	assert.True(t, c.DueOn(time.Now()))
}

func TestCadence_NextDue_SumaFrecuencia(t *testing.T) {
	last := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	c := entity.ReplenishmentCadence{FrequencyDays: 3, LastReplenishmentDate: &last}

	next, immediate := c.NextDue()
	assert.False(t, immediate)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), next)
}

func TestCadence_DueOn(t *testing.T) {
	last := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	c := entity.ReplenishmentCadence{FrequencyDays: 2, LastReplenishmentDate: &last}

	assert.False(t, c.DueOn(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)), "aún dentro de la cadencia")
	assert.True(t, c.DueOn(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)), "la fecha exacta ya vence")
	assert.True(t, c.DueOn(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)))
}

func TestRole_CanOverride(t *testing.T) {
	assert.False(t, entity.RoleEmployee.CanOverride())
	assert.True(t, entity.RoleManager.CanOverride())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, entity.RoleEmployee.Valid())
	assert.True(t, entity.RoleManager.Valid())
	assert.False(t, entity.Role("admin").Valid())
	assert.False(t, entity.Role("").Valid())
}
