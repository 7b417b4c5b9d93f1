package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

func TestAppointment_StatusHelpers(t *testing.T) {
	scheduled := &Appointment{Status: StatusScheduled}
	assert.True(t, scheduled.IsScheduled())
	assert.False(t, scheduled.IsFinal())

	completed := &Appointment{Status: StatusCompleted}
	assert.False(t, completed.IsScheduled())
	assert.True(t, completed.IsFinal())

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsScheduled())
	assert.True(t, cancelled.IsFinal())
}

func TestBusinessHourSlots(t *testing.T) {
	// Обеденный перерыв: 13:00 в наборе отсутствует
	assert.NotContains(t, BusinessHourSlots, types.TimeString("13:00"))
	assert.Len(t, BusinessHourSlots, 8)

	// Популярные слоты — подмножество рабочих
	for _, slot := range PopularSlots {
		assert.Contains(t, BusinessHourSlots, slot)
	}
}
