package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func scheduledAt(date types.DateString, slot types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		ClientID:       1,
		ServiceID:      "1",
		ProfessionalID: "1",
		SalonID:        "1",
		Date:           date,
		Time:           slot,
		Status:         domain.StatusScheduled,
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty storage returns every business slot", func(t *testing.T) {
		uc := NewUseCase(appointmentRepo.NewRepository(), nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: "2025-05-01"})
		require.NoError(t, err)

		assert.Equal(t, types.DateString("2025-05-01"), resp.Date)
		assert.Equal(t, domain.BusinessHourSlots, resp.Slots)
	})

	t.Run("scheduled appointment blocks its slot", func(t *testing.T) {
		repo := appointmentRepo.NewRepository()
		_, err := repo.Create(ctx, scheduledAt("2025-05-01", "10:00"))
		require.NoError(t, err)

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: "2025-05-01"})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
		assert.Len(t, resp.Slots, len(domain.BusinessHourSlots)-1)
	})

	t.Run("off-grid time blocks nothing", func(t *testing.T) {
		// "14:30" не совпадает ни с одним слотом из набора: интервальных
		// пересечений нет, занятость считается по точному совпадению строк
		repo := appointmentRepo.NewRepository()
		_, err := repo.Create(ctx, scheduledAt("2025-05-01", "14:30"))
		require.NoError(t, err)

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: "2025-05-01"})
		require.NoError(t, err)

		assert.Equal(t, domain.BusinessHourSlots, resp.Slots)
	})

	t.Run("completed and cancelled do not block", func(t *testing.T) {
		repo := appointmentRepo.NewRepository()

		completed := scheduledAt("2025-05-01", "11:00")
		completed.Status = domain.StatusCompleted
		_, err := repo.Create(ctx, completed)
		require.NoError(t, err)

		cancelled := scheduledAt("2025-05-01", "12:00")
		cancelled.Status = domain.StatusCancelled
		_, err = repo.Create(ctx, cancelled)
		require.NoError(t, err)

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: "2025-05-01"})
		require.NoError(t, err)

		assert.Contains(t, resp.Slots, types.TimeString("11:00"))
		assert.Contains(t, resp.Slots, types.TimeString("12:00"))
	})

	t.Run("other dates do not affect availability", func(t *testing.T) {
		repo := appointmentRepo.NewRepository()
		_, err := repo.Create(ctx, scheduledAt("2025-05-02", "10:00"))
		require.NoError(t, err)

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: "2025-05-01"})
		require.NoError(t, err)

		assert.Contains(t, resp.Slots, types.TimeString("10:00"))
	})

	t.Run("slots keep business day order", func(t *testing.T) {
		repo := appointmentRepo.NewRepository()
		_, err := repo.Create(ctx, scheduledAt("2025-05-01", "09:00"))
		require.NoError(t, err)

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: "2025-05-01"})
		require.NoError(t, err)

		expected := []types.TimeString{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
		assert.Equal(t, expected, resp.Slots)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := NewUseCase(appointmentRepo.NewRepository(), nopLogger{})

		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid date format", func(t *testing.T) {
		uc := NewUseCase(appointmentRepo.NewRepository(), nopLogger{})

		_, err := uc.Execute(ctx, &Request{Date: "15.04.2025"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestUseCase_Popular(t *testing.T) {
	ctx := context.Background()
	uc := NewUseCase(appointmentRepo.NewRepository(), nopLogger{})

	slots := uc.Popular(ctx)
	assert.Equal(t, domain.PopularSlots, slots)

	// Возвращается копия, константу изменить нельзя
	slots[0] = "23:00"
	assert.Equal(t, types.TimeString("10:00"), domain.PopularSlots[0])
}
