package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	catalogStore "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/internal/notify"
	createAppointmentUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestWizard() (*Service, *appointmentRepo.Repository, *notify.Feed) {
	repo := appointmentRepo.NewRepository()
	feed := notify.NewFeed(10)
	catalog := catalogStore.NewSeededRepository()
	createUC := createAppointmentUC.NewUseCase(repo, catalog, feed, nil, nopLogger{})
	svc := NewService(catalog, createUC, feed, nopLogger{})
	return svc, repo, feed
}

func startSession(t *testing.T, svc *Service) *Session {
	t.Helper()
	session, err := svc.Start(context.Background(), &StartRequest{
		ClientID:   1,
		ClientName: "Maria Lopez",
	})
	require.NoError(t, err)
	return session
}

// completeSelection проводит сессию через все шаги выбора до подтверждения
func completeSelection(t *testing.T, svc *Service, id string) *Session {
	t.Helper()
	ctx := context.Background()

	_, err := svc.SelectSalon(ctx, id, "1")
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, id, "1")
	require.NoError(t, err)
	_, err = svc.SelectProfessional(ctx, id, "1")
	require.NoError(t, err)
	session, err := svc.SelectDateTime(ctx, id, "2025-05-01", "10:00")
	require.NoError(t, err)
	return session
}

func TestService_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("empty session starts at salon selection", func(t *testing.T) {
		svc, _, _ := newTestWizard()

		session := startSession(t, svc)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, StepSelectSalon, session.Step)
	})

	t.Run("deep link prefill skips completed leading steps", func(t *testing.T) {
		svc, _, _ := newTestWizard()

		session, err := svc.Start(ctx, &StartRequest{
			ClientID:  1,
			SalonID:   "1",
			ServiceID: "1",
		})
		require.NoError(t, err)
		assert.Equal(t, StepSelectProfessional, session.Step)
	})

	t.Run("prefill with gap stops at first missing step", func(t *testing.T) {
		// Предвыбрана только услуга: первый незаполненный шаг — салон
		svc, _, _ := newTestWizard()

		session, err := svc.Start(ctx, &StartRequest{
			ClientID:  1,
			ServiceID: "1",
		})
		require.NoError(t, err)
		assert.Equal(t, StepSelectSalon, session.Step)
	})

	t.Run("unknown prefill salon is rejected", func(t *testing.T) {
		svc, _, _ := newTestWizard()

		_, err := svc.Start(ctx, &StartRequest{ClientID: 1, SalonID: "missing"})
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("invalid client id", func(t *testing.T) {
		svc, _, _ := newTestWizard()

		_, err := svc.Start(ctx, &StartRequest{ClientID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_SelectionFlow(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestWizard()

	session := startSession(t, svc)

	session, err := svc.SelectSalon(ctx, session.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, StepSelectService, session.Step)

	session, err = svc.SelectService(ctx, session.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, StepSelectProfessional, session.Step)

	session, err = svc.SelectProfessional(ctx, session.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, StepSelectDateTime, session.Step)

	session, err = svc.SelectDateTime(ctx, session.ID, "2025-05-01", "10:00")
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, session.Step)
	assert.True(t, session.HasFullSelection())
}

func TestService_SelectValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestWizard()
	session := startSession(t, svc)

	t.Run("unknown salon", func(t *testing.T) {
		_, err := svc.SelectSalon(ctx, session.ID, "missing")
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := svc.SelectService(ctx, session.ID, "missing")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown professional", func(t *testing.T) {
		_, err := svc.SelectProfessional(ctx, session.ID, "missing")
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.SelectDateTime(ctx, session.ID, "01.05.2025", "10:00")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := svc.SelectDateTime(ctx, session.ID, "2025-05-01", "10am")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.SelectSalon(ctx, "missing", "1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_Back(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestWizard()

	session := startSession(t, svc)
	completeSelection(t, svc, session.ID)

	// Назад с подтверждения: выбор даты сохраняется
	back, err := svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepSelectDateTime, back.Step)
	assert.False(t, back.Date.IsZero())
	assert.False(t, back.Time.IsZero())

	// С первого шага дальше назад некуда
	fresh := startSession(t, svc)
	still, err := svc.Back(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, StepSelectSalon, still.Step)
}

func TestService_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("creates appointment and finishes session", func(t *testing.T) {
		svc, repo, feed := newTestWizard()

		session := startSession(t, svc)
		completeSelection(t, svc, session.ID)

		confirmed, err := svc.Confirm(ctx, session.ID)
		require.NoError(t, err)

		assert.Equal(t, StepConfirmed, confirmed.Step)
		assert.NotEmpty(t, confirmed.AppointmentID)
		assert.Equal(t, 1, repo.Len())

		created, err := repo.GetByID(ctx, confirmed.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, "Haircut & Styling", created.Service)

		notifications := feed.Recent(1)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Запись подтверждена", notifications[0].Title)
	})

	t.Run("incomplete selection is blocked with notification", func(t *testing.T) {
		svc, repo, feed := newTestWizard()

		session := startSession(t, svc)
		_, err := svc.SelectSalon(ctx, session.ID, "1")
		require.NoError(t, err)

		_, err = svc.Confirm(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSelectionIncomplete)
		assert.Equal(t, 0, repo.Len())

		notifications := feed.Recent(1)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Заполните все поля", notifications[0].Title)
		assert.Equal(t, notify.SeverityError, notifications[0].Severity)
	})

	t.Run("double confirm is rejected", func(t *testing.T) {
		svc, repo, _ := newTestWizard()

		session := startSession(t, svc)
		completeSelection(t, svc, session.ID)

		_, err := svc.Confirm(ctx, session.ID)
		require.NoError(t, err)

		_, err = svc.Confirm(ctx, session.ID)
		assert.ErrorIs(t, err, ErrAlreadyConfirmed)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("confirmed session rejects further selection", func(t *testing.T) {
		svc, _, _ := newTestWizard()

		session := startSession(t, svc)
		completeSelection(t, svc, session.ID)
		_, err := svc.Confirm(ctx, session.ID)
		require.NoError(t, err)

		_, err = svc.SelectSalon(ctx, session.ID, "2")
		assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, _, _ := newTestWizard()

		_, err := svc.Confirm(ctx, "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestWizard()

	session := startSession(t, svc)
	completeSelection(t, svc, session.ID)
	_, err := svc.Confirm(ctx, session.ID)
	require.NoError(t, err)

	// "Записаться еще раз": reset работает и после подтверждения
	reset, err := svc.Reset(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, StepSelectSalon, reset.Step)
	assert.Empty(t, reset.SalonID)
	assert.Empty(t, reset.ServiceID)
	assert.Empty(t, reset.ProfessionalID)
	assert.True(t, reset.Date.IsZero())
	assert.True(t, reset.Time.IsZero())
	assert.Empty(t, reset.AppointmentID)
	// Клиент сохраняется
	assert.Equal(t, int64(1), reset.ClientID)
}

func TestService_Abandon(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestWizard()

	session := startSession(t, svc)

	require.NoError(t, svc.Abandon(ctx, session.ID))

	_, err := svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Abandon(ctx, session.ID), ErrSessionNotFound)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestWizard()

	session := startSession(t, svc)

	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	// Возвращается копия: мутация выдачи не влияет на хранимое состояние
	got.SalonID = "mutated"
	again, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, again.SalonID)
}
