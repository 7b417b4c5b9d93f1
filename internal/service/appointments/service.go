package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/notify"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на услуги
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// metrics может быть nil, если сбор метрик выключен
func NewService(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи, опционально фильтруя по статусу
// Статусы scheduled / completed / cancelled разбивают полный список записей
// на непересекающиеся части ("предстоящие", "завершенные", "отмененные")
func (s *Service) List(ctx context.Context, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, status=%v", status)

	if status == nil {
		appointments, err := s.appointmentRepo.GetAll(ctx)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		return models.FromDomainAppointmentList(appointments), nil
	}

	domainStatus, err := models.ToDomainStatus(*status)
	if err != nil {
		s.logger.Warn("List: invalid status=%s", *status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByStatus(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error for status=%s: %v", domainStatus, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments with status=%s", len(appointments), domainStatus)
	return models.FromDomainAppointmentList(appointments), nil
}

// Update выполняет частичное обновление записи
// Заданные поля затираются, незаданные сохраняются как есть
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%s", id)

	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for appointment id=%s: %v", id, err)
		if errors.Is(err, models.ErrInvalidStatus) {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.appointmentRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated appointment id=%s", id)

	s.notifier.Notify(
		"Запись обновлена",
		fmt.Sprintf("%s, %s в %s", updated.Service, updated.Date, updated.Time),
		notify.SeveritySuccess,
	)

	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись (однонаправленный переход в cancelled)
// Повторная отмена уже отмененной записи также завершается успехом —
// отдельного сигнала "уже отменена" намеренно нет
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found during cancellation", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)

	if s.metrics != nil {
		s.metrics.IncAppointmentsCancelled()
	}

	s.notifier.Notify(
		"Запись отменена",
		fmt.Sprintf("%s, %s в %s", appt.Service, appt.Date, appt.Time),
		notify.SeverityDestructive,
	)

	return nil
}
