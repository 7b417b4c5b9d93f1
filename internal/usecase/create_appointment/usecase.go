package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/internal/notify"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Display-поля услуги, мастера и салона денормализуются в запись на момент
// создания. Проверка занятости слота намеренно НЕ выполняется: две записи на
// один и тот же слот принимаются молча (поведение исходной модели данных)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, salon=%s, service=%s, professional=%s, date=%s, time=%s",
		req.ClientID, req.SalonID, req.ServiceID, req.ProfessionalID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон из каталога
	salon, err := uc.catalogRepo.GetSalonByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 3. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем мастера из каталога
	professional, err := uc.catalogRepo.GetEmployeeByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 5. Создаем запись с денормализацией display-полей каталога
	appt := &domain.Appointment{
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		SalonID:        salon.ID,
		SalonName:      salon.Name,
		ServiceID:      service.ID,
		Service:        service.Name,
		ProfessionalID: professional.ID,
		Professional:   professional.Name,
		Date:           req.Date,
		Time:           req.Time,
		Status:         domain.StatusScheduled,
		Price:          service.Price,
		Notes:          req.Notes,
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)

	if uc.metrics != nil {
		uc.metrics.IncAppointmentsCreated()
	}

	// 6. Публикуем уведомление об успешном создании
	uc.notifier.Notify(
		"Запись подтверждена",
		fmt.Sprintf("%s, %s в %s, мастер %s", created.Service, created.Date, created.Time, created.Professional),
		notify.SeveritySuccess,
	)

	return &Response{
		ID:             created.ID,
		ClientID:       created.ClientID,
		ClientName:     created.ClientName,
		SalonID:        created.SalonID,
		SalonName:      created.SalonName,
		ServiceID:      created.ServiceID,
		Service:        created.Service,
		ProfessionalID: created.ProfessionalID,
		Professional:   created.Professional,
		Date:           created.Date,
		Time:           created.Time,
		Status:         string(created.Status),
		Price:          created.Price,
		Notes:          created.Notes,
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}
