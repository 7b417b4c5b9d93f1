package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/internal/notify"
	createAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// StartRequest запрос на создание сессии мастера
// Prefill-поля опциональны: deep link с предвыбранным салоном, услугой или
// мастером пропускает соответствующие ведущие шаги
type StartRequest struct {
	ClientID       int64
	ClientName     string
	SalonID        string // опционально
	ServiceID      string // опционально
	ProfessionalID string // опционально
}

// Service сервис мастера бронирования: хранит активные сессии и ведет их
// по шагам до подтверждения
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalogRepo CatalogRepository
	createUC    CreateAppointmentUseCase
	notifier    Notifier
	logger      Logger

	now   func() time.Time
	newID func() string
}

// NewService создает новый экземпляр сервиса мастера бронирования
func NewService(
	catalogRepo CatalogRepository,
	createUC CreateAppointmentUseCase,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		sessions:    make(map[string]*Session),
		catalogRepo: catalogRepo,
		createUC:    createUC,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Start создает новую сессию мастера
// Prefill-значения валидируются по каталогу, сессия стартует с первого
// незаполненного шага
func (s *Service) Start(ctx context.Context, req *StartRequest) (*Session, error) {
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.SalonID != "" {
		if err := s.checkSalon(ctx, req.SalonID); err != nil {
			return nil, err
		}
	}
	if req.ServiceID != "" {
		if err := s.checkService(ctx, req.ServiceID); err != nil {
			return nil, err
		}
	}
	if req.ProfessionalID != "" {
		if err := s.checkProfessional(ctx, req.ProfessionalID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	session := &Session{
		ID:             s.newID(),
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		SalonID:        req.SalonID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	session.advance()

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Wizard.Start: session=%s client=%d step=%s", session.ID, session.ClientID, session.Step)
	return session.clone(), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.clone(), nil
}

// SelectSalon фиксирует выбор салона и продвигает мастер вперед
func (s *Service) SelectSalon(ctx context.Context, id, salonID string) (*Session, error) {
	if salonID == "" {
		return nil, fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}
	if err := s.checkSalon(ctx, salonID); err != nil {
		return nil, err
	}

	return s.mutate(id, func(session *Session) error {
		session.SalonID = salonID
		session.advance()
		return nil
	})
}

// SelectService фиксирует выбор услуги и продвигает мастер вперед
func (s *Service) SelectService(ctx context.Context, id, serviceID string) (*Session, error) {
	if serviceID == "" {
		return nil, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if err := s.checkService(ctx, serviceID); err != nil {
		return nil, err
	}

	return s.mutate(id, func(session *Session) error {
		session.ServiceID = serviceID
		session.advance()
		return nil
	})
}

// SelectProfessional фиксирует выбор мастера и продвигает мастер вперед
func (s *Service) SelectProfessional(ctx context.Context, id, professionalID string) (*Session, error) {
	if professionalID == "" {
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}
	if err := s.checkProfessional(ctx, professionalID); err != nil {
		return nil, err
	}

	return s.mutate(id, func(session *Session) error {
		session.ProfessionalID = professionalID
		session.advance()
		return nil
	})
}

// SelectDateTime фиксирует выбор даты и времени и продвигает мастер вперед
func (s *Service) SelectDateTime(ctx context.Context, id string, date types.DateString, slot types.TimeString) (*Session, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	return s.mutate(id, func(session *Session) error {
		session.Date = date
		session.Time = slot
		session.advance()
		return nil
	})
}

// Back откатывает мастер на один шаг назад; сделанный выбор сохраняется
func (s *Service) Back(ctx context.Context, id string) (*Session, error) {
	return s.mutate(id, func(session *Session) error {
		session.back()
		return nil
	})
}

// Reset возвращает сессию к начальному состоянию ("записаться еще раз")
func (s *Service) Reset(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.reset()
	session.UpdatedAt = s.now()

	s.logger.Info("Wizard.Reset: session=%s", id)
	return session.clone(), nil
}

// Abandon удаляет сессию ("посмотреть мои записи" / уход из мастера)
// До подтверждения ничего не сохранено, так что откатывать нечего
func (s *Service) Abandon(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(s.sessions, id)
	s.logger.Info("Wizard.Abandon: session=%s", id)
	return nil
}

// Confirm явно подтверждает полную сессию и создает запись
// Это единственная точка, где мастер производит побочный эффект
func (s *Service) Confirm(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	if session.Step == StepConfirmed {
		s.mu.Unlock()
		s.logger.Warn("Wizard.Confirm: session=%s already confirmed", id)
		return nil, ErrAlreadyConfirmed
	}

	if !session.HasFullSelection() {
		s.mu.Unlock()
		s.logger.Warn("Wizard.Confirm: session=%s selection incomplete, step=%s", id, session.Step)
		// Блокирующее уведомление вместо тихого отказа: UI показывает toast
		s.notifier.Notify(
			"Заполните все поля",
			"Выберите салон, услугу, мастера, дату и время перед подтверждением",
			notify.SeverityError,
		)
		return nil, ErrSelectionIncomplete
	}

	req := &createAppointment.Request{
		ClientID:       session.ClientID,
		ClientName:     session.ClientName,
		SalonID:        session.SalonID,
		ServiceID:      session.ServiceID,
		ProfessionalID: session.ProfessionalID,
		Date:           session.Date,
		Time:           session.Time,
	}
	s.mu.Unlock()

	// Создание записи выполняется вне мьютекса сессий
	resp, err := s.createUC.Execute(ctx, req)
	if err != nil {
		s.logger.Error("Wizard.Confirm: session=%s failed to create appointment: %v", id, err)
		return nil, err
	}

	return s.mutate(id, func(session *Session) error {
		session.AppointmentID = resp.ID
		session.Step = StepConfirmed
		return nil
	})
}

// mutate применяет изменение к сессии под мьютексом и возвращает копию
func (s *Service) mutate(id string, fn func(session *Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.Step == StepConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	if err := fn(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.now()

	return session.clone(), nil
}

// Вспомогательные проверки выбора по каталогу

func (s *Service) checkSalon(ctx context.Context, salonID string) error {
	if _, err := s.catalogRepo.GetSalonByID(ctx, salonID); err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			return ErrSalonNotFound
		}
		return fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkService(ctx context.Context, serviceID string) error {
	if _, err := s.catalogRepo.GetServiceByID(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkProfessional(ctx context.Context, professionalID string) error {
	if _, err := s.catalogRepo.GetEmployeeByID(ctx, professionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			return ErrProfessionalNotFound
		}
		return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	return nil
}
