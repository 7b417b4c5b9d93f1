package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute возвращает свободные слоты на указанную дату
//
// Хранилище принимает любую дату: проверка "дата в будущем" и горизонт
// бронирования остаются на UI-слое. Прошедшая дата просто вернет слоты за
// вычетом исторических scheduled-записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// Занятыми считаются только scheduled-записи: завершенные и отмененные
	// слоты не блокируют
	scheduled, err := uc.appointmentRepo.GetByDate(ctx, req.Date, ptr.Ptr(domain.StatusScheduled))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots := availableSlots(scheduled)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free on %s",
		len(slots), len(domain.BusinessHourSlots), req.Date)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// Popular возвращает статичный список популярных слотов
// Рекомендация не зависит от фактической занятости
func (uc *UseCase) Popular(ctx context.Context) []types.TimeString {
	slots := make([]types.TimeString, len(domain.PopularSlots))
	copy(slots, domain.PopularSlots)
	return slots
}
