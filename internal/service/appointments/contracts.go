package appointments

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/notify"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	GetByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByDate(ctx context.Context, date types.DateString, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	Update(ctx context.Context, id string, upd domain.AppointmentUpdate) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

// Notifier интерфейс для публикации пользовательских уведомлений
type Notifier interface {
	Notify(title, description string, severity notify.Severity)
}

// Metrics интерфейс бизнес-метрик (может быть nil, если метрики выключены)
type Metrics interface {
	IncAppointmentsCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
