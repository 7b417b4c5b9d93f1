package create_appointment

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/notify"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// CatalogRepository интерфейс каталога справочных данных
type CatalogRepository interface {
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
}

// Notifier интерфейс для публикации пользовательских уведомлений
type Notifier interface {
	Notify(title, description string, severity notify.Severity)
}

// Metrics интерфейс бизнес-метрик (может быть nil, если метрики выключены)
type Metrics interface {
	IncAppointmentsCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
