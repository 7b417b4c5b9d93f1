package wizard

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/notify"
	createAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
)

// CatalogRepository интерфейс каталога для валидации выбора
type CatalogRepository interface {
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
}

// CreateAppointmentUseCase интерфейс use case создания записи
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

// Notifier интерфейс для публикации пользовательских уведомлений
type Notifier interface {
	Notify(title, description string, severity notify.Severity)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
