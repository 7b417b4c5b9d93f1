package booking_wizard

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/wizard"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// WizardService интерфейс сервиса мастера бронирования
type WizardService interface {
	Start(ctx context.Context, req *wizard.StartRequest) (*wizard.Session, error)
	Get(ctx context.Context, id string) (*wizard.Session, error)
	SelectSalon(ctx context.Context, id, salonID string) (*wizard.Session, error)
	SelectService(ctx context.Context, id, serviceID string) (*wizard.Session, error)
	SelectProfessional(ctx context.Context, id, professionalID string) (*wizard.Session, error)
	SelectDateTime(ctx context.Context, id string, date types.DateString, slot types.TimeString) (*wizard.Session, error)
	Back(ctx context.Context, id string) (*wizard.Session, error)
	Reset(ctx context.Context, id string) (*wizard.Session, error)
	Confirm(ctx context.Context, id string) (*wizard.Session, error)
	Abandon(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
