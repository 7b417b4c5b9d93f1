package cancel_appointment

import "context"

// AppointmentService интерфейс сервиса записей
type AppointmentService interface {
	Cancel(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
