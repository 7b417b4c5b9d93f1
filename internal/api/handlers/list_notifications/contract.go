package list_notifications

import "github.com/m04kA/Salon-BookingService/internal/notify"

// NotificationFeed интерфейс ленты пользовательских уведомлений
type NotificationFeed interface {
	Recent(limit int) []notify.Notification
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
