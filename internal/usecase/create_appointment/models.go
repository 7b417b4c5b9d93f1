package create_appointment

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента
	ClientName     string           // Имя клиента (денормализованное display-поле)
	SalonID        string           // ID салона
	ServiceID      string           // ID услуги
	ProfessionalID string           // ID мастера
	Date           types.DateString // Дата записи ("2025-04-15")
	Time           types.TimeString // Время слота ("10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             string           // ID созданной записи
	ClientID       int64            // ID клиента
	ClientName     string           // Имя клиента
	SalonID        string           // ID салона
	SalonName      string           // Название салона
	ServiceID      string           // ID услуги
	Service        string           // Название услуги
	ProfessionalID string           // ID мастера
	Professional   string           // Имя мастера
	Date           types.DateString // Дата записи
	Time           types.TimeString // Время слота
	Status         string           // Статус записи
	Price          float64          // Цена услуги
	Notes          *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
