package booking_wizard

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/service/wizard"
)

// StartSessionRequest HTTP запрос на создание сессии мастера
// Prefill-поля опциональны: deep link с предвыбранным салоном, услугой
// или мастером
type StartSessionRequest struct {
	ClientName     string `json:"client_name"`
	SalonID        string `json:"salon_id,omitempty"`
	ServiceID      string `json:"service_id,omitempty"`
	ProfessionalID string `json:"professional_id,omitempty"`
}

// SelectSalonRequest HTTP запрос выбора салона
type SelectSalonRequest struct {
	SalonID string `json:"salon_id"`
}

// SelectServiceRequest HTTP запрос выбора услуги
type SelectServiceRequest struct {
	ServiceID string `json:"service_id"`
}

// SelectProfessionalRequest HTTP запрос выбора мастера
type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professional_id"`
}

// SelectDateTimeRequest HTTP запрос выбора даты и времени
type SelectDateTimeRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SessionResponse HTTP модель состояния сессии мастера
type SessionResponse struct {
	ID             string    `json:"id"`
	ClientID       int64     `json:"client_id"`
	ClientName     string    `json:"client_name,omitempty"`
	SalonID        string    `json:"salon_id,omitempty"`
	ServiceID      string    `json:"service_id,omitempty"`
	ProfessionalID string    `json:"professional_id,omitempty"`
	Date           string    `json:"date,omitempty"`
	Time           string    `json:"time,omitempty"`
	Step           string    `json:"step"`
	AppointmentID  string    `json:"appointment_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FromSession конвертирует сессию мастера в HTTP response
func FromSession(s *wizard.Session) *SessionResponse {
	return &SessionResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		ClientName:     s.ClientName,
		SalonID:        s.SalonID,
		ServiceID:      s.ServiceID,
		ProfessionalID: s.ProfessionalID,
		Date:           s.Date.String(),
		Time:           s.Time.String(),
		Step:           s.Step.String(),
		AppointmentID:  s.AppointmentID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
