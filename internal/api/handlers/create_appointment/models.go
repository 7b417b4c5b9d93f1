package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SalonID        string  `json:"salonId"`
	ServiceID      string  `json:"serviceId"`
	ProfessionalID string  `json:"professionalId"`
	Date           string  `json:"date"` // "2025-04-15"
	Time           string  `json:"time"` // "10:00"
	ClientName     string  `json:"clientName,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             string  `json:"id"`
	ClientID       int64   `json:"clientId"`
	ClientName     string  `json:"clientName,omitempty"`
	SalonID        string  `json:"salonId"`
	SalonName      string  `json:"salonName"`
	ServiceID      string  `json:"serviceId"`
	Service        string  `json:"service"`
	ProfessionalID string  `json:"professionalId"`
	Professional   string  `json:"professional"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Status         string  `json:"status"`
	Price          float64 `json:"price"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:       clientID,
		ClientName:     r.ClientName,
		SalonID:        r.SalonID,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		Time:           slot,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		ClientID:       resp.ClientID,
		ClientName:     resp.ClientName,
		SalonID:        resp.SalonID,
		SalonName:      resp.SalonName,
		ServiceID:      resp.ServiceID,
		Service:        resp.Service,
		ProfessionalID: resp.ProfessionalID,
		Professional:   resp.Professional,
		Date:           resp.Date.String(),
		Time:           resp.Time.String(),
		Status:         resp.Status,
		Price:          resp.Price,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
