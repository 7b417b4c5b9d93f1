package models

import (
	"errors"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
)

// Request модели

// UpdateAppointmentRequest запрос на частичное обновление записи
// nil-поле означает "оставить как есть"
type UpdateAppointmentRequest struct {
	ServiceID      *string  `json:"serviceId,omitempty"`
	Service        *string  `json:"service,omitempty"`
	ProfessionalID *string  `json:"professionalId,omitempty"`
	Professional   *string  `json:"professional,omitempty"`
	SalonID        *string  `json:"salonId,omitempty"`
	SalonName      *string  `json:"salonName,omitempty"`
	Date           *string  `json:"date,omitempty"`   // "2025-04-15"
	Time           *string  `json:"time,omitempty"`   // "10:00"
	Status         *string  `json:"status,omitempty"` // scheduled | completed | cancelled
	Price          *float64 `json:"price,omitempty"`
	ClientName     *string  `json:"clientName,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// ToDomainUpdate конвертирует request в domain-модель частичного обновления
// с валидацией статуса, даты и времени
func (r *UpdateAppointmentRequest) ToDomainUpdate() (domain.AppointmentUpdate, error) {
	upd := domain.AppointmentUpdate{
		ServiceID:      r.ServiceID,
		Service:        r.Service,
		ProfessionalID: r.ProfessionalID,
		Professional:   r.Professional,
		SalonID:        r.SalonID,
		SalonName:      r.SalonName,
		Price:          r.Price,
		ClientName:     r.ClientName,
		Notes:          r.Notes,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return upd, err
		}
		upd.Status = &status
	}

	if r.Date != nil {
		date, err := types.NewDateStringFromString(*r.Date)
		if err != nil {
			return upd, ErrInvalidDate
		}
		upd.Date = &date
	}

	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return upd, ErrInvalidTime
		}
		upd.Time = &t
	}

	return upd, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             string  `json:"id"`
	ClientID       int64   `json:"clientId"`
	ClientName     string  `json:"clientName,omitempty"`
	SalonID        string  `json:"salonId"`
	SalonName      string  `json:"salonName,omitempty"`
	ServiceID      string  `json:"serviceId"`
	Service        string  `json:"service"`
	ProfessionalID string  `json:"professionalId"`
	Professional   string  `json:"professional"`
	Date           string  `json:"date"` // "2025-04-15"
	Time           string  `json:"time"` // "10:00"
	Status         string  `json:"status"`
	Price          float64 `json:"price"`
	Notes          *string `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain-модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:             a.ID,
		ClientID:       a.ClientID,
		ClientName:     a.ClientName,
		SalonID:        a.SalonID,
		SalonName:      a.SalonName,
		ServiceID:      a.ServiceID,
		Service:        a.Service,
		ProfessionalID: a.ProfessionalID,
		Professional:   a.Professional,
		Date:           a.Date.String(),
		Time:           a.Time.String(),
		Status:         string(a.Status),
		Price:          a.Price,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain-моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
