package domain

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled or historical salon booking
// Display fields (Service, Professional, SalonName, Price) are denormalized
// copies of catalog data: catalog edits do not retroactively affect history
type Appointment struct {
	ID             string
	ClientID       int64
	ClientName     string
	ServiceID      string
	Service        string // display name of the service
	ProfessionalID string
	Professional   string // display name of the staff member
	SalonID        string
	SalonName      string
	Date           types.DateString // "2025-04-15"
	Time           types.TimeString // "10:00"
	Status         AppointmentStatus
	Price          float64
	Notes          *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment is still upcoming
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsFinal returns true if the appointment has reached a terminal status
// Transitions are one-directional in practice: scheduled -> completed or
// scheduled -> cancelled, never back
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// AppointmentUpdate набор полей для частичного обновления записи
// nil-поле означает "оставить как есть"
type AppointmentUpdate struct {
	ServiceID      *string
	Service        *string
	ProfessionalID *string
	Professional   *string
	SalonID        *string
	SalonName      *string
	Date           *types.DateString
	Time           *types.TimeString
	Status         *AppointmentStatus
	Price          *float64
	ClientName     *string
	Notes          *string
}
