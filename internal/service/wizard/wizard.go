package wizard

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Step шаг мастера бронирования
type Step int

const (
	StepSelectSalon Step = iota
	StepSelectService
	StepSelectProfessional
	StepSelectDateTime
	StepConfirm   // полный набор выбран, ждем явного подтверждения
	StepConfirmed // терминальный шаг: запись создана
)

// String возвращает строковое имя шага для API и логов
func (s Step) String() string {
	switch s {
	case StepSelectSalon:
		return "select_salon"
	case StepSelectService:
		return "select_service"
	case StepSelectProfessional:
		return "select_professional"
	case StepSelectDateTime:
		return "select_datetime"
	case StepConfirm:
		return "confirm"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// selectionSteps шаги выбора в порядке прохождения мастера
var selectionSteps = []Step{
	StepSelectSalon,
	StepSelectService,
	StepSelectProfessional,
	StepSelectDateTime,
}

// Session состояние одного прохода мастера бронирования
//
// Промежуточные шаги — чисто клиентский выбор без побочных эффектов: до
// подтверждения ничего не сохраняется, откат частичного состояния не нужен
type Session struct {
	ID         string
	ClientID   int64
	ClientName string

	SalonID        string
	ServiceID      string
	ProfessionalID string
	Date           types.DateString
	Time           types.TimeString

	Step Step

	// AppointmentID заполняется после подтверждения
	AppointmentID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// stepComplete возвращает true, если выбор шага уже сделан
func (s *Session) stepComplete(step Step) bool {
	switch step {
	case StepSelectSalon:
		return s.SalonID != ""
	case StepSelectService:
		return s.ServiceID != ""
	case StepSelectProfessional:
		return s.ProfessionalID != ""
	case StepSelectDateTime:
		return !s.Date.IsZero() && !s.Time.IsZero()
	default:
		return false
	}
}

// HasFullSelection возвращает true, если выбраны все обязательные поля
func (s *Session) HasFullSelection() bool {
	for _, step := range selectionSteps {
		if !s.stepComplete(step) {
			return false
		}
	}
	return true
}

// advance переводит сессию на первый незаполненный шаг
// При полном наборе выбора мастер останавливается на подтверждении:
// автоматического создания записи нет
func (s *Session) advance() {
	for _, step := range selectionSteps {
		if !s.stepComplete(step) {
			s.Step = step
			return
		}
	}
	s.Step = StepConfirm
}

// back откатывает мастер на один шаг, не стирая сделанный выбор
func (s *Session) back() {
	if s.Step > StepSelectSalon && s.Step <= StepConfirm {
		s.Step--
	}
}

// reset возвращает сессию к начальному состоянию ("записаться еще раз")
func (s *Session) reset() {
	s.SalonID = ""
	s.ServiceID = ""
	s.ProfessionalID = ""
	s.Date = ""
	s.Time = ""
	s.AppointmentID = ""
	s.Step = StepSelectSalon
}

// clone возвращает копию сессии для выдачи наружу
func (s *Session) clone() *Session {
	c := *s
	return &c
}
