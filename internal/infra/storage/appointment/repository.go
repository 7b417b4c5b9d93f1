package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Repository in-memory репозиторий записей на услуги
//
// Хранилище живет только в памяти процесса: рестарт сбрасывает данные к
// seed-набору. Записи никогда не удаляются физически, только меняют статус.
// Порядок вставки сохраняется, все методы возвращают копии записей.
type Repository struct {
	mu           sync.RWMutex
	appointments []*domain.Appointment
	index        map[string]int // id -> позиция в appointments

	now   func() time.Time
	newID func() string
}

// NewRepository создает пустой репозиторий записей
func NewRepository() *Repository {
	return &Repository{
		appointments: make([]*domain.Appointment, 0),
		index:        make(map[string]int),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// NewSeededRepository создает репозиторий, заполненный mock-набором записей
func NewSeededRepository() *Repository {
	r := NewRepository()
	for _, appt := range SeedAppointments() {
		r.insert(appt)
	}
	return r
}

// Create создает новую запись: генерирует уникальный id, проставляет
// служебные метки времени и добавляет запись в конец списка
//
// Проверка двойного бронирования НЕ выполняется: две записи на один и тот же
// слот принимаются молча, как и в исходной модели данных
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneAppointment(appt)

	// Генерируем id, которого еще нет в хранилище
	id := r.newID()
	for _, exists := r.index[id]; exists; _, exists = r.index[id] {
		id = r.newID()
	}
	stored.ID = id

	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.insert(stored)

	return cloneAppointment(stored), nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	return cloneAppointment(r.appointments[pos]), nil
}

// GetAll возвращает копии всех записей в порядке вставки, без фильтрации
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, appt := range r.appointments {
		result = append(result, cloneAppointment(appt))
	}

	return result, nil
}

// GetByStatus возвращает записи с указанным статусом в порядке вставки
func (r *Repository) GetByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if appt.Status == status {
			result = append(result, cloneAppointment(appt))
		}
	}

	return result, nil
}

// GetByDate возвращает записи на указанную дату, опционально фильтруя по статусу
// Даты сравниваются как строки, по точному совпадению
func (r *Repository) GetByDate(ctx context.Context, date types.DateString, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if appt.Date != date {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, cloneAppointment(appt))
	}

	return result, nil
}

// Update выполняет частичное обновление записи: заданные поля затирают
// существующие, nil-поля не трогаются. Возвращает обновленную запись
func (r *Repository) Update(ctx context.Context, id string, upd domain.AppointmentUpdate) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	appt := r.appointments[pos]

	if upd.ServiceID != nil {
		appt.ServiceID = *upd.ServiceID
	}
	if upd.Service != nil {
		appt.Service = *upd.Service
	}
	if upd.ProfessionalID != nil {
		appt.ProfessionalID = *upd.ProfessionalID
	}
	if upd.Professional != nil {
		appt.Professional = *upd.Professional
	}
	if upd.SalonID != nil {
		appt.SalonID = *upd.SalonID
	}
	if upd.SalonName != nil {
		appt.SalonName = *upd.SalonName
	}
	if upd.Date != nil {
		appt.Date = *upd.Date
	}
	if upd.Time != nil {
		appt.Time = *upd.Time
	}
	if upd.Status != nil {
		appt.Status = *upd.Status
	}
	if upd.Price != nil {
		appt.Price = *upd.Price
	}
	if upd.ClientName != nil {
		appt.ClientName = *upd.ClientName
	}
	if upd.Notes != nil {
		notes := *upd.Notes
		appt.Notes = &notes
	}

	appt.UpdatedAt = r.now()

	return cloneAppointment(appt), nil
}

// Cancel переводит запись в статус cancelled (однонаправленный переход)
// Повторная отмена уже отмененной записи также завершается успехом:
// запись находится по id, статус остается cancelled
func (r *Repository) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return ErrAppointmentNotFound
	}

	appt := r.appointments[pos]
	appt.Status = domain.StatusCancelled
	if appt.CancelledAt == nil {
		now := r.now()
		appt.CancelledAt = &now
	}
	appt.UpdatedAt = r.now()

	return nil
}

// Len возвращает текущее количество записей в хранилище
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.appointments)
}

// insert добавляет запись в конец списка; вызывается под мьютексом
func (r *Repository) insert(appt *domain.Appointment) {
	r.index[appt.ID] = len(r.appointments)
	r.appointments = append(r.appointments, appt)
}

// cloneAppointment возвращает глубокую копию записи, чтобы вызывающий код
// не мог изменить хранилище напрямую
func cloneAppointment(appt *domain.Appointment) *domain.Appointment {
	clone := *appt

	if appt.Notes != nil {
		notes := *appt.Notes
		clone.Notes = &notes
	}
	if appt.CancelledAt != nil {
		cancelledAt := *appt.CancelledAt
		clone.CancelledAt = &cancelledAt
	}

	return &clone
}
