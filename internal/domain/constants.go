package domain

import "github.com/m04kA/Salon-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat = types.TimeFormat // HH:MM
	DateFormat = types.DateFormat // YYYY-MM-DD
)

// BusinessHourSlots фиксированный упорядоченный набор слотов рабочего дня
// 13:00 намеренно отсутствует (обеденный перерыв), набор не конфигурируется
var BusinessHourSlots = []types.TimeString{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// PopularSlots статичная рекомендация популярных слотов
// Константа, не вычисляется из фактического спроса
var PopularSlots = []types.TimeString{
	"10:00",
	"14:00",
	"16:00",
}

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
}
