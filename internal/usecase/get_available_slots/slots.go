package get_available_slots

import (
	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// availableSlots вычитает из фиксированного набора рабочих слотов времена
// уже запланированных записей, сохраняя исходный порядок
//
// Слот считается занятым только при ПОЛНОМ совпадении строки времени.
// Запись на "14:30" не блокирует ни один слот из набора: интервальная логика
// пересечений здесь намеренно не применяется.
//
// Занятость считается на дату целиком, без учета мастера и салона: запись к
// одному мастеру закрывает слот и для всех остальных. Это известная
// особенность исходной модели, сохранена как есть (см. DESIGN.md)
func availableSlots(scheduled []*domain.Appointment) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(scheduled))
	for _, appt := range scheduled {
		taken[appt.Time] = struct{}{}
	}

	result := make([]types.TimeString, 0, len(domain.BusinessHourSlots))
	for _, slot := range domain.BusinessHourSlots {
		if _, ok := taken[slot]; ok {
			continue
		}
		result = append(result, slot)
	}

	return result
}
