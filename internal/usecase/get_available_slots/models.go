package get_available_slots

import "github.com/m04kA/Salon-BookingService/pkg/types"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date types.DateString // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  types.DateString   // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Свободные слоты в порядке рабочего дня
}
