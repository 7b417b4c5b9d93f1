package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// PopularSlotsResponse HTTP response model
type PopularSlotsResponse struct {
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:  resp.Date.String(),
		Slots: toStrings(resp.Slots),
	}
}

func toStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, slot := range slots {
		result[i] = slot.String()
	}
	return result
}
