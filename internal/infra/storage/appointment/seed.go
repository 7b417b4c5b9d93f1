package appointment

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// SeedAppointments возвращает стартовый mock-набор записей
// Набор содержит 2 предстоящие, 2 завершенные и 1 отмененную запись;
// рестарт процесса всегда возвращает хранилище к этому состоянию
func SeedAppointments() []*domain.Appointment {
	cancelledAt := time.Date(2024, 3, 18, 12, 30, 0, 0, time.UTC)

	return []*domain.Appointment{
		{
			ID:             "1",
			ClientID:       1,
			ClientName:     "Maria Lopez",
			ServiceID:      "1",
			Service:        "Haircut & Styling",
			ProfessionalID: "1",
			Professional:   "Sofia Ramirez",
			SalonID:        "1",
			SalonName:      "Bella Vita Salon",
			Date:           "2025-04-15",
			Time:           "14:30",
			Status:         domain.StatusScheduled,
			Price:          45,
			CreatedAt:      time.Date(2025, 4, 1, 9, 15, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 4, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			ClientID:       1,
			ClientName:     "Maria Lopez",
			ServiceID:      "3",
			Service:        "Manicure & Pedicure",
			ProfessionalID: "3",
			Professional:   "Valeria Cruz",
			SalonID:        "2",
			SalonName:      "Urban Style Studio",
			Date:           "2025-04-20",
			Time:           "10:00",
			Status:         domain.StatusScheduled,
			Price:          35,
			CreatedAt:      time.Date(2025, 4, 2, 16, 40, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 4, 2, 16, 40, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			ClientID:       1,
			ClientName:     "Maria Lopez",
			ServiceID:      "2",
			Service:        "Hair Coloring",
			ProfessionalID: "2",
			Professional:   "Lucia Fernandez",
			SalonID:        "1",
			SalonName:      "Bella Vita Salon",
			Date:           "2024-03-10",
			Time:           "11:00",
			Status:         domain.StatusCompleted,
			Price:          80,
			CreatedAt:      time.Date(2024, 2, 25, 10, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 3, 10, 13, 5, 0, 0, time.UTC),
		},
		{
			ID:             "4",
			ClientID:       1,
			ClientName:     "Maria Lopez",
			ServiceID:      "4",
			Service:        "Beard Trim",
			ProfessionalID: "4",
			Professional:   "Diego Torres",
			SalonID:        "2",
			SalonName:      "Urban Style Studio",
			Date:           "2024-03-05",
			Time:           "16:00",
			Status:         domain.StatusCompleted,
			Price:          20,
			CreatedAt:      time.Date(2024, 2, 20, 18, 30, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 3, 5, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:             "5",
			ClientID:       1,
			ClientName:     "Maria Lopez",
			ServiceID:      "5",
			Service:        "Facial Treatment",
			ProfessionalID: "5",
			Professional:   "Carmen Silva",
			SalonID:        "3",
			SalonName:      "Glow Beauty Bar",
			Date:           "2024-03-20",
			Time:           "15:00",
			Status:         domain.StatusCancelled,
			Price:          60,
			CancelledAt:    &cancelledAt,
			CreatedAt:      time.Date(2024, 3, 1, 11, 20, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 3, 18, 12, 30, 0, 0, time.UTC),
		},
	}
}
