package catalog

import "github.com/m04kA/Salon-BookingService/internal/domain"

// SeedServices возвращает стартовый набор услуг
func SeedServices() []domain.Service {
	return []domain.Service{
		{ID: "1", Name: "Haircut & Styling", Description: "Cut, wash and blow-dry", Category: "hair", Price: 45, DurationMinutes: 60},
		{ID: "2", Name: "Hair Coloring", Description: "Full color or highlights", Category: "hair", Price: 80, DurationMinutes: 120},
		{ID: "3", Name: "Manicure & Pedicure", Description: "Classic manicure and pedicure", Category: "nails", Price: 35, DurationMinutes: 45},
		{ID: "4", Name: "Beard Trim", Description: "Beard shaping and trim", Category: "barber", Price: 20, DurationMinutes: 30},
		{ID: "5", Name: "Facial Treatment", Description: "Deep-cleansing facial", Category: "skin", Price: 60, DurationMinutes: 50},
		{ID: "6", Name: "Hair Treatment", Description: "Keratin repair treatment", Category: "hair", Price: 55, DurationMinutes: 40},
	}
}

// SeedEmployees возвращает стартовый набор мастеров
func SeedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "1", Name: "Sofia Ramirez", Role: "Hair Stylist", SalonID: "1", Specialties: []string{"1", "6"}},
		{ID: "2", Name: "Lucia Fernandez", Role: "Colorist", SalonID: "1", Specialties: []string{"2", "6"}},
		{ID: "3", Name: "Valeria Cruz", Role: "Nail Technician", SalonID: "2", Specialties: []string{"3"}},
		{ID: "4", Name: "Diego Torres", Role: "Barber", SalonID: "2", Specialties: []string{"1", "4"}},
		{ID: "5", Name: "Carmen Silva", Role: "Esthetician", SalonID: "3", Specialties: []string{"5"}},
	}
}

// SeedSalons возвращает стартовый набор салонов
func SeedSalons() []domain.Salon {
	return []domain.Salon{
		{ID: "1", Name: "Bella Vita Salon", Address: "Av. Reforma 123, Centro", Phone: "+52 55 1234 5678", Rating: 4.8},
		{ID: "2", Name: "Urban Style Studio", Address: "Calle Juarez 45, Roma Norte", Phone: "+52 55 8765 4321", Rating: 4.6},
		{ID: "3", Name: "Glow Beauty Bar", Address: "Av. Insurgentes 890, Condesa", Phone: "+52 55 2468 1357", Rating: 4.9},
	}
}
