package domain

// Service represents a bookable salon service from the static catalog
type Service struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Price           float64
	DurationMinutes int
}

// Employee represents a staff member (professional) from the static catalog
type Employee struct {
	ID          string
	Name        string
	Role        string
	SalonID     string
	Specialties []string
}

// Salon represents a salon from the static catalog
type Salon struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Rating  float64
}
