package catalog

import "github.com/m04kA/Salon-BookingService/internal/domain"

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// ServiceListResponse HTTP модель списка услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ProfessionalResponse HTTP модель мастера каталога
type ProfessionalResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	SalonID     string   `json:"salon_id"`
	Specialties []string `json:"specialties"`
}

// ProfessionalListResponse HTTP модель списка мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// SalonResponse HTTP модель салона
type SalonResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Rating  float64 `json:"rating"`
}

// SalonListResponse HTTP модель списка салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomainService конвертирует доменную услугу в HTTP response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список услуг в HTTP response
func FromDomainServiceList(services []domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for i := range services {
		result = append(result, *FromDomainService(&services[i]))
	}
	return &ServiceListResponse{Services: result}
}

// FromDomainEmployee конвертирует доменного мастера в HTTP response
func FromDomainEmployee(e *domain.Employee) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:          e.ID,
		Name:        e.Name,
		Role:        e.Role,
		SalonID:     e.SalonID,
		Specialties: e.Specialties,
	}
}

// FromDomainEmployeeList конвертирует список мастеров в HTTP response
func FromDomainEmployeeList(employees []domain.Employee) *ProfessionalListResponse {
	result := make([]ProfessionalResponse, 0, len(employees))
	for i := range employees {
		result = append(result, *FromDomainEmployee(&employees[i]))
	}
	return &ProfessionalListResponse{Professionals: result}
}

// FromDomainSalon конвертирует доменный салон в HTTP response
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	return &SalonResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Rating:  s.Rating,
	}
}

// FromDomainSalonList конвертирует список салонов в HTTP response
func FromDomainSalonList(salons []domain.Salon) *SalonListResponse {
	result := make([]SalonResponse, 0, len(salons))
	for i := range salons {
		result = append(result, *FromDomainSalon(&salons[i]))
	}
	return &SalonListResponse{Salons: result}
}
