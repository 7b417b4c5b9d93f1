package catalog

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Repository read-only каталог услуг, мастеров и салонов
//
// Каталог неизменяем после создания: записи хранят денормализованные копии
// его display-полей, поэтому правки каталога не влияют на историю
type Repository struct {
	services  []domain.Service
	employees []domain.Employee
	salons    []domain.Salon

	serviceIndex  map[string]int
	employeeIndex map[string]int
	salonIndex    map[string]int
}

// NewRepository создает каталог из переданных справочных данных
func NewRepository(services []domain.Service, employees []domain.Employee, salons []domain.Salon) *Repository {
	r := &Repository{
		services:      services,
		employees:     employees,
		salons:        salons,
		serviceIndex:  make(map[string]int, len(services)),
		employeeIndex: make(map[string]int, len(employees)),
		salonIndex:    make(map[string]int, len(salons)),
	}

	for i, s := range services {
		r.serviceIndex[s.ID] = i
	}
	for i, e := range employees {
		r.employeeIndex[e.ID] = i
	}
	for i, s := range salons {
		r.salonIndex[s.ID] = i
	}

	return r
}

// NewSeededRepository создает каталог со стартовым mock-набором данных
func NewSeededRepository() *Repository {
	return NewRepository(SeedServices(), SeedEmployees(), SeedSalons())
}

// ListServices возвращает все услуги каталога
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	result := make([]domain.Service, len(r.services))
	copy(result, r.services)
	return result, nil
}

// GetServiceByID возвращает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	pos, ok := r.serviceIndex[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	service := r.services[pos]
	return &service, nil
}

// ListEmployees возвращает всех мастеров каталога
func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, len(r.employees))
	copy(result, r.employees)
	return result, nil
}

// GetEmployeeByID возвращает мастера по ID
func (r *Repository) GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	pos, ok := r.employeeIndex[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	employee := r.employees[pos]
	return &employee, nil
}

// ListSalons возвращает все салоны каталога
func (r *Repository) ListSalons(ctx context.Context) ([]domain.Salon, error) {
	result := make([]domain.Salon, len(r.salons))
	copy(result, r.salons)
	return result, nil
}

// GetSalonByID возвращает салон по ID
func (r *Repository) GetSalonByID(ctx context.Context, id string) (*domain.Salon, error) {
	pos, ok := r.salonIndex[id]
	if !ok {
		return nil, ErrSalonNotFound
	}
	salon := r.salons[pos]
	return &salon, nil
}
