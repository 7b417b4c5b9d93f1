package catalog

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// CatalogRepository интерфейс read-only каталога справочных данных
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
	ListSalons(ctx context.Context) ([]domain.Salon, error)
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
