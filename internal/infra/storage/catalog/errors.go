package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrEmployeeNotFound возвращается, когда мастер не найден в каталоге
	ErrEmployeeNotFound = errors.New("catalog.repository: employee not found")

	// ErrSalonNotFound возвращается, когда салон не найден в каталоге
	ErrSalonNotFound = errors.New("catalog.repository: salon not found")
)
