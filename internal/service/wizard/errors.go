package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrSalonNotFound возвращается, когда выбранный салон не найден в каталоге
	ErrSalonNotFound = errors.New("wizard: salon not found")

	// ErrServiceNotFound возвращается, когда выбранная услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("wizard: service not found")

	// ErrProfessionalNotFound возвращается, когда выбранный мастер не найден в каталоге
	ErrProfessionalNotFound = errors.New("wizard: professional not found")

	// ErrSelectionIncomplete возвращается при подтверждении с неполным набором выбора
	ErrSelectionIncomplete = errors.New("wizard: selection is incomplete")

	// ErrAlreadyConfirmed возвращается при попытке изменить завершенную сессию
	ErrAlreadyConfirmed = errors.New("wizard: session already confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
