package build_itineraries

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при дате вне поддерживаемого диапазона
	ErrInvalidDate = errors.New("date is out of supported range")

	// ErrServiceNotFound возвращается, когда запрошенная услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
