package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при дате вне поддерживаемого диапазона
	ErrInvalidDate = errors.New("date is out of supported range")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotQualified возвращается, когда мастер не оказывает услугу
	ErrProfessionalNotQualified = errors.New("professional is not qualified for this service")

	// ErrSlotNotAvailable возвращается, когда запрошенное время не проходит
	// повторную проверку доступности на момент записи
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrSlotConflict возвращается, когда конкурирующая запись заняла слот
	// между проверкой и вставкой (поймано ограничением БД)
	ErrSlotConflict = errors.New("slot was taken by a concurrent booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
