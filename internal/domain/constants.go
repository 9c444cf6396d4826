package domain

// Default configuration values
const (
	DefaultBlockSizeMinutes = 30
)

// Business validation constants
const (
	MinBlockSizeMinutes = 5
	MaxBlockSizeMinutes = 240 // 4 часа

	// Поддерживаемый диапазон календарных запросов
	// Запросы вне диапазона отклоняются как некорректные, а не обрезаются
	MinQueryYear = 2020
	MaxQueryYear = 2030

	// Максимальное количество маршрутов в ответе после ранжирования
	MaxItineraries = 20

	MaxServicesPerRequest       = 10
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
