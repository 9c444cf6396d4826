package get_calendar_availability

// Request модель запроса помесячной доступности мастера
type Request struct {
	TenantID       int64 // ID салона
	ProfessionalID int64 // ID мастера
	Year           int   // Год (2020..2030)
	Month          int   // Месяц (1..12)
}

// Response модель ответа с доступностью по дням месяца
type Response struct {
	TenantID       int64
	ProfessionalID int64
	Year           int
	Month          int
	// Days дни месяца с признаком потенциальной доступности.
	// Дни, при обработке которых произошла ошибка, опущены:
	// ответ может быть неполным и не заменяет полную проверку слотов
	Days []DayAvailability
}

// DayAvailability потенциальная доступность одного дня
type DayAvailability struct {
	Date      string // YYYY-MM-DD
	Available bool
}
