package get_service_availability

import (
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// Request модель запроса окон для услуги на месяц
type Request struct {
	TenantID        int64  // ID салона
	ProfessionalID  int64  // ID мастера
	ServiceID       int64  // ID услуги
	Year            int    // Год (2020..2030)
	Month           int    // Месяц (1..12)
	ExcludeClientID *int64 // Записи этого клиента не блокируют слоты (опционально)
}

// Response модель ответа с окнами по дням месяца
type Response struct {
	TenantID       int64
	ProfessionalID int64
	ServiceID      int64
	Year           int
	Month          int
	// Days дни месяца, в которых есть хотя бы одно окно нужной
	// длительности. Дни без окон в ответ не попадают
	Days []DayWindows
}

// DayWindows окна одного дня
type DayWindows struct {
	Date    string // YYYY-MM-DD
	Windows []Window
}

// Window непрерывное окно, в которое помещается услуга
type Window struct {
	Start types.TimeString
	End   types.TimeString
}
