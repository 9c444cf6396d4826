package get_calendar_availability

import (
	getCalendarAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_calendar_availability"
)

// CalendarAvailabilityResponse HTTP response model
type CalendarAvailabilityResponse struct {
	TenantID       int64             `json:"tenantId"`
	ProfessionalID int64             `json:"professionalId"`
	Year           int               `json:"year"`
	Month          int               `json:"month"`
	Days           []DayAvailability `json:"days"`
}

// DayAvailability потенциальная доступность одного дня
type DayAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarAvailability.Response) *CalendarAvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayAvailability{
			Date:      d.Date,
			Available: d.Available,
		}
	}

	return &CalendarAvailabilityResponse{
		TenantID:       resp.TenantID,
		ProfessionalID: resp.ProfessionalID,
		Year:           resp.Year,
		Month:          resp.Month,
		Days:           days,
	}
}
