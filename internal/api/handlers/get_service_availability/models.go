package get_service_availability

import (
	"strconv"

	getServiceAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_service_availability"
)

// ServiceAvailabilityResponse HTTP response model
type ServiceAvailabilityResponse struct {
	TenantID       int64        `json:"tenantId"`
	ProfessionalID int64        `json:"professionalId"`
	ServiceID      int64        `json:"serviceId"`
	Year           int          `json:"year"`
	Month          int          `json:"month"`
	Days           []DayWindows `json:"days"`
}

// DayWindows окна одного дня
type DayWindows struct {
	Date    string   `json:"date"`
	Windows []Window `json:"windows"`
}

// Window непрерывное окно, в которое помещается услуга
type Window struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tenantID, professionalID int64, serviceIDStr, yearStr, monthStr, excludeClientIDStr string) (*getServiceAvailability.Request, error) {
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, err
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, err
	}

	var excludeClientID *int64
	if excludeClientIDStr != "" {
		id, err := strconv.ParseInt(excludeClientIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		excludeClientID = &id
	}

	return &getServiceAvailability.Request{
		TenantID:        tenantID,
		ProfessionalID:  professionalID,
		ServiceID:       serviceID,
		Year:            year,
		Month:           month,
		ExcludeClientID: excludeClientID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getServiceAvailability.Response) *ServiceAvailabilityResponse {
	days := make([]DayWindows, len(resp.Days))
	for i, day := range resp.Days {
		windows := make([]Window, len(day.Windows))
		for j, w := range day.Windows {
			windows[j] = Window{
				StartTime: w.Start.String(),
				EndTime:   w.End.String(),
			}
		}
		days[i] = DayWindows{
			Date:    day.Date,
			Windows: windows,
		}
	}

	return &ServiceAvailabilityResponse{
		TenantID:       resp.TenantID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Year:           resp.Year,
		Month:          resp.Month,
		Days:           days,
	}
}
