package get_daily_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	getDailyAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_daily_availability"
)

// DailyAvailabilityResponse HTTP response model
type DailyAvailabilityResponse struct {
	TenantID       int64   `json:"tenantId"`
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`
	Blocks         []Block `json:"blocks"`
}

// Block модель одного блока расписания
type Block struct {
	StartTime             string `json:"startTime"`
	EndTime               string `json:"endTime"`
	Available             bool   `json:"available"`
	BlockingAppointmentID *int64 `json:"blockingAppointmentId,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tenantID, professionalID int64, dateStr, excludeClientIDStr string) (*getDailyAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
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

	return &getDailyAvailability.Request{
		TenantID:        tenantID,
		ProfessionalID:  professionalID,
		Date:            date,
		ExcludeClientID: excludeClientID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDailyAvailability.Response) *DailyAvailabilityResponse {
	blocks := make([]Block, len(resp.Blocks))
	for i, b := range resp.Blocks {
		blocks[i] = Block{
			StartTime:             b.Start.String(),
			EndTime:               b.End.String(),
			Available:             b.Available,
			BlockingAppointmentID: b.BlockingAppointmentID,
		}
	}

	return &DailyAvailabilityResponse{
		TenantID:       resp.TenantID,
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Blocks:         blocks,
	}
}
