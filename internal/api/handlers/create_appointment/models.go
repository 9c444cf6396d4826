package create_appointment

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/BMS-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	TenantID       int64   `json:"tenantId"`
	ClientID       int64   `json:"clientId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	StationID      *int64  `json:"stationId,omitempty"`
	Date           string  `json:"date"`      // "2026-03-16"
	StartTime      string  `json:"startTime"` // "10:00"
	Notes          *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	TenantID       int64   `json:"tenantId"`
	ClientID       int64   `json:"clientId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	StationID      *int64  `json:"stationId,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	ServicePrice   float64 `json:"servicePrice"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TenantID:       r.TenantID,
		ClientID:       r.ClientID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		StationID:      r.StationID,
		Date:           date,
		Start:          start,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		TenantID:       resp.TenantID,
		ClientID:       resp.ClientID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		StationID:      resp.StationID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.Start.String(),
		EndTime:        resp.End.String(),
		Status:         resp.Status,
		ServiceName:    resp.ServiceName,
		ServicePrice:   resp.ServicePrice,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
