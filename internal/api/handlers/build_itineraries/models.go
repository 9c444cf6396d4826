package build_itineraries

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	buildItineraries "github.com/m04kA/BMS-SchedulingService/internal/usecase/build_itineraries"
)

// BuildItinerariesRequest HTTP request model
type BuildItinerariesRequest struct {
	Date                   string  `json:"date"` // "2026-03-16"
	ServiceIDs             []int64 `json:"serviceIds"`
	ProfessionalsRequested int     `json:"professionalsRequested"`
	RestrictProfessionals  []int64 `json:"restrictProfessionals,omitempty"`
	ExcludeClientID        *int64  `json:"excludeClientId,omitempty"`
}

// ItinerariesResponse HTTP response model
type ItinerariesResponse struct {
	TenantID    int64       `json:"tenantId"`
	Date        string      `json:"date"`
	Itineraries []Itinerary `json:"itineraries"`
}

// Itinerary предложение мульти-сервисной записи
type Itinerary struct {
	ID                   string              `json:"id"`
	StartTime            string              `json:"startTime"`
	EndTime              string              `json:"endTime"`
	TotalDurationMinutes int                 `json:"totalDurationMinutes"`
	TotalPrice           float64             `json:"totalPrice"`
	ExecutionType        string              `json:"executionType"`
	Services             []ServiceAssignment `json:"services"`
}

// ServiceAssignment назначение одной услуги внутри маршрута
type ServiceAssignment struct {
	ServiceID      int64   `json:"serviceId"`
	ProfessionalID int64   `json:"professionalId"`
	StationID      *int64  `json:"stationId,omitempty"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Price          float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BuildItinerariesRequest) ToUseCaseRequest(tenantID int64) (*buildItineraries.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &buildItineraries.Request{
		TenantID:               tenantID,
		Date:                   date,
		ServiceIDs:             r.ServiceIDs,
		ProfessionalsRequested: r.ProfessionalsRequested,
		RestrictProfessionals:  r.RestrictProfessionals,
		ExcludeClientID:        r.ExcludeClientID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildItineraries.Response) *ItinerariesResponse {
	itineraries := make([]Itinerary, len(resp.Itineraries))
	for i, it := range resp.Itineraries {
		services := make([]ServiceAssignment, len(it.Services))
		for j, svc := range it.Services {
			services[j] = ServiceAssignment{
				ServiceID:      svc.ServiceID,
				ProfessionalID: svc.ProfessionalID,
				StationID:      svc.StationID,
				StartTime:      svc.Start.String(),
				EndTime:        svc.End.String(),
				Price:          svc.Price,
			}
		}
		itineraries[i] = Itinerary{
			ID:                   it.ID,
			StartTime:            it.Start.String(),
			EndTime:              it.End.String(),
			TotalDurationMinutes: it.TotalDurationMinutes,
			TotalPrice:           it.TotalPrice,
			ExecutionType:        it.ExecutionType,
			Services:             services,
		}
	}

	return &ItinerariesResponse{
		TenantID:    resp.TenantID,
		Date:        resp.Date.Format(domain.DateFormat),
		Itineraries: itineraries,
	}
}
