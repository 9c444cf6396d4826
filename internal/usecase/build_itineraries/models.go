package build_itineraries

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// Request модель запроса мастера подбора мульти-сервисной записи
type Request struct {
	TenantID               int64     // ID салона
	Date                   time.Time // Дата поиска
	ServiceIDs             []int64   // Запрошенные услуги (1..MaxServicesPerRequest)
	ProfessionalsRequested int       // Сколько мастеров клиент готов задействовать (1 или 2)
	RestrictProfessionals  []int64   // Сузить поиск до этих мастеров (опционально)
	ExcludeClientID        *int64    // Записи этого клиента не блокируют слоты (опционально)
}

// Response модель ответа с ранжированными маршрутами
type Response struct {
	TenantID    int64
	Date        time.Time
	Itineraries []Itinerary
}

// Itinerary предложение мульти-сервисной записи
type Itinerary struct {
	ID                   string
	Date                 time.Time
	Start                types.TimeString
	End                  types.TimeString
	TotalDurationMinutes int
	TotalPrice           float64
	ExecutionType        string // PARALLEL или SEQUENTIAL
	Services             []ServiceAssignment
}

// ServiceAssignment назначение одной услуги внутри маршрута
type ServiceAssignment struct {
	ServiceID      int64
	ProfessionalID int64
	StationID      *int64
	Start          types.TimeString
	End            types.TimeString
	Price          float64
}

func fromDomainItinerary(it domain.WizardItinerary) Itinerary {
	services := make([]ServiceAssignment, 0, len(it.ServiceAssignments))
	for _, a := range it.ServiceAssignments {
		services = append(services, ServiceAssignment{
			ServiceID:      a.ServiceID,
			ProfessionalID: a.ProfessionalID,
			StationID:      a.StationID,
			Start:          a.Start,
			End:            a.End,
			Price:          a.Price,
		})
	}

	return Itinerary{
		ID:                   it.ID,
		Date:                 it.Date,
		Start:                it.Start,
		End:                  it.End,
		TotalDurationMinutes: it.TotalDurationMinutes,
		TotalPrice:           it.TotalPrice,
		ExecutionType:        string(it.ExecutionType),
		Services:             services,
	}
}
