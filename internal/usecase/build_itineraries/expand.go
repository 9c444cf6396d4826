package build_itineraries

import (
	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
)

// expandRequirements разворачивает услуги каталога в требования движка,
// сохраняя порядок запрошенных ID
func expandRequirements(serviceIDs []int64, services []catalogservice.Service) []domain.ServiceRequirement {
	byID := make(map[int64]catalogservice.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	requirements := make([]domain.ServiceRequirement, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			continue
		}

		needs := make(map[string]int, len(svc.StationNeeds))
		for stationType, qty := range svc.StationNeeds {
			needs[stationType] = qty
		}

		requirements = append(requirements, domain.ServiceRequirement{
			ServiceID:                svc.ID,
			Name:                     svc.Name,
			DurationMinutes:          svc.DurationMinutes,
			Parallelizable:           svc.Parallelizable,
			MaxParallelProfessionals: svc.MaxParallelProfessionals,
			StationNeeds:             needs,
			QualifiedProfessionalIDs: append([]int64(nil), svc.QualifiedProfessionalIDs...),
			Price:                    svc.Price,
		})
	}

	return requirements
}

// stationTypesNeeded собирает типы станций, встречающиеся в требованиях
func stationTypesNeeded(requirements []domain.ServiceRequirement) []string {
	seen := make(map[string]bool)
	stationTypes := make([]string, 0)
	for _, req := range requirements {
		for stationType := range req.StationNeeds {
			if !seen[stationType] {
				seen[stationType] = true
				stationTypes = append(stationTypes, stationType)
			}
		}
	}
	return stationTypes
}

// professionalsUnion собирает всех квалифицированных мастеров требований
// в детерминированном порядке первого появления
func professionalsUnion(requirements []domain.ServiceRequirement) []int64 {
	seen := make(map[int64]bool)
	union := make([]int64, 0)
	for _, req := range requirements {
		for _, profID := range req.QualifiedProfessionalIDs {
			if !seen[profID] {
				seen[profID] = true
				union = append(union, profID)
			}
		}
	}
	return union
}
