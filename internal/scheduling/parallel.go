package scheduling

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// BuildParallelItineraries строит маршруты одновременного выполнения услуг
// парой мастеров (ItineraryBuilder, стратегия Parallel)
//
// Для каждой стартовой позиции, где у обоих мастеров одновременно свободен блок,
// окно наращивается вперед, пока не покроет max(длительностей услуг): оба мастера
// должны иметь следующий доступный блок, начинающийся ровно в конце текущего окна.
// Если нарастить не удалось, стартовая позиция отбрасывается
func BuildParallelItineraries(
	combo domain.ResourceCombination,
	date time.Time,
	slotsByProfessional map[int64][]domain.TimeBlock,
) []domain.WizardItinerary {
	if combo.ExecutionType != domain.ExecutionParallel || len(combo.ProfessionalIDs) != 2 {
		return []domain.WizardItinerary{}
	}

	maxDuration := 0
	for _, svc := range combo.Services {
		if svc.DurationMinutes > maxDuration {
			maxDuration = svc.DurationMinutes
		}
	}
	if maxDuration <= 0 {
		return []domain.WizardItinerary{}
	}

	first := availableByStart(slotsByProfessional[combo.ProfessionalIDs[0]])
	second := availableByStart(slotsByProfessional[combo.ProfessionalIDs[1]])

	itineraries := make([]domain.WizardItinerary, 0)

	for _, block := range slotsByProfessional[combo.ProfessionalIDs[0]] {
		if !block.Available {
			continue
		}
		other, ok := second[block.Start]
		if !ok || !other.End.Equal(block.End) {
			// Мастера свободны одновременно только при совпадающих блоках
			continue
		}

		targetEnd, err := block.Start.AddMinutes(maxDuration)
		if err != nil {
			continue
		}

		if !extendSimultaneous(block, targetEnd, first, second) {
			continue
		}

		itineraries = append(itineraries, buildParallelItinerary(combo, date, block.Start, targetEnd, maxDuration))
	}

	return itineraries
}

// extendSimultaneous наращивает одновременное окно обоих мастеров до targetEnd
func extendSimultaneous(
	start domain.TimeBlock,
	targetEnd types.TimeString,
	first, second map[types.TimeString]domain.TimeBlock,
) bool {
	currentEnd := start.End

	for currentEnd.IsBefore(targetEnd) {
		next1, ok1 := first[currentEnd]
		next2, ok2 := second[currentEnd]
		if !ok1 || !ok2 || !next1.End.Equal(next2.End) {
			return false
		}
		currentEnd = next1.End
	}

	return true
}

func buildParallelItinerary(
	combo domain.ResourceCombination,
	date time.Time,
	start, end types.TimeString,
	maxDuration int,
) domain.WizardItinerary {
	professionals := assignProfessionals(combo.Services, combo.ProfessionalIDs)
	usedStations := make(map[int64]bool)

	assignments := make([]domain.ServiceAssignment, 0, len(combo.Services))
	serviceIDs := make([]int64, 0, len(combo.Services))
	totalPrice := 0.0

	for i, svc := range combo.Services {
		svcEnd, err := start.AddMinutes(svc.DurationMinutes)
		if err != nil {
			svcEnd = end
		}

		assignments = append(assignments, domain.ServiceAssignment{
			ServiceID:      svc.ServiceID,
			ProfessionalID: professionals[i],
			StationID:      pickStation(svc, combo.StationAssignment, usedStations),
			Start:          start,
			End:            svcEnd,
			Price:          svc.Price,
		})

		serviceIDs = append(serviceIDs, svc.ServiceID)
		totalPrice += svc.Price
	}

	return domain.WizardItinerary{
		ID:                   domain.ItineraryID(date, start, serviceIDs, domain.ExecutionParallel),
		Date:                 date,
		Start:                start,
		End:                  end,
		TotalDurationMinutes: maxDuration,
		TotalPrice:           totalPrice,
		ExecutionType:        domain.ExecutionParallel,
		ServiceAssignments:   assignments,
	}
}

// assignProfessionals распределяет услуги по мастерам комбинации в три прохода:
//  1. первый еще не занятый квалифицированный мастер
//  2. уже занятый квалифицированный мастер
//  3. мастер по круговому индексу
func assignProfessionals(services []domain.ServiceRequirement, professionalIDs []int64) []int64 {
	used := make(map[int64]bool)
	result := make([]int64, len(services))

	for i := range services {
		svc := &services[i]
		assigned := false

		for _, profID := range professionalIDs {
			if svc.IsQualified(profID) && !used[profID] {
				result[i] = profID
				used[profID] = true
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}

		for _, profID := range professionalIDs {
			if svc.IsQualified(profID) {
				result[i] = profID
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}

		result[i] = professionalIDs[i%len(professionalIDs)]
	}

	return result
}

// pickStation выбирает первую еще не занятую станцию требуемого типа
// Если пул станций типа внутри маршрута исчерпан, услуга остается без станции
// (комбинация резервирует максимум по типам, а не сумму - см. DESIGN.md)
func pickStation(
	svc domain.ServiceRequirement,
	stationAssignment map[string][]int64,
	usedStations map[int64]bool,
) *int64 {
	for _, stationType := range stationTypesOrdered(svc.StationNeeds) {
		for _, stationID := range stationAssignment[stationType] {
			if !usedStations[stationID] {
				usedStations[stationID] = true
				id := stationID
				return &id
			}
		}
	}
	return nil
}

// availableByStart индексирует доступные блоки по времени начала
func availableByStart(blocks []domain.TimeBlock) map[types.TimeString]domain.TimeBlock {
	index := make(map[types.TimeString]domain.TimeBlock, len(blocks))
	for _, b := range blocks {
		if b.Available {
			index[b.Start] = b
		}
	}
	return index
}
