package scheduling

import (
	"strings"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// hairFirstKeywords ключевые слова "парикмахерских" услуг
// Эвристика предметной области: такие услуги ставятся в цепочке первыми
var hairFirstKeywords = []string{"hair", "cut", "color", "colour", "style"}

// ReorderHairFirst переставляет услуги с парикмахерскими именами в начало,
// сохраняя относительный порядок внутри обеих групп
// Строковая классификация по имени - осознанно грубая эвристика, не жесткое правило
func ReorderHairFirst(services []domain.ServiceRequirement) []domain.ServiceRequirement {
	hair := make([]domain.ServiceRequirement, 0, len(services))
	rest := make([]domain.ServiceRequirement, 0, len(services))

	for _, svc := range services {
		if isHairService(svc.Name) {
			hair = append(hair, svc)
		} else {
			rest = append(rest, svc)
		}
	}

	return append(hair, rest...)
}

func isHairService(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range hairFirstKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// BuildSequentialItineraries строит маршруты последовательного выполнения услуг
// (ItineraryBuilder, стратегия Sequential)
//
// Первый мастер комбинации - основной: непрерывные окна ищутся в его расписании
// на sum(длительностей). Услуги цепляются встык от начала окна; каждая услуга
// назначается первому квалифицированному мастеру комбинации (основному, если
// квалифицированных нет), станции - как в параллельной стратегии
func BuildSequentialItineraries(
	combo domain.ResourceCombination,
	date time.Time,
	slotsByProfessional map[int64][]domain.TimeBlock,
	blockSizeMinutes int,
) []domain.WizardItinerary {
	if combo.ExecutionType != domain.ExecutionSequential || len(combo.ProfessionalIDs) == 0 {
		return []domain.WizardItinerary{}
	}

	primary := combo.ProfessionalIDs[0]

	totalDuration := 0
	for _, svc := range combo.Services {
		totalDuration += svc.DurationMinutes
	}
	if totalDuration <= 0 {
		return []domain.WizardItinerary{}
	}

	windows := FindContiguousWindows(slotsByProfessional[primary], totalDuration, blockSizeMinutes)
	if len(windows) == 0 {
		return []domain.WizardItinerary{}
	}

	ordered := ReorderHairFirst(combo.Services)

	itineraries := make([]domain.WizardItinerary, 0, len(windows))
	for _, window := range windows {
		itinerary, ok := buildSequentialItinerary(combo, ordered, date, window, totalDuration)
		if ok {
			itineraries = append(itineraries, itinerary)
		}
	}

	return itineraries
}

func buildSequentialItinerary(
	combo domain.ResourceCombination,
	ordered []domain.ServiceRequirement,
	date time.Time,
	window domain.TimeWindow,
	totalDuration int,
) (domain.WizardItinerary, bool) {
	usedStations := make(map[int64]bool)

	assignments := make([]domain.ServiceAssignment, 0, len(ordered))
	serviceIDs := make([]int64, 0, len(ordered))
	totalPrice := 0.0
	cursor := window.Start

	for _, svc := range ordered {
		svcEnd, err := cursor.AddMinutes(svc.DurationMinutes)
		if err != nil {
			return domain.WizardItinerary{}, false
		}

		assignments = append(assignments, domain.ServiceAssignment{
			ServiceID:      svc.ServiceID,
			ProfessionalID: sequentialProfessional(svc, combo.ProfessionalIDs),
			StationID:      pickStation(svc, combo.StationAssignment, usedStations),
			Start:          cursor,
			End:            svcEnd,
			Price:          svc.Price,
		})

		serviceIDs = append(serviceIDs, svc.ServiceID)
		totalPrice += svc.Price
		cursor = svcEnd
	}

	return domain.WizardItinerary{
		ID:                   domain.ItineraryID(date, window.Start, serviceIDs, domain.ExecutionSequential),
		Date:                 date,
		Start:                window.Start,
		End:                  window.End,
		TotalDurationMinutes: totalDuration,
		TotalPrice:           totalPrice,
		ExecutionType:        domain.ExecutionSequential,
		ServiceAssignments:   assignments,
	}, true
}

// sequentialProfessional выбирает первого квалифицированного мастера комбинации,
// основного - если квалифицированных в комбинации нет
func sequentialProfessional(svc domain.ServiceRequirement, professionalIDs []int64) int64 {
	for _, profID := range professionalIDs {
		if svc.IsQualified(profID) {
			return profID
		}
	}
	return professionalIDs[0]
}
