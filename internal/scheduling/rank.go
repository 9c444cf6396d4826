package scheduling

import (
	"sort"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// RankItineraries дедуплицирует и упорядочивает кандидатов (ItineraryRanker)
//
// Дедупликация - по детерминированному ID: маршруты с одинаковым внешне видимым
// слотом (дата, начало, услуги, способ выполнения) схлопываются в один,
// независимо от выбора мастеров и станций
//
// Порядок: время начала по возрастанию, затем общая длительность по возрастанию,
// затем PARALLEL раньше SEQUENTIAL. Результат обрезается до топ-20
func RankItineraries(candidates []domain.WizardItinerary) []domain.WizardItinerary {
	seen := make(map[string]bool, len(candidates))
	unique := make([]domain.WizardItinerary, 0, len(candidates))

	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		unique = append(unique, c)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.IsBefore(b.Start)
		}
		if a.TotalDurationMinutes != b.TotalDurationMinutes {
			return a.TotalDurationMinutes < b.TotalDurationMinutes
		}
		return a.ExecutionType == domain.ExecutionParallel && b.ExecutionType == domain.ExecutionSequential
	})

	if len(unique) > domain.MaxItineraries {
		unique = unique[:domain.MaxItineraries]
	}

	return unique
}
