package scheduling

import (
	"sort"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// GenerateCombinations перечисляет допустимые комбинации
// (мастера, станции, способ выполнения) для набора услуг (CombinationGenerator)
//
// Правила:
//   - запрошен 1 мастер ИЛИ maxParallelPros == 1: одиночные комбинации для каждого
//     мастера, подходящего для ВСЕХ услуг, выполнение SEQUENTIAL
//   - запрошено >= 2 мастеров И maxParallelPros == 1: пары мастеров, чьи
//     объединенные квалификации покрывают все услуги, выполнение SEQUENTIAL
//   - запрошено >= 2 мастеров И все услуги параллелизуемы И maxParallelPros >= 2:
//     те же пары, выполнение PARALLEL
//
// Потребность в станциях каждого типа считается как МАКСИМУМ (не сумма) по услугам;
// комбинация отбрасывается, если активных станций типа не хватает
func GenerateCombinations(
	requirements []domain.ServiceRequirement,
	eligibleByService map[int64][]int64,
	stationsByType map[string][]int64,
	professionalsRequested int,
) []domain.ResourceCombination {
	if len(requirements) == 0 {
		return []domain.ResourceCombination{}
	}

	canParallel := true
	maxParallelPros := requirements[0].MaxParallelProfessionals
	for _, req := range requirements {
		if !req.Parallelizable {
			canParallel = false
		}
		if req.MaxParallelProfessionals < maxParallelPros {
			maxParallelPros = req.MaxParallelProfessionals
		}
	}

	stations, ok := assignStations(requirements, stationsByType)
	if !ok {
		return []domain.ResourceCombination{}
	}

	allProfs := orderedUnion(requirements, eligibleByService)
	combos := make([]domain.ResourceCombination, 0)

	// Одиночные комбинации: мастер покрывает все услуги сам
	if professionalsRequested == 1 || maxParallelPros == 1 {
		for _, profID := range allProfs {
			if coversAll(profID, requirements, eligibleByService) {
				combos = append(combos, newCombination(requirements, []int64{profID}, stations, domain.ExecutionSequential))
			}
		}
	}

	// Парные комбинации: объединенная квалификация пары покрывает все услуги
	if professionalsRequested >= 2 {
		var execType domain.ExecutionType
		switch {
		case maxParallelPros == 1:
			execType = domain.ExecutionSequential
		case canParallel && maxParallelPros >= 2:
			execType = domain.ExecutionParallel
		default:
			// Непараллелизуемые услуги с maxParallelPros >= 2: пар не генерируем
			return combos
		}

		for i := 0; i < len(allProfs); i++ {
			for j := i + 1; j < len(allProfs); j++ {
				if pairCovers(allProfs[i], allProfs[j], requirements, eligibleByService) {
					combos = append(combos, newCombination(
						requirements,
						[]int64{allProfs[i], allProfs[j]},
						stations,
						execType,
					))
				}
			}
		}
	}

	return combos
}

// assignStations подбирает станции под максимальную потребность каждого типа
// Возвращает false, если активных станций какого-либо типа недостаточно
func assignStations(
	requirements []domain.ServiceRequirement,
	stationsByType map[string][]int64,
) (map[string][]int64, bool) {
	needs := make(map[string]int)
	for _, req := range requirements {
		for stationType, qty := range req.StationNeeds {
			if qty > needs[stationType] {
				needs[stationType] = qty
			}
		}
	}

	assignment := make(map[string][]int64, len(needs))
	for stationType, qty := range needs {
		available := stationsByType[stationType]
		if len(available) < qty {
			return nil, false
		}
		assignment[stationType] = append([]int64(nil), available[:qty]...)
	}

	return assignment, true
}

// orderedUnion объединяет подходящих мастеров всех услуг,
// сохраняя детерминированный порядок первого появления
func orderedUnion(requirements []domain.ServiceRequirement, eligibleByService map[int64][]int64) []int64 {
	seen := make(map[int64]bool)
	union := make([]int64, 0)
	for _, req := range requirements {
		for _, profID := range eligibleByService[req.ServiceID] {
			if !seen[profID] {
				seen[profID] = true
				union = append(union, profID)
			}
		}
	}
	return union
}

func coversAll(profID int64, requirements []domain.ServiceRequirement, eligibleByService map[int64][]int64) bool {
	for _, req := range requirements {
		if !containsID(eligibleByService[req.ServiceID], profID) {
			return false
		}
	}
	return true
}

func pairCovers(p1, p2 int64, requirements []domain.ServiceRequirement, eligibleByService map[int64][]int64) bool {
	for _, req := range requirements {
		eligible := eligibleByService[req.ServiceID]
		if !containsID(eligible, p1) && !containsID(eligible, p2) {
			return false
		}
	}
	return true
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func newCombination(
	requirements []domain.ServiceRequirement,
	professionalIDs []int64,
	stations map[string][]int64,
	execType domain.ExecutionType,
) domain.ResourceCombination {
	services := make([]domain.ServiceRequirement, len(requirements))
	copy(services, requirements)

	assignment := make(map[string][]int64, len(stations))
	for stationType, ids := range stations {
		assignment[stationType] = append([]int64(nil), ids...)
	}

	return domain.ResourceCombination{
		Services:          services,
		ProfessionalIDs:   professionalIDs,
		StationAssignment: assignment,
		ExecutionType:     execType,
	}
}

// stationTypesOrdered возвращает типы станций услуги в детерминированном порядке
func stationTypesOrdered(needs map[string]int) []string {
	stationTypes := make([]string, 0, len(needs))
	for stationType := range needs {
		stationTypes = append(stationTypes, stationType)
	}
	sort.Strings(stationTypes)
	return stationTypes
}
