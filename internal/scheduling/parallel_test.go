package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

func availableBlocks(times ...string) []domain.TimeBlock {
	blocks := make([]domain.TimeBlock, 0, len(times))
	for _, start := range times {
		s := ts(start)
		end, _ := s.AddMinutes(30)
		blocks = append(blocks, domain.TimeBlock{Start: s, End: end, Available: true})
	}
	return blocks
}

func TestBuildParallelItineraries_TwoServicesTwoProfessionals(t *testing.T) {
	// Обе услуги параллелизуемы, оба мастера свободны 09:00-10:00:
	// маршрут PARALLEL на 09:00 с totalDuration = max(длительностей)
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Haircut", 60, true, 2, 10),
			req(2, "Manicure", 30, true, 2, 11),
		},
		ProfessionalIDs: []int64{10, 11},
		ExecutionType:   domain.ExecutionParallel,
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00", "09:30"),
		11: availableBlocks("09:00", "09:30"),
	}

	itineraries := BuildParallelItineraries(combo, testDate(), slots)

	require.Len(t, itineraries, 1)
	it := itineraries[0]
	assert.Equal(t, ts("09:00"), it.Start)
	assert.Equal(t, ts("10:00"), it.End)
	assert.Equal(t, 60, it.TotalDurationMinutes)
	assert.Equal(t, 200.0, it.TotalPrice)
	assert.Equal(t, domain.ExecutionParallel, it.ExecutionType)

	require.Len(t, it.ServiceAssignments, 2)
	// Каждой услуге - свой квалифицированный мастер
	assert.Equal(t, int64(10), it.ServiceAssignments[0].ProfessionalID)
	assert.Equal(t, int64(11), it.ServiceAssignments[1].ProfessionalID)
	// Услуги стартуют одновременно
	assert.Equal(t, ts("09:00"), it.ServiceAssignments[0].Start)
	assert.Equal(t, ts("10:00"), it.ServiceAssignments[0].End)
	assert.Equal(t, ts("09:00"), it.ServiceAssignments[1].Start)
	assert.Equal(t, ts("09:30"), it.ServiceAssignments[1].End)
}

func TestBuildParallelItineraries_ExtensionFailsWhenSecondProfessionalBusy(t *testing.T) {
	// У второго мастера нет блока 09:30: окно 09:00 нарастить нельзя
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Haircut", 60, true, 2, 10),
			req(2, "Manicure", 60, true, 2, 11),
		},
		ProfessionalIDs: []int64{10, 11},
		ExecutionType:   domain.ExecutionParallel,
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00", "09:30"),
		11: availableBlocks("09:00", "10:00"),
	}

	itineraries := BuildParallelItineraries(combo, testDate(), slots)

	assert.Empty(t, itineraries)
}

func TestBuildParallelItineraries_MultipleStartingPoints(t *testing.T) {
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Haircut", 30, true, 2, 10),
			req(2, "Manicure", 30, true, 2, 11),
		},
		ProfessionalIDs: []int64{10, 11},
		ExecutionType:   domain.ExecutionParallel,
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00", "09:30", "10:00"),
		11: availableBlocks("09:30", "10:00"),
	}

	itineraries := BuildParallelItineraries(combo, testDate(), slots)

	// Одновременно свободны только 09:30 и 10:00
	require.Len(t, itineraries, 2)
	assert.Equal(t, ts("09:30"), itineraries[0].Start)
	assert.Equal(t, ts("10:00"), itineraries[1].Start)
}

func TestBuildParallelItineraries_StationAssignedExclusively(t *testing.T) {
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Haircut", 30, true, 2, 10),
			req(2, "Coloring", 30, true, 2, 11),
		},
		ProfessionalIDs:   []int64{10, 11},
		StationAssignment: map[string][]int64{"chair": {500}},
		ExecutionType:     domain.ExecutionParallel,
	}
	combo.Services[0].StationNeeds = map[string]int{"chair": 1}
	combo.Services[1].StationNeeds = map[string]int{"chair": 1}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00"),
		11: availableBlocks("09:00"),
	}

	itineraries := BuildParallelItineraries(combo, testDate(), slots)

	require.Len(t, itineraries, 1)
	assignments := itineraries[0].ServiceAssignments
	require.NotNil(t, assignments[0].StationID)
	assert.Equal(t, int64(500), *assignments[0].StationID)
	// Пул типа исчерпан внутри маршрута: вторая услуга остается без станции
	assert.Nil(t, assignments[1].StationID)
}

func TestAssignProfessionals_FallbackPasses(t *testing.T) {
	// Оба сервиса квалифицирует только мастер 10:
	// второй проход переиспользует уже занятого мастера
	services := []domain.ServiceRequirement{
		req(1, "Haircut", 30, true, 2, 10),
		req(2, "Coloring", 30, true, 2, 10),
	}

	result := assignProfessionals(services, []int64{10, 11})

	assert.Equal(t, []int64{10, 10}, result)
}

func TestAssignProfessionals_RoundRobinLastResort(t *testing.T) {
	// Никто не квалифицирован: назначение по круговому индексу
	services := []domain.ServiceRequirement{
		req(1, "Haircut", 30, true, 2),
		req(2, "Coloring", 30, true, 2),
		req(3, "Massage", 30, true, 2),
	}

	result := assignProfessionals(services, []int64{10, 11})

	assert.Equal(t, []int64{10, 11, 10}, result)
}

func TestBuildParallelItineraries_WrongCombinationShape(t *testing.T) {
	seq := domain.ResourceCombination{
		Services:        []domain.ServiceRequirement{req(1, "Haircut", 30, true, 2, 10)},
		ProfessionalIDs: []int64{10},
		ExecutionType:   domain.ExecutionSequential,
	}
	assert.Empty(t, BuildParallelItineraries(seq, testDate(), nil))
}
