package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

func req(id int64, name string, duration int, parallelizable bool, maxPros int, qualified ...int64) domain.ServiceRequirement {
	return domain.ServiceRequirement{
		ServiceID:                id,
		Name:                     name,
		DurationMinutes:          duration,
		Parallelizable:           parallelizable,
		MaxParallelProfessionals: maxPros,
		QualifiedProfessionalIDs: qualified,
		Price:                    100,
	}
}

func TestGenerateCombinations_SingleProfessional(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10, 11),
		req(2, "Manicure", 30, true, 2, 10),
	}
	eligible := map[int64][]int64{1: {10, 11}, 2: {10}}

	combos := GenerateCombinations(requirements, eligible, nil, 1)

	// Только мастер 10 покрывает обе услуги
	require.Len(t, combos, 1)
	assert.Equal(t, []int64{10}, combos[0].ProfessionalIDs)
	assert.Equal(t, domain.ExecutionSequential, combos[0].ExecutionType)
}

func TestGenerateCombinations_PairsSequentialWhenNotParallelizable(t *testing.T) {
	// maxParallelPros == 1: пары с объединенным покрытием, но выполнение SEQUENTIAL
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 1, 10),
		req(2, "Manicure", 30, true, 2, 11),
	}
	eligible := map[int64][]int64{1: {10}, 2: {11}}

	combos := GenerateCombinations(requirements, eligible, nil, 2)

	require.Len(t, combos, 1)
	assert.Equal(t, []int64{10, 11}, combos[0].ProfessionalIDs)
	assert.Equal(t, domain.ExecutionSequential, combos[0].ExecutionType)
}

func TestGenerateCombinations_PairsParallel(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10, 11),
		req(2, "Manicure", 30, true, 2, 10, 11),
	}
	eligible := map[int64][]int64{1: {10, 11}, 2: {10, 11}}

	combos := GenerateCombinations(requirements, eligible, nil, 2)

	require.Len(t, combos, 1)
	assert.Equal(t, []int64{10, 11}, combos[0].ProfessionalIDs)
	assert.Equal(t, domain.ExecutionParallel, combos[0].ExecutionType)
}

func TestGenerateCombinations_NonParallelizableServiceBlocksPairs(t *testing.T) {
	// Одна услуга не параллелизуема при maxParallelPros >= 2:
	// по документированным правилам пары не генерируются
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, false, 2, 10),
		req(2, "Manicure", 30, true, 2, 11),
	}
	eligible := map[int64][]int64{1: {10}, 2: {11}}

	combos := GenerateCombinations(requirements, eligible, nil, 2)

	assert.Empty(t, combos)
}

func TestGenerateCombinations_StationSizingUsesMaxNotSum(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10),
		req(2, "Coloring", 90, true, 2, 10),
	}
	requirements[0].StationNeeds = map[string]int{"chair": 1}
	requirements[1].StationNeeds = map[string]int{"chair": 1}
	eligible := map[int64][]int64{1: {10}, 2: {10}}
	// Одной станции достаточно: потребность - максимум по услугам, не сумма
	stations := map[string][]int64{"chair": {500}}

	combos := GenerateCombinations(requirements, eligible, stations, 1)

	require.Len(t, combos, 1)
	assert.Equal(t, []int64{500}, combos[0].StationAssignment["chair"])
}

func TestGenerateCombinations_InsufficientStationsDiscards(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10),
	}
	requirements[0].StationNeeds = map[string]int{"chair": 2}
	eligible := map[int64][]int64{1: {10}}
	stations := map[string][]int64{"chair": {500}}

	combos := GenerateCombinations(requirements, eligible, stations, 1)

	assert.Empty(t, combos)
}

func TestGenerateCombinations_PairRequiresCombinedCoverage(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 1, 10),
		req(2, "Manicure", 30, true, 1, 11),
		req(3, "Massage", 30, true, 1, 12),
	}
	eligible := map[int64][]int64{1: {10}, 2: {11}, 3: {12}}

	// Никакая пара не покрывает все три услуги
	combos := GenerateCombinations(requirements, eligible, nil, 2)

	assert.Empty(t, combos)
}

func TestGenerateCombinations_EmptyServices(t *testing.T) {
	assert.Empty(t, GenerateCombinations(nil, nil, nil, 1))
}
