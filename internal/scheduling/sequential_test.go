package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

func TestReorderHairFirst(t *testing.T) {
	services := []domain.ServiceRequirement{
		req(1, "Manicure", 30, true, 1, 10),
		req(2, "Haircut", 60, true, 1, 10),
		req(3, "Massage", 45, true, 1, 10),
		req(4, "Root Color", 90, true, 1, 10),
	}

	ordered := ReorderHairFirst(services)

	// Парикмахерские услуги первыми, относительный порядок групп сохранен
	require.Len(t, ordered, 4)
	assert.Equal(t, int64(2), ordered[0].ServiceID)
	assert.Equal(t, int64(4), ordered[1].ServiceID)
	assert.Equal(t, int64(1), ordered[2].ServiceID)
	assert.Equal(t, int64(3), ordered[3].ServiceID)
}

func TestBuildSequentialItineraries_ChainsBackToBack(t *testing.T) {
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Manicure", 30, true, 1, 10),
			req(2, "Haircut", 60, true, 1, 10),
		},
		ProfessionalIDs: []int64{10},
		ExecutionType:   domain.ExecutionSequential,
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00", "09:30", "10:00", "10:30"),
	}

	itineraries := BuildSequentialItineraries(combo, testDate(), slots, 30)

	// Окна на 90 минут: 09:00 и 09:30
	require.Len(t, itineraries, 2)
	it := itineraries[0]
	assert.Equal(t, ts("09:00"), it.Start)
	assert.Equal(t, ts("10:30"), it.End)
	assert.Equal(t, 90, it.TotalDurationMinutes)
	assert.Equal(t, 200.0, it.TotalPrice)

	// Haircut переставлен первым, услуги идут встык
	require.Len(t, it.ServiceAssignments, 2)
	assert.Equal(t, int64(2), it.ServiceAssignments[0].ServiceID)
	assert.Equal(t, ts("09:00"), it.ServiceAssignments[0].Start)
	assert.Equal(t, ts("10:00"), it.ServiceAssignments[0].End)
	assert.Equal(t, int64(1), it.ServiceAssignments[1].ServiceID)
	assert.Equal(t, ts("10:00"), it.ServiceAssignments[1].Start)
	assert.Equal(t, ts("10:30"), it.ServiceAssignments[1].End)
}

func TestBuildSequentialItineraries_MixedQualificationPair(t *testing.T) {
	// Окно ищется у основного мастера; услуга без его квалификации
	// назначается второму квалифицированному мастеру комбинации
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Haircut", 30, true, 1, 10),
			req(2, "Manicure", 30, true, 1, 11),
		},
		ProfessionalIDs: []int64{10, 11},
		ExecutionType:   domain.ExecutionSequential,
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00", "09:30"),
		11: {},
	}

	itineraries := BuildSequentialItineraries(combo, testDate(), slots, 30)

	require.Len(t, itineraries, 1)
	assignments := itineraries[0].ServiceAssignments
	assert.Equal(t, int64(10), assignments[0].ProfessionalID)
	assert.Equal(t, int64(11), assignments[1].ProfessionalID)
}

func TestBuildSequentialItineraries_NoWindowNoItinerary(t *testing.T) {
	combo := domain.ResourceCombination{
		Services: []domain.ServiceRequirement{
			req(1, "Haircut", 60, true, 1, 10),
		},
		ProfessionalIDs: []int64{10},
		ExecutionType:   domain.ExecutionSequential,
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00"),
	}

	assert.Empty(t, BuildSequentialItineraries(combo, testDate(), slots, 30))
}
