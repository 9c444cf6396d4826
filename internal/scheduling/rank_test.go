package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

func itinerary(start string, duration int, execType domain.ExecutionType, serviceIDs ...int64) domain.WizardItinerary {
	s := ts(start)
	end, _ := s.AddMinutes(duration)
	return domain.WizardItinerary{
		ID:                   domain.ItineraryID(testDate(), s, serviceIDs, execType),
		Date:                 testDate(),
		Start:                s,
		End:                  end,
		TotalDurationMinutes: duration,
		ExecutionType:        execType,
	}
}

func TestRankItineraries_DeduplicatesByID(t *testing.T) {
	// Одинаковый внешне видимый слот с разными мастерами схлопывается в один
	a := itinerary("09:00", 60, domain.ExecutionParallel, 1, 2)
	b := itinerary("09:00", 60, domain.ExecutionParallel, 2, 1) // ID сортирует услуги
	b.ServiceAssignments = []domain.ServiceAssignment{{ServiceID: 1, ProfessionalID: 99}}

	ranked := RankItineraries([]domain.WizardItinerary{a, b})

	require.Len(t, ranked, 1)
	assert.Equal(t, a.ID, ranked[0].ID)
}

func TestRankItineraries_Order(t *testing.T) {
	late := itinerary("11:00", 30, domain.ExecutionSequential, 1)
	earlyLong := itinerary("09:00", 90, domain.ExecutionSequential, 1, 2)
	earlyShortSeq := itinerary("09:00", 60, domain.ExecutionSequential, 3)
	earlyShortPar := itinerary("09:00", 60, domain.ExecutionParallel, 3, 4)

	ranked := RankItineraries([]domain.WizardItinerary{late, earlyLong, earlyShortSeq, earlyShortPar})

	require.Len(t, ranked, 4)
	// Начало по возрастанию, затем длительность, затем PARALLEL раньше SEQUENTIAL
	assert.Equal(t, earlyShortPar.ID, ranked[0].ID)
	assert.Equal(t, earlyShortSeq.ID, ranked[1].ID)
	assert.Equal(t, earlyLong.ID, ranked[2].ID)
	assert.Equal(t, late.ID, ranked[3].ID)
}

func TestRankItineraries_CapsAtTwenty(t *testing.T) {
	candidates := make([]domain.WizardItinerary, 0, 30)
	for i := 0; i < 30; i++ {
		start, err := ts("08:00").AddMinutes(i * 15)
		require.NoError(t, err)
		candidates = append(candidates, itinerary(start.String(), 30, domain.ExecutionSequential, int64(i+1)))
	}

	ranked := RankItineraries(candidates)

	assert.Len(t, ranked, domain.MaxItineraries)
	assert.Equal(t, ts("08:00"), ranked[0].Start)
}

func TestItineraryID_PureFunctionOfVisibleFields(t *testing.T) {
	id1 := domain.ItineraryID(testDate(), ts("09:00"), []int64{2, 1}, domain.ExecutionParallel)
	id2 := domain.ItineraryID(testDate(), ts("09:00"), []int64{1, 2}, domain.ExecutionParallel)
	assert.Equal(t, id1, id2, "порядок услуг не влияет на ID")

	id3 := domain.ItineraryID(testDate(), ts("09:00"), []int64{1, 2}, domain.ExecutionSequential)
	assert.NotEqual(t, id1, id3, "способ выполнения влияет на ID")

	id4 := domain.ItineraryID(testDate(), ts("09:30"), []int64{1, 2}, domain.ExecutionParallel)
	assert.NotEqual(t, id1, id4, "время начала влияет на ID")
}

func TestRankItineraries_StableForEqualKeys(t *testing.T) {
	a := itinerary("09:00", 60, domain.ExecutionSequential, 1)
	b := itinerary("09:00", 60, domain.ExecutionSequential, 2)

	ranked := RankItineraries([]domain.WizardItinerary{a, b})

	require.Len(t, ranked, 2)
	assert.Equal(t, a.ID, ranked[0].ID, fmt.Sprintf("ожидался стабильный порядок: %s первым", a.ID))
}
