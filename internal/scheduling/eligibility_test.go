package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

func TestFilterEligible_IntersectsQualificationWithAvailability(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10, 11, 12),
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00"),
		11: {{Start: ts("09:00"), End: ts("09:30"), Available: false}},
		// Мастер 12 без блоков вообще
	}

	eligible := FilterEligible(requirements, slots, nil)

	require.Contains(t, eligible, int64(1))
	assert.Equal(t, []int64{10}, eligible[1])
}

func TestFilterEligible_RestrictToSubset(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10, 11),
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00"),
		11: availableBlocks("09:00"),
	}

	eligible := FilterEligible(requirements, slots, []int64{11})

	assert.Equal(t, []int64{11}, eligible[1])
}

func TestFilterEligible_UnqualifiedNeverEligible(t *testing.T) {
	requirements := []domain.ServiceRequirement{
		req(1, "Haircut", 60, true, 2, 10),
	}
	slots := map[int64][]domain.TimeBlock{
		10: availableBlocks("09:00"),
		99: availableBlocks("09:00"),
	}

	eligible := FilterEligible(requirements, slots, nil)

	assert.Equal(t, []int64{10}, eligible[1])
}
