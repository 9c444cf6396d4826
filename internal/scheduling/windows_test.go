package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

func TestFindContiguousWindows_SixtyMinuteService(t *testing.T) {
	// Мастер 09:00-12:00, перерыв 10:00-10:30, услуга 60 минут:
	// окна 09:00 и 11:00; НЕ 09:30 (второй блок - перерыв)
	// и НЕ 11:30 (вышло бы за конец рабочего окна)
	snap := baseSnapshot()
	snap.Breaks = []domain.BreakWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("10:00"), End: ts("10:30")},
	}
	blocks := GenerateDaySlots(snap, nil)

	windows := FindContiguousWindows(blocks, 60, 30)

	require.Len(t, windows, 2)
	assert.Equal(t, ts("09:00"), windows[0].Start)
	assert.Equal(t, ts("10:00"), windows[0].End)
	assert.Equal(t, ts("11:00"), windows[1].Start)
	assert.Equal(t, ts("12:00"), windows[1].End)
}

func TestFindContiguousWindows_AllStartingPositions(t *testing.T) {
	// Без перерывов возвращаются все валидные стартовые позиции, не только первая
	blocks := GenerateDaySlots(baseSnapshot(), nil)

	windows := FindContiguousWindows(blocks, 60, 30)

	require.Len(t, windows, 5)
	assert.Equal(t, ts("09:00"), windows[0].Start)
	assert.Equal(t, ts("09:30"), windows[1].Start)
	assert.Equal(t, ts("11:00"), windows[4].Start)
}

func TestFindContiguousWindows_GapBetweenWorkingWindows(t *testing.T) {
	// Два рабочих окна с разрывом: окно услуги не может перешагнуть разрыв
	snap := baseSnapshot()
	snap.WorkingWindows = []domain.WorkingWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("09:00"), End: ts("09:30")},
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("10:00"), End: ts("10:30")},
	}
	blocks := GenerateDaySlots(snap, nil)
	require.Len(t, blocks, 2)

	windows := FindContiguousWindows(blocks, 60, 30)

	assert.Empty(t, windows)
}

func TestFindContiguousWindows_NoGapInReturnedWindows(t *testing.T) {
	snap := baseSnapshot()
	snap.WorkingWindows = []domain.WorkingWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("09:00"), End: ts("10:00")},
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("10:00"), End: ts("11:00")},
	}
	blocks := GenerateDaySlots(snap, nil)

	// Смежные рабочие окна образуют непрерывную сетку - окно на 90 минут находится
	windows := FindContiguousWindows(blocks, 90, 30)

	require.NotEmpty(t, windows)
	assert.Equal(t, ts("09:00"), windows[0].Start)
	assert.Equal(t, ts("10:30"), windows[0].End)
}

func TestFindContiguousWindows_DurationRoundedUpToBlocks(t *testing.T) {
	blocks := GenerateDaySlots(baseSnapshot(), nil)

	// 45 минут требуют 2 блока; конец окна = старт + 45 минут
	windows := FindContiguousWindows(blocks, 45, 30)

	require.NotEmpty(t, windows)
	assert.Equal(t, ts("09:00"), windows[0].Start)
	assert.Equal(t, ts("09:45"), windows[0].End)
}

func TestFindContiguousWindows_EmptyAndInvalidInput(t *testing.T) {
	assert.Empty(t, FindContiguousWindows(nil, 60, 30))
	assert.Empty(t, FindContiguousWindows([]domain.TimeBlock{}, 60, 30))

	blocks := GenerateDaySlots(baseSnapshot(), nil)
	assert.Empty(t, FindContiguousWindows(blocks, 0, 30))
	assert.Empty(t, FindContiguousWindows(blocks, 60, 0))
	// Услуга длиннее всего дня
	assert.Empty(t, FindContiguousWindows(blocks, 240, 30))
}
