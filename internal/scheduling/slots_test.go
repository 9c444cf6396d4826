package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/ptr"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func testDate() time.Time {
	return time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC) // понедельник
}

func baseSnapshot() DaySnapshot {
	return DaySnapshot{
		ProfessionalID:   1,
		Date:             testDate(),
		BlockSizeMinutes: 30,
		WorkingWindows: []domain.WorkingWindow{
			{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("09:00"), End: ts("12:00")},
		},
	}
}

func TestGenerateDaySlots_WorkingWindowWithBreak(t *testing.T) {
	// Мастер работает 09:00-12:00, блок 30 минут, перерыв 10:00-10:30
	snap := baseSnapshot()
	snap.Breaks = []domain.BreakWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("10:00"), End: ts("10:30")},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 6)
	for i, slot := range slots {
		expected := i != 2 // блок 10:00-10:30 недоступен
		assert.Equal(t, expected, slot.Available, "block %s", slot.Start)
	}
	assert.Equal(t, ts("10:00"), slots[2].Start)
	assert.Equal(t, ts("10:30"), slots[2].End)
}

func TestGenerateDaySlots_BlocksAreSortedAndTiled(t *testing.T) {
	snap := baseSnapshot()
	// Окна переданы в обратном порядке
	snap.WorkingWindows = []domain.WorkingWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("14:00"), End: ts("16:00")},
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("09:00"), End: ts("11:00")},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 8)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.IsBefore(slots[i].Start), "blocks must be sorted")
		assert.False(t, domain.Overlaps(slots[i-1].Start, slots[i-1].End, slots[i].Start, slots[i].End),
			"blocks must not overlap")
	}
	// Все блоки ровно по 30 минут
	for _, slot := range slots {
		end, err := slot.Start.AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, end, slot.End)
	}
}

func TestGenerateDaySlots_TrailingPartialBlockDropped(t *testing.T) {
	snap := baseSnapshot()
	// 09:00-10:45 при блоке 30 минут: хвост 10:30-10:45 не эмитится
	snap.WorkingWindows = []domain.WorkingWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("09:00"), End: ts("10:45")},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, ts("10:30"), slots[2].End)
}

func TestGenerateDaySlots_NoWorkingWindows(t *testing.T) {
	snap := baseSnapshot()
	snap.WorkingWindows = nil
	// Перерывы и блокировки не влияют: ноль окон - ноль слотов
	snap.Breaks = []domain.BreakWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("10:00"), End: ts("10:30")},
	}

	slots := GenerateDaySlots(snap, nil)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateDaySlots_FullDayBlockVoidsDay(t *testing.T) {
	for _, kind := range []domain.BlockedPeriodKind{domain.BlockVacation, domain.BlockSickLeave, domain.BlockDayOff} {
		t.Run(string(kind), func(t *testing.T) {
			snap := baseSnapshot()
			snap.BlockedPeriods = []domain.BlockedPeriod{
				{ProfessionalID: 1, Date: testDate(), Kind: kind},
			}

			slots := GenerateDaySlots(snap, nil)

			assert.Empty(t, slots)
		})
	}
}

func TestGenerateDaySlots_PartialBlockedPeriod(t *testing.T) {
	snap := baseSnapshot()
	snap.BlockedPeriods = []domain.BlockedPeriod{
		{
			ProfessionalID: 1,
			Date:           testDate(),
			Start:          ptr.Ptr(ts("11:00")),
			End:            ptr.Ptr(ts("11:30")),
			Kind:           domain.BlockOther,
		},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 6)
	assert.False(t, slots[4].Available) // 11:00-11:30
	assert.True(t, slots[3].Available)
	assert.True(t, slots[5].Available)
}

func TestGenerateDaySlots_AppointmentBlocksAndRecordsID(t *testing.T) {
	snap := baseSnapshot()
	snap.Appointments = []domain.BookedAppointment{
		{ID: 77, ProfessionalID: 1, ClientID: 5, Date: testDate(), Start: ts("09:00"), End: ts("09:30"), Status: domain.StatusConfirmed},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 6)
	require.False(t, slots[0].Available)
	require.NotNil(t, slots[0].BlockingAppointmentID)
	assert.Equal(t, int64(77), *slots[0].BlockingAppointmentID)
	assert.True(t, slots[1].Available)
}

func TestGenerateDaySlots_ExcludeClientOwnAppointments(t *testing.T) {
	// Клиент 5 уже записан на 09:00: для него самого блок доступен,
	// для другого клиента - нет
	snap := baseSnapshot()
	snap.Appointments = []domain.BookedAppointment{
		{ID: 77, ProfessionalID: 1, ClientID: 5, Date: testDate(), Start: ts("09:00"), End: ts("09:30"), Status: domain.StatusConfirmed},
	}

	own := GenerateDaySlots(snap, ptr.Ptr(int64(5)))
	require.Len(t, own, 6)
	assert.True(t, own[0].Available)

	other := GenerateDaySlots(snap, ptr.Ptr(int64(6)))
	require.Len(t, other, 6)
	assert.False(t, other[0].Available)
}

func TestGenerateDaySlots_InactiveAppointmentDoesNotBlock(t *testing.T) {
	snap := baseSnapshot()
	snap.Appointments = []domain.BookedAppointment{
		{ID: 78, ProfessionalID: 1, ClientID: 5, Date: testDate(), Start: ts("09:00"), End: ts("09:30"), Status: domain.StatusCancelledByClient},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 6)
	assert.True(t, slots[0].Available)
}

func TestGenerateDaySlots_BreakTakesPrecedenceOverAppointment(t *testing.T) {
	// Перерыв проверяется раньше записи: ID записи не фиксируется
	snap := baseSnapshot()
	snap.Breaks = []domain.BreakWindow{
		{ProfessionalID: 1, DayOfWeek: time.Monday, Start: ts("09:00"), End: ts("09:30")},
	}
	snap.Appointments = []domain.BookedAppointment{
		{ID: 79, ProfessionalID: 1, ClientID: 5, Date: testDate(), Start: ts("09:00"), End: ts("09:30"), Status: domain.StatusConfirmed},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 6)
	assert.False(t, slots[0].Available)
	assert.Nil(t, slots[0].BlockingAppointmentID)
}

func TestGenerateDaySlots_BoundaryAppointmentDoesNotBlock(t *testing.T) {
	// Запись 09:30-10:00 граничит с блоком 09:00-09:30 - пересечения нет
	snap := baseSnapshot()
	snap.Appointments = []domain.BookedAppointment{
		{ID: 80, ProfessionalID: 1, ClientID: 5, Date: testDate(), Start: ts("09:30"), End: ts("10:00"), Status: domain.StatusConfirmed},
	}

	slots := GenerateDaySlots(snap, nil)

	require.Len(t, slots, 6)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}
