package get_daily_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

type fakeSnapshots struct {
	snapshots map[int64]scheduling.DaySnapshot
	err       error
	calls     int
}

func (f *fakeSnapshots) LoadDay(_ context.Context, _ int64, _ time.Time, _ []int64) (map[int64]scheduling.DaySnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshots, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func TestExecute_ReturnsBlocks(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC) // понедельник
	snapshots := &fakeSnapshots{
		snapshots: map[int64]scheduling.DaySnapshot{
			10: {
				ProfessionalID:   10,
				Date:             date,
				BlockSizeMinutes: 30,
				WorkingWindows: []domain.WorkingWindow{
					{ProfessionalID: 10, DayOfWeek: time.Monday, Start: ts(t, "09:00"), End: ts(t, "10:00")},
				},
			},
		},
	}
	uc := NewUseCase(snapshots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		Date:           date,
	})

	require.NoError(t, err)
	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, ts(t, "09:00"), resp.Blocks[0].Start)
	assert.True(t, resp.Blocks[0].Available)
	assert.True(t, resp.Blocks[1].Available)
}

func TestExecute_UnknownProfessionalYieldsEmptyList(t *testing.T) {
	snapshots := &fakeSnapshots{snapshots: map[int64]scheduling.DaySnapshot{}}
	uc := NewUseCase(snapshots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 99,
		Date:           time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
}

func TestExecute_RejectsOutOfRangeYearBeforeAnyIO(t *testing.T) {
	snapshots := &fakeSnapshots{}
	uc := NewUseCase(snapshots, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		Date:           time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, snapshots.calls, "хранилища не должны вызываться при невалидном запросе")
}

func TestExecute_RejectsNonPositiveIDs(t *testing.T) {
	uc := NewUseCase(&fakeSnapshots{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       0,
		ProfessionalID: 10,
		Date:           time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
