package get_service_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

type fakeSnapshots struct {
	snapshots map[int64]map[string]scheduling.DaySnapshot
	calls     int
}

func (f *fakeSnapshots) LoadPeriod(_ context.Context, _ int64, _, _ time.Time, _ []int64) (map[int64]map[string]scheduling.DaySnapshot, error) {
	f.calls++
	return f.snapshots, nil
}

type fakeCatalog struct {
	service *catalogservice.Service
	err     error
	calls   int
}

func (f *fakeCatalog) GetService(_ context.Context, _ int64, _ int64) (*catalogservice.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monthSnapshots мастер работает 09:00-10:30 по понедельникам, блок 30 минут.
// Март 2026: понедельники 2, 9, 16, 23, 30
func monthSnapshots(profID int64) map[int64]map[string]scheduling.DaySnapshot {
	days := make(map[string]scheduling.DaySnapshot)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		snap := scheduling.DaySnapshot{
			ProfessionalID:   profID,
			Date:             date,
			BlockSizeMinutes: 30,
		}
		if date.Weekday() == time.Monday {
			snap.WorkingWindows = []domain.WorkingWindow{
				{ProfessionalID: profID, DayOfWeek: time.Monday, Start: "09:00", End: "10:30"},
			}
		}
		days[date.Format(domain.DateFormat)] = snap
	}

	return map[int64]map[string]scheduling.DaySnapshot{profID: days}
}

func manicure(qualified ...int64) *catalogservice.Service {
	return &catalogservice.Service{
		ID:                       7,
		TenantID:                 1,
		Name:                     "Маникюр",
		DurationMinutes:          60,
		QualifiedProfessionalIDs: qualified,
		IsActive:                 true,
	}
}

func TestExecute_WindowsOnWorkingDaysOnly(t *testing.T) {
	snapshots := &fakeSnapshots{snapshots: monthSnapshots(10)}
	catalog := &fakeCatalog{service: manicure(10, 11)}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		ServiceID:      7,
		Year:           2026,
		Month:          3,
	})
	require.NoError(t, err)

	// Пять понедельников марта, остальные дни без окон опущены
	require.Len(t, resp.Days, 5)
	assert.Equal(t, "2026-03-02", resp.Days[0].Date)
	assert.Equal(t, "2026-03-30", resp.Days[4].Date)

	// 09:00-10:30 с блоком 30 минут дает два старта для часовой услуги
	for _, day := range resp.Days {
		require.Len(t, day.Windows, 2)
		assert.Equal(t, "09:00", day.Windows[0].Start.String())
		assert.Equal(t, "10:00", day.Windows[0].End.String())
		assert.Equal(t, "09:30", day.Windows[1].Start.String())
		assert.Equal(t, "10:30", day.Windows[1].End.String())
	}
}

func TestExecute_BookedDayDropsOut(t *testing.T) {
	snaps := monthSnapshots(10)
	booked := snaps[10]["2026-03-09"]
	booked.Appointments = []domain.BookedAppointment{
		{
			ID:             500,
			ProfessionalID: 10,
			ClientID:       42,
			Date:           time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			Start:          "09:00",
			End:            "10:30",
			Status:         domain.StatusConfirmed,
		},
	}
	snaps[10]["2026-03-09"] = booked

	snapshots := &fakeSnapshots{snapshots: snaps}
	catalog := &fakeCatalog{service: manicure(10)}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		ServiceID:      7,
		Year:           2026,
		Month:          3,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 4)
	for _, day := range resp.Days {
		assert.NotEqual(t, "2026-03-09", day.Date)
	}
}

func TestExecute_ExcludeClientFreesOwnBookings(t *testing.T) {
	snaps := monthSnapshots(10)
	booked := snaps[10]["2026-03-09"]
	booked.Appointments = []domain.BookedAppointment{
		{
			ID:             500,
			ProfessionalID: 10,
			ClientID:       42,
			Date:           time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			Start:          "09:00",
			End:            "10:30",
			Status:         domain.StatusConfirmed,
		},
	}
	snaps[10]["2026-03-09"] = booked

	snapshots := &fakeSnapshots{snapshots: snaps}
	catalog := &fakeCatalog{service: manicure(10)}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	excl := int64(42)
	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:        1,
		ProfessionalID:  10,
		ServiceID:       7,
		Year:            2026,
		Month:           3,
		ExcludeClientID: &excl,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 5, "own bookings must not block the client's slots")
}

func TestExecute_UnqualifiedProfessionalYieldsEmptyResponse(t *testing.T) {
	snapshots := &fakeSnapshots{}
	catalog := &fakeCatalog{service: manicure(10, 11)}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 99,
		ServiceID:      7,
		Year:           2026,
		Month:          3,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.Equal(t, 0, snapshots.calls, "snapshots should not be loaded for an unqualified professional")
}

func TestExecute_ServiceNotFound(t *testing.T) {
	snapshots := &fakeSnapshots{}
	catalog := &fakeCatalog{err: catalogservice.ErrServiceNotFound}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		ServiceID:      7,
		Year:           2026,
		Month:          3,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationBeforeCatalogCall(t *testing.T) {
	snapshots := &fakeSnapshots{}
	catalog := &fakeCatalog{service: manicure(10)}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		ServiceID:      0,
		Year:           2026,
		Month:          3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, catalog.calls)
}

func TestExecute_PeriodOutOfRangeRejectedBeforeIO(t *testing.T) {
	snapshots := &fakeSnapshots{}
	catalog := &fakeCatalog{service: manicure(10)}

	uc := NewUseCase(snapshots, catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		ServiceID:      7,
		Year:           2019,
		Month:          5,
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Equal(t, 0, catalog.calls)
	assert.Equal(t, 0, snapshots.calls)

	_, err = uc.Execute(context.Background(), &Request{
		TenantID:       1,
		ProfessionalID: 10,
		ServiceID:      7,
		Year:           2026,
		Month:          13,
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
