package build_itineraries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

type fakeSnapshots struct {
	snapshots map[int64]scheduling.DaySnapshot
	calls     int
}

func (f *fakeSnapshots) LoadDay(_ context.Context, _ int64, _ time.Time, _ []int64) (map[int64]scheduling.DaySnapshot, error) {
	f.calls++
	return f.snapshots, nil
}

type fakeCatalog struct {
	services []catalogservice.Service
	err      error
	calls    int
}

func (f *fakeCatalog) GetServices(_ context.Context, _ int64, _ []int64) ([]catalogservice.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

type fakeStations struct {
	byType map[string][]int64
	calls  int
}

func (f *fakeStations) GetActiveByTypes(_ context.Context, _ int64, _ []string) (map[string][]int64, error) {
	f.calls++
	return f.byType, nil
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

func monday() time.Time {
	return time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
}

// daySnapshot мастер работает 09:00-10:00, блок 30 минут
func daySnapshot(profID int64) scheduling.DaySnapshot {
	return scheduling.DaySnapshot{
		ProfessionalID:   profID,
		Date:             monday(),
		BlockSizeMinutes: 30,
		WorkingWindows: []domain.WorkingWindow{
			{ProfessionalID: profID, DayOfWeek: time.Monday, Start: "09:00", End: "10:00"},
		},
	}
}

func catalogService(id int64, name string, duration int, parallelizable bool, maxPros int, qualified ...int64) catalogservice.Service {
	return catalogservice.Service{
		ID:                       id,
		Name:                     name,
		DurationMinutes:          duration,
		Parallelizable:           parallelizable,
		MaxParallelProfessionals: maxPros,
		QualifiedProfessionalIDs: qualified,
		Price:                    100,
	}
}

func TestExecute_TwoParallelizableServicesTwoProfessionals(t *testing.T) {
	snapshots := &fakeSnapshots{snapshots: map[int64]scheduling.DaySnapshot{
		10: daySnapshot(10),
		11: daySnapshot(11),
	}}
	catalog := &fakeCatalog{services: []catalogservice.Service{
		catalogService(1, "Haircut", 60, true, 2, 10, 11),
		catalogService(2, "Manicure", 30, true, 2, 10, 11),
	}}
	uc := NewUseCase(snapshots, catalog, &fakeStations{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             []int64{1, 2},
		ProfessionalsRequested: 2,
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Itineraries)

	first := resp.Itineraries[0]
	assert.Equal(t, string(domain.ExecutionParallel), first.ExecutionType)
	assert.Equal(t, ts(t, "09:00"), first.Start)
	assert.Equal(t, 60, first.TotalDurationMinutes, "длительность PARALLEL = max(длительностей)")
	assert.Equal(t, 200.0, first.TotalPrice)
	require.Len(t, first.Services, 2)
	assert.NotEqual(t, first.Services[0].ProfessionalID, first.Services[1].ProfessionalID)
}

func TestExecute_SingleServiceShortCircuit(t *testing.T) {
	snapshots := &fakeSnapshots{snapshots: map[int64]scheduling.DaySnapshot{
		10: daySnapshot(10),
	}}
	catalog := &fakeCatalog{services: []catalogservice.Service{
		catalogService(1, "Haircut", 60, true, 2, 10),
	}}
	stations := &fakeStations{}
	uc := NewUseCase(snapshots, catalog, stations, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             []int64{1},
		ProfessionalsRequested: 1,
	})

	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 1)
	assert.Equal(t, string(domain.ExecutionSequential), resp.Itineraries[0].ExecutionType)
	assert.Equal(t, ts(t, "09:00"), resp.Itineraries[0].Start)
	assert.Zero(t, stations.calls, "без потребности в станциях репозиторий станций не вызывается")
}

func TestExecute_RestrictProfessionalsNarrowsSearch(t *testing.T) {
	snapshots := &fakeSnapshots{snapshots: map[int64]scheduling.DaySnapshot{
		10: daySnapshot(10),
		11: daySnapshot(11),
	}}
	catalog := &fakeCatalog{services: []catalogservice.Service{
		catalogService(1, "Haircut", 60, true, 2, 10, 11),
	}}
	uc := NewUseCase(snapshots, catalog, &fakeStations{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             []int64{1},
		ProfessionalsRequested: 1,
		RestrictProfessionals:  []int64{11},
	})

	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 1)
	assert.Equal(t, int64(11), resp.Itineraries[0].Services[0].ProfessionalID)
}

func TestExecute_InsufficientStationsNoItineraries(t *testing.T) {
	snap := daySnapshot(10)
	catalog := &fakeCatalog{services: []catalogservice.Service{
		{
			ID: 1, Name: "Wash", DurationMinutes: 30,
			Parallelizable: true, MaxParallelProfessionals: 2,
			StationNeeds:             map[string]int{"sink": 1},
			QualifiedProfessionalIDs: []int64{10},
			Price:                    50,
		},
	}}
	stations := &fakeStations{byType: map[string][]int64{}}
	uc := NewUseCase(&fakeSnapshots{snapshots: map[int64]scheduling.DaySnapshot{10: snap}}, catalog, stations, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             []int64{1},
		ProfessionalsRequested: 1,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Itineraries)
	assert.Equal(t, 1, stations.calls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &fakeCatalog{err: catalogservice.ErrServiceNotFound}
	uc := NewUseCase(&fakeSnapshots{}, catalog, &fakeStations{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             []int64{404},
		ProfessionalsRequested: 1,
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationBeforeCatalogCall(t *testing.T) {
	catalog := &fakeCatalog{}
	uc := NewUseCase(&fakeSnapshots{}, catalog, &fakeStations{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             []int64{1, 1},
		ProfessionalsRequested: 1,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, catalog.calls)
}

func TestExecute_TooManyServicesRejected(t *testing.T) {
	ids := make([]int64, domain.MaxServicesPerRequest+1)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	uc := NewUseCase(&fakeSnapshots{}, &fakeCatalog{}, &fakeStations{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:               1,
		Date:                   monday(),
		ServiceIDs:             ids,
		ProfessionalsRequested: 1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
