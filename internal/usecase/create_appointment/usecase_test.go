package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	created *domain.BookedAppointment
	err     error
	calls   int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.BookedAppointment) (*domain.BookedAppointment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := *appt
	out.ID = 1001
	out.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

type fakeSnapshots struct {
	snapshots map[int64]scheduling.DaySnapshot
	calls     int
}

func (f *fakeSnapshots) LoadDay(_ context.Context, _ int64, _ time.Time, _ []int64) (map[int64]scheduling.DaySnapshot, error) {
	f.calls++
	return f.snapshots, nil
}

type fakeCatalog struct {
	service *catalogservice.Service
	err     error
	calls   int
}

func (f *fakeCatalog) GetService(_ context.Context, _, _ int64) (*catalogservice.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeCache struct {
	invalidateCalls int
	lastYear        int
	lastMonth       int
}

func (f *fakeCache) Invalidate(_ context.Context, _, _ int64, year, month int) error {
	f.invalidateCalls++
	f.lastYear = year
	f.lastMonth = month
	return nil
}

// fakeTxManager выполняет функцию на том же контексте, без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func haircut() *catalogservice.Service {
	return &catalogservice.Service{
		ID:                       1,
		Name:                     "Haircut",
		DurationMinutes:          60,
		QualifiedProfessionalIDs: []int64{10},
		Price:                    100,
	}
}

// snapshotsFreeMorning мастер работает 09:00-11:00, блок 30 минут
func snapshotsFreeMorning() *fakeSnapshots {
	return &fakeSnapshots{snapshots: map[int64]scheduling.DaySnapshot{
		10: {
			ProfessionalID:   10,
			Date:             monday(),
			BlockSizeMinutes: 30,
			WorkingWindows: []domain.WorkingWindow{
				{ProfessionalID: 10, DayOfWeek: time.Monday, Start: "09:00", End: "11:00"},
			},
		},
	}}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		TenantID:       1,
		ClientID:       100,
		ProfessionalID: 10,
		ServiceID:      1,
		Date:           monday(),
		Start:          ts(t, "09:00"),
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	cache := &fakeCache{}
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, snapshotsFreeMorning(), &fakeCatalog{service: haircut()}, cache, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, ts(t, "09:00"), resp.Start)
	assert.Equal(t, ts(t, "10:00"), resp.End, "конец = начало + длительность услуги")
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 100.0, resp.ServicePrice)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, cache.invalidateCalls)
	assert.Equal(t, 2026, cache.lastYear)
	assert.Equal(t, 3, cache.lastMonth)
}

func TestExecute_SlotNoLongerAvailable(t *testing.T) {
	// Мастер занят 09:00-10:00 уже существующей записью
	snapshots := snapshotsFreeMorning()
	snap := snapshots.snapshots[10]
	snap.Appointments = []domain.BookedAppointment{
		{ID: 500, ProfessionalID: 10, ClientID: 200, Date: monday(),
			Start: "09:00", End: "10:00", Status: domain.StatusScheduled},
	}
	snapshots.snapshots[10] = snap

	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, snapshots, &fakeCatalog{service: haircut()}, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, repo.calls, "вставка не выполняется, если слот не прошел повторную проверку")
}

func TestExecute_ConcurrentConflictMapped(t *testing.T) {
	repo := &fakeAppointmentRepo{err: appointmentRepo.ErrSlotConflict}
	cache := &fakeCache{}
	uc := NewUseCase(repo, snapshotsFreeMorning(), &fakeCatalog{service: haircut()}, cache, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Zero(t, cache.invalidateCalls, "кэш не инвалидируется при неудачной записи")
}

func TestExecute_ProfessionalNotQualified(t *testing.T) {
	service := haircut()
	service.QualifiedProfessionalIDs = []int64{11}
	snapshots := snapshotsFreeMorning()
	uc := NewUseCase(&fakeAppointmentRepo{}, snapshots, &fakeCatalog{service: service}, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	require.ErrorIs(t, err, ErrProfessionalNotQualified)
	assert.Zero(t, snapshots.calls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, snapshotsFreeMorning(), &fakeCatalog{err: catalogservice.ErrServiceNotFound}, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationBeforeCatalogCall(t *testing.T) {
	catalog := &fakeCatalog{service: haircut()}
	uc := NewUseCase(&fakeAppointmentRepo{}, snapshotsFreeMorning(), catalog, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.ClientID = 0

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, catalog.calls)
}

func TestExecute_ServiceDoesNotFitInDay(t *testing.T) {
	service := haircut()
	service.DurationMinutes = 120
	uc := NewUseCase(&fakeAppointmentRepo{}, snapshotsFreeMorning(), &fakeCatalog{service: service}, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.Start = ts(t, "23:00")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NilCacheSkipsInvalidation(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, snapshotsFreeMorning(), &fakeCatalog{service: haircut()}, nil, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ID)
}
