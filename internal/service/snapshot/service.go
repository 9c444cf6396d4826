package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/tenantconfig"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// Service собирает снимки календаря мастеров для движка расписания.
// Все данные выбираются из хранилищ в начале запроса; дальше движок
// работает с неизменяемыми снимками без обращений к БД
type Service struct {
	calendarRepo    CalendarRepository
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса снимков календаря
func NewService(
	calendarRepo CalendarRepository,
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:    calendarRepo,
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		logger:          logger,
	}
}

// BlockSize возвращает размер блока расписания для мастера с учетом
// иерархии конфигурации (мастер > салон > значение по умолчанию)
func (s *Service) BlockSize(ctx context.Context, tenantID int64, professionalID *int64) (int, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, tenantID, professionalID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultBlockSizeMinutes, nil
		}
		return 0, fmt.Errorf("%w: BlockSize - config repository error: %v", ErrInternal, err)
	}
	return config.BlockSizeMinutes, nil
}

// LoadDay собирает снимки календаря набора мастеров на одну дату.
// Данные каждого вида выбираются одним запросом на всех мастеров,
// кроме записей: выборка записей по одному мастеру позволяет репозиторию
// добавить FOR UPDATE внутри транзакции создания записи
func (s *Service) LoadDay(ctx context.Context, tenantID int64, date time.Time, professionalIDs []int64) (map[int64]scheduling.DaySnapshot, error) {
	workingWindows, err := s.calendarRepo.GetWorkingWindowsForProfessionals(ctx, professionalIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadDay - get working windows: %v", ErrInternal, err)
	}

	breakWindows, err := s.calendarRepo.GetBreakWindowsForProfessionals(ctx, professionalIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadDay - get break windows: %v", ErrInternal, err)
	}

	blockedPeriods, err := s.calendarRepo.GetBlockedPeriodsInPeriod(ctx, professionalIDs, date, date)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadDay - get blocked periods: %v", ErrInternal, err)
	}

	weekday := date.Weekday()
	snapshots := make(map[int64]scheduling.DaySnapshot, len(professionalIDs))

	for _, profID := range professionalIDs {
		blockSize, err := s.BlockSize(ctx, tenantID, &profID)
		if err != nil {
			return nil, err
		}

		appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
			ProfessionalID: profID,
			StartDate:      &date,
			EndDate:        &date,
			OnlyActive:     true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: LoadDay - get appointments for professional=%d: %v", ErrInternal, profID, err)
		}

		snap := scheduling.DaySnapshot{
			ProfessionalID:   profID,
			Date:             date,
			BlockSizeMinutes: blockSize,
		}
		for _, w := range workingWindows {
			if w.ProfessionalID == profID && w.DayOfWeek == weekday {
				snap.WorkingWindows = append(snap.WorkingWindows, w)
			}
		}
		for _, b := range breakWindows {
			if b.ProfessionalID == profID && b.DayOfWeek == weekday {
				snap.Breaks = append(snap.Breaks, b)
			}
		}
		for _, bp := range blockedPeriods {
			if bp.ProfessionalID == profID {
				snap.BlockedPeriods = append(snap.BlockedPeriods, bp)
			}
		}
		for _, a := range appointments {
			snap.Appointments = append(snap.Appointments, *a)
		}

		snapshots[profID] = snap
	}

	return snapshots, nil
}

// LoadPeriod собирает снимки календаря набора мастеров на период дат
// четырьмя bulk-запросами. Используется календарной доступностью,
// где обращение к БД на каждый день месяца недопустимо
func (s *Service) LoadPeriod(ctx context.Context, tenantID int64, startDate, endDate time.Time, professionalIDs []int64) (map[int64]map[string]scheduling.DaySnapshot, error) {
	workingWindows, err := s.calendarRepo.GetWorkingWindowsForProfessionals(ctx, professionalIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadPeriod - get working windows: %v", ErrInternal, err)
	}

	breakWindows, err := s.calendarRepo.GetBreakWindowsForProfessionals(ctx, professionalIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadPeriod - get break windows: %v", ErrInternal, err)
	}

	blockedPeriods, err := s.calendarRepo.GetBlockedPeriodsInPeriod(ctx, professionalIDs, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadPeriod - get blocked periods: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.GetForProfessionalsInPeriod(ctx, professionalIDs, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadPeriod - get appointments: %v", ErrInternal, err)
	}

	// Группируем разовые данные по мастеру и дате
	blockedByProfDate := make(map[int64]map[string][]domain.BlockedPeriod)
	for _, bp := range blockedPeriods {
		key := bp.Date.Format(domain.DateFormat)
		if blockedByProfDate[bp.ProfessionalID] == nil {
			blockedByProfDate[bp.ProfessionalID] = make(map[string][]domain.BlockedPeriod)
		}
		blockedByProfDate[bp.ProfessionalID][key] = append(blockedByProfDate[bp.ProfessionalID][key], bp)
	}

	apptsByProfDate := make(map[int64]map[string][]domain.BookedAppointment)
	for _, a := range appointments {
		key := a.Date.Format(domain.DateFormat)
		if apptsByProfDate[a.ProfessionalID] == nil {
			apptsByProfDate[a.ProfessionalID] = make(map[string][]domain.BookedAppointment)
		}
		apptsByProfDate[a.ProfessionalID][key] = append(apptsByProfDate[a.ProfessionalID][key], *a)
	}

	snapshots := make(map[int64]map[string]scheduling.DaySnapshot, len(professionalIDs))

	for _, profID := range professionalIDs {
		blockSize, err := s.BlockSize(ctx, tenantID, &profID)
		if err != nil {
			return nil, err
		}

		days := make(map[string]scheduling.DaySnapshot)
		for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
			key := date.Format(domain.DateFormat)
			weekday := date.Weekday()

			snap := scheduling.DaySnapshot{
				ProfessionalID:   profID,
				Date:             date,
				BlockSizeMinutes: blockSize,
				BlockedPeriods:   blockedByProfDate[profID][key],
				Appointments:     apptsByProfDate[profID][key],
			}
			for _, w := range workingWindows {
				if w.ProfessionalID == profID && w.DayOfWeek == weekday {
					snap.WorkingWindows = append(snap.WorkingWindows, w)
				}
			}
			for _, b := range breakWindows {
				if b.ProfessionalID == profID && b.DayOfWeek == weekday {
					snap.Breaks = append(snap.Breaks, b)
				}
			}

			days[key] = snap
		}

		snapshots[profID] = days
	}

	return snapshots, nil
}
