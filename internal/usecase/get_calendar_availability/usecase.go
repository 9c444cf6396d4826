package get_calendar_availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// UseCase use case помесячной доступности мастера
//
// Грубая проверка "есть ли в принципе смысл открывать этот день":
// данные месяца выбираются несколькими bulk-запросами и группируются
// в памяти, после чего к каждому дню применяется намеренно грубая
// эвристика. Результат НЕ гарантирует реальную емкость дня - перед
// бронированием клиент обязан перепроверить слоты полным расчетом
type UseCase struct {
	snapshots SnapshotService
	cache     MonthCache
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil - тогда каждый запрос считается заново
func NewUseCase(snapshots SnapshotService, cache MonthCache, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		cache:     cache,
		logger:    logger,
	}
}

// Execute выполняет use case помесячной доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarAvailability: tenant=%d, professional=%d, period=%04d-%02d",
		req.TenantID, req.ProfessionalID, req.Year, req.Month)

	// 1. Валидация входных данных - до любых обращений к кэшу и хранилищам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кэш; ошибки кэша не фатальны - пересчитываем заново
	if uc.cache != nil {
		if days, err := uc.cache.Get(ctx, req.TenantID, req.ProfessionalID, req.Year, req.Month); err == nil {
			uc.logger.Info("GetCalendarAvailability: cache hit for professional=%d, period=%04d-%02d",
				req.ProfessionalID, req.Year, req.Month)
			return buildResponse(req, days), nil
		} else {
			uc.logger.Warn("GetCalendarAvailability: cache get failed: %v", err)
		}
	}

	// 3. Собираем данные месяца bulk-запросами
	startDate := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	snapshots, err := uc.snapshots.LoadPeriod(ctx, req.TenantID, startDate, endDate, []int64{req.ProfessionalID})
	if err != nil {
		uc.logger.Error("GetCalendarAvailability: failed to load period: %v", err)
		return nil, fmt.Errorf("%w: failed to load period snapshots: %v", ErrInternal, err)
	}

	// 4. Применяем грубую эвристику к каждому дню
	// Ошибка обработки одного дня опускает этот день, не ломая весь ответ
	days := make(map[string]bool)
	profDays := snapshots[req.ProfessionalID]
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		key := date.Format(domain.DateFormat)
		available, err := dayPotentiallyAvailable(date, profDays[key])
		if err != nil {
			uc.logger.Warn("GetCalendarAvailability: skipping date=%s: %v", key, err)
			continue
		}
		days[key] = available
	}

	// 5. Сохраняем в кэш; ошибки только логируем
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.TenantID, req.ProfessionalID, req.Year, req.Month, days); err != nil {
			uc.logger.Warn("GetCalendarAvailability: cache set failed: %v", err)
		}
	}

	uc.logger.Info("GetCalendarAvailability: computed %d days for professional=%d, period=%04d-%02d",
		len(days), req.ProfessionalID, req.Year, req.Month)

	return buildResponse(req, days), nil
}

// dayPotentiallyAvailable грубая эвристика доступности дня:
// любой день, кроме воскресенья, считается потенциально доступным.
// Реальная емкость дня НЕ проверяется - это документированное
// ограничение, менять которое можно только вместе с продуктом
func dayPotentiallyAvailable(date time.Time, _ scheduling.DaySnapshot) (bool, error) {
	return date.Weekday() != time.Sunday, nil
}

func buildResponse(req *Request, days map[string]bool) *Response {
	result := make([]DayAvailability, 0, len(days))
	for date, available := range days {
		result = append(result, DayAvailability{Date: date, Available: available})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })

	return &Response{
		TenantID:       req.TenantID,
		ProfessionalID: req.ProfessionalID,
		Year:           req.Year,
		Month:          req.Month,
		Days:           result,
	}
}
