package get_service_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	catalogClient "github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// UseCase use case для получения окон, в которые помещается услуга,
// по дням месяца для одного мастера
type UseCase struct {
	snapshots     SnapshotService
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	snapshots SnapshotService,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		snapshots:     snapshots,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case поиска окон для услуги на месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetServiceAvailability: tenant=%d, professional=%d, service=%d, period=%04d-%02d",
		req.TenantID, req.ProfessionalID, req.ServiceID, req.Year, req.Month)

	// 1. Валидация входных данных - до любых обращений к каталогу и хранилищам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetServiceAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetServiceAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetServiceAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Мастер без квалификации по услуге - пустой результат, не ошибка
	if !qualified(service, req.ProfessionalID) {
		uc.logger.Info("GetServiceAvailability: professional=%d is not qualified for service=%d",
			req.ProfessionalID, req.ServiceID)
		return emptyResponse(req), nil
	}

	// 4. Собираем данные месяца bulk-запросами
	startDate := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	snapshots, err := uc.snapshots.LoadPeriod(ctx, req.TenantID, startDate, endDate, []int64{req.ProfessionalID})
	if err != nil {
		uc.logger.Error("GetServiceAvailability: failed to load period: %v", err)
		return nil, fmt.Errorf("%w: failed to load period snapshots: %v", ErrInternal, err)
	}

	// 5. Для каждого дня: блоки -> непрерывные окна нужной длительности.
	// В ответ попадают только дни, где есть хотя бы одно окно
	days := make([]DayWindows, 0)
	profDays := snapshots[req.ProfessionalID]
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		key := date.Format(domain.DateFormat)
		snap := profDays[key]

		blocks := scheduling.GenerateDaySlots(snap, req.ExcludeClientID)
		windows := scheduling.FindContiguousWindows(blocks, service.DurationMinutes, snap.BlockSizeMinutes)
		if len(windows) == 0 {
			continue
		}

		dw := DayWindows{Date: key, Windows: make([]Window, 0, len(windows))}
		for _, w := range windows {
			dw.Windows = append(dw.Windows, Window{Start: w.Start, End: w.End})
		}
		days = append(days, dw)
	}

	uc.logger.Info("GetServiceAvailability: %d days with windows for professional=%d, service=%d, period=%04d-%02d",
		len(days), req.ProfessionalID, req.ServiceID, req.Year, req.Month)

	resp := emptyResponse(req)
	resp.Days = days
	return resp, nil
}

func qualified(service *catalogClient.Service, professionalID int64) bool {
	for _, id := range service.QualifiedProfessionalIDs {
		if id == professionalID {
			return true
		}
	}
	return false
}

func emptyResponse(req *Request) *Response {
	return &Response{
		TenantID:       req.TenantID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Year:           req.Year,
		Month:          req.Month,
		Days:           []DayWindows{},
	}
}
