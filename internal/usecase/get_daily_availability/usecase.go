package get_daily_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// UseCase use case для получения поблочной доступности мастера на дату
type UseCase struct {
	snapshots SnapshotService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(snapshots SnapshotService, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute выполняет use case получения блоков дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDailyAvailability: tenant=%d, professional=%d, date=%s",
		req.TenantID, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных - до любых обращений к хранилищам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDailyAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем снимок календаря мастера
	snapshots, err := uc.snapshots.LoadDay(ctx, req.TenantID, req.Date, []int64{req.ProfessionalID})
	if err != nil {
		uc.logger.Error("GetDailyAvailability: failed to load snapshot for professional=%d: %v",
			req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
	}

	// 3. Генерируем блоки дня
	// Неизвестный мастер дает пустой снимок без рабочих окон - и пустой список блоков
	slots := scheduling.GenerateDaySlots(snapshots[req.ProfessionalID], req.ExcludeClientID)

	blocks := make([]Block, 0, len(slots))
	for _, s := range slots {
		blocks = append(blocks, Block{
			Start:                 s.Start,
			End:                   s.End,
			Available:             s.Available,
			BlockingAppointmentID: s.BlockingAppointmentID,
		})
	}

	uc.logger.Info("GetDailyAvailability: generated %d blocks for professional=%d, date=%s",
		len(blocks), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		TenantID:       req.TenantID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Blocks:         blocks,
	}, nil
}
