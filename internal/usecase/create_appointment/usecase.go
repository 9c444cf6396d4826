package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// UseCase use case для создания записи клиента
//
// Между показом слота клиенту и подтверждением записи проходит время,
// поэтому доступность пересчитывается заново внутри сериализуемой
// транзакции. Последняя линия защиты - exclusion constraint в БД:
// конкурирующая вставка на тот же интервал мастера возвращается
// клиенту как конфликт, а не молча перезаписывает слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	snapshots       SnapshotService
	catalogClient   CatalogServiceClient
	cache           MonthCache
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil - тогда инвалидация календарного кэша пропускается
func NewUseCase(
	appointmentRepo AppointmentRepository,
	snapshots SnapshotService,
	catalogClient CatalogServiceClient,
	cache MonthCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		snapshots:       snapshots,
		catalogClient:   catalogClient,
		cache:           cache,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, professional=%d, service=%d, date=%s, start=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Start)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем квалификацию мастера
	if !containsID(service.QualifiedProfessionalIDs, req.ProfessionalID) {
		uc.logger.Warn("CreateAppointment: professional=%d is not qualified for service=%d",
			req.ProfessionalID, req.ServiceID)
		return nil, ErrProfessionalNotQualified
	}

	end, err := req.Start.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: service does not fit in the day: start=%s, duration=%d",
			req.Start, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service does not fit in the day", ErrInvalidInput)
	}

	var result *domain.BookedAppointment

	// 4. Пересчет доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Снимок дня мастера; выборка записей внутри транзакции
		// блокирует строки дня (FOR UPDATE)
		snapshots, err := uc.snapshots.LoadDay(txCtx, req.TenantID, req.Date, []int64{req.ProfessionalID})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load snapshot: %v", err)
			return fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
		}

		// 4.2. Повторная проверка: запрошенное время должно оставаться
		// началом подходящего непрерывного окна
		snap := snapshots[req.ProfessionalID]
		blocks := scheduling.GenerateDaySlots(snap, nil)
		windows := scheduling.FindContiguousWindows(blocks, service.DurationMinutes, snap.BlockSizeMinutes)

		if !windowStartsAt(windows, req.Start) {
			uc.logger.Warn("CreateAppointment: slot %s is no longer available for professional=%d, date=%s",
				req.Start, req.ProfessionalID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 4.3. Создаем запись с денормализацией данных услуги
		appt := &domain.BookedAppointment{
			TenantID:       req.TenantID,
			ProfessionalID: req.ProfessionalID,
			ClientID:       req.ClientID,
			ServiceID:      req.ServiceID,
			StationID:      req.StationID,
			Date:           req.Date,
			Start:          req.Start,
			End:            end,
			Status:         domain.StatusScheduled,
			ServiceName:    service.Name,
			ServicePrice:   service.Price,
			Notes:          req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateAppointment: concurrent booking took the slot: %v", err)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 5. Инвалидируем календарный кэш месяца; ошибки только логируем
	if uc.cache != nil {
		year, month := req.Date.Year(), int(req.Date.Month())
		if err := uc.cache.Invalidate(ctx, req.TenantID, req.ProfessionalID, year, month); err != nil {
			uc.logger.Warn("CreateAppointment: failed to invalidate month cache: %v", err)
		}
	}

	return &Response{
		ID:             result.ID,
		TenantID:       result.TenantID,
		ClientID:       result.ClientID,
		ProfessionalID: result.ProfessionalID,
		ServiceID:      result.ServiceID,
		StationID:      result.StationID,
		Date:           result.Date,
		Start:          result.Start,
		End:            result.End,
		Status:         string(result.Status),
		ServiceName:    result.ServiceName,
		ServicePrice:   result.ServicePrice,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

func windowStartsAt(windows []domain.TimeWindow, start types.TimeString) bool {
	for _, w := range windows {
		if w.Start.Equal(start) {
			return true
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
