package build_itineraries

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	catalogClient "github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/BMS-SchedulingService/internal/scheduling"
)

// UseCase use case мастера подбора: строит ранжированные маршруты
// выполнения набора услуг на дату
//
// Конвейер: развертка услуг каталога -> снимки календаря -> блоки дня ->
// отбор подходящих мастеров -> комбинации ресурсов -> построение маршрутов
// (параллельных и последовательных) -> дедупликация и ранжирование
type UseCase struct {
	snapshots     SnapshotService
	catalogClient CatalogServiceClient
	stationRepo   StationRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	snapshots SnapshotService,
	catalogClient CatalogServiceClient,
	stationRepo StationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		snapshots:     snapshots,
		catalogClient: catalogClient,
		stationRepo:   stationRepo,
		logger:        logger,
	}
}

// Execute выполняет use case подбора маршрутов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildItineraries: tenant=%d, date=%s, services=%v, professionalsRequested=%d",
		req.TenantID, req.Date.Format(domain.DateFormat), req.ServiceIDs, req.ProfessionalsRequested)

	// 1. Валидация входных данных - до любых обращений к каталогу и хранилищам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildItineraries: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услуги из каталога одним batch-запросом
	services, err := uc.catalogClient.GetServices(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("BuildItineraries: service not found: %v", err)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BuildItineraries: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 3. Разворачиваем услуги в требования движка
	requirements := expandRequirements(req.ServiceIDs, services)
	if len(requirements) != len(req.ServiceIDs) {
		// Batch-клиент проверяет полноту, сюда попадать не должны
		uc.logger.Error("BuildItineraries: expanded %d of %d requested services",
			len(requirements), len(req.ServiceIDs))
		return nil, ErrServiceNotFound
	}

	// 4. Собираем снимки календаря всех квалифицированных мастеров
	professionalIDs := professionalsUnion(requirements)
	if len(professionalIDs) == 0 {
		uc.logger.Info("BuildItineraries: no qualified professionals for services=%v", req.ServiceIDs)
		return emptyResponse(req), nil
	}

	snapshots, err := uc.snapshots.LoadDay(ctx, req.TenantID, req.Date, professionalIDs)
	if err != nil {
		uc.logger.Error("BuildItineraries: failed to load snapshots: %v", err)
		return nil, fmt.Errorf("%w: failed to load day snapshots: %v", ErrInternal, err)
	}

	// 5. Генерируем блоки дня каждого мастера
	slotsByProfessional := make(map[int64][]domain.TimeBlock, len(professionalIDs))
	blockSizeByProfessional := make(map[int64]int, len(professionalIDs))
	for _, profID := range professionalIDs {
		snap := snapshots[profID]
		slotsByProfessional[profID] = scheduling.GenerateDaySlots(snap, req.ExcludeClientID)
		blockSizeByProfessional[profID] = snap.BlockSizeMinutes
	}

	// 6. Отбираем мастеров: квалификация + хотя бы один свободный блок
	eligible := scheduling.FilterEligible(requirements, slotsByProfessional, req.RestrictProfessionals)

	// 7. Загружаем активные станции нужных типов одним запросом
	stationsByType := make(map[string][]int64)
	if needed := stationTypesNeeded(requirements); len(needed) > 0 {
		stationsByType, err = uc.stationRepo.GetActiveByTypes(ctx, req.TenantID, needed)
		if err != nil {
			uc.logger.Error("BuildItineraries: failed to get stations: %v", err)
			return nil, fmt.Errorf("%w: failed to get stations: %v", ErrInternal, err)
		}
	}

	// 8. Перечисляем комбинации ресурсов
	combos := scheduling.GenerateCombinations(requirements, eligible, stationsByType, req.ProfessionalsRequested)
	uc.logger.Info("BuildItineraries: %d resource combinations for services=%v", len(combos), req.ServiceIDs)

	// 9. Строим маршруты по каждой комбинации
	candidates := make([]domain.WizardItinerary, 0)
	for _, combo := range combos {
		switch combo.ExecutionType {
		case domain.ExecutionParallel:
			candidates = append(candidates, scheduling.BuildParallelItineraries(combo, req.Date, slotsByProfessional)...)
		case domain.ExecutionSequential:
			blockSize := blockSizeByProfessional[combo.ProfessionalIDs[0]]
			candidates = append(candidates, scheduling.BuildSequentialItineraries(combo, req.Date, slotsByProfessional, blockSize)...)
		}
	}

	// 10. Дедупликация и ранжирование
	ranked := scheduling.RankItineraries(candidates)

	uc.logger.Info("BuildItineraries: %d itineraries after ranking for tenant=%d, date=%s",
		len(ranked), req.TenantID, req.Date.Format(domain.DateFormat))

	itineraries := make([]Itinerary, 0, len(ranked))
	for _, it := range ranked {
		itineraries = append(itineraries, fromDomainItinerary(it))
	}

	return &Response{
		TenantID:    req.TenantID,
		Date:        req.Date,
		Itineraries: itineraries,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		TenantID:    req.TenantID,
		Date:        req.Date,
		Itineraries: []Itinerary{},
	}
}
