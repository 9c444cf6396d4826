package tenantconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/tenantconfig"
	"github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig/models"
)

// Service сервис для работы с конфигурацией размера блока расписания
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Приоритет: конфигурация мастера > конфигурация салона
// При полном отсутствии конфигурации возвращает дефолт, а не ошибку
func (s *Service) GetWithHierarchy(ctx context.Context, req *models.GetConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("GetWithHierarchy: fetching config for tenant=%d, professional=%v",
		req.TenantID, req.ProfessionalID)

	config, err := s.configRepo.GetConfigWithHierarchy(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetWithHierarchy: no config for tenant=%d, using default block size %d",
				req.TenantID, domain.DefaultBlockSizeMinutes)
			return models.FromDomainConfig(&domain.TenantSlotsConfig{
				TenantID:         req.TenantID,
				BlockSizeMinutes: domain.DefaultBlockSizeMinutes,
			}), nil
		}
		s.logger.Error("GetWithHierarchy: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWithHierarchy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWithHierarchy: successfully fetched config id=%d (level: %s)",
		config.ID, s.getConfigLevel(config))
	return models.FromDomainConfig(config), nil
}

// GetAllByTenant получает все конфигурации салона
func (s *Service) GetAllByTenant(ctx context.Context, tenantID int64) (*models.ConfigListResponse, error) {
	s.logger.Info("GetAllByTenant: fetching configs for tenant=%d", tenantID)

	configs, err := s.configRepo.GetAllByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetAllByTenant: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetAllByTenant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllByTenant: successfully fetched %d configs for tenant=%d", len(configs), tenantID)
	return models.FromDomainConfigList(configs), nil
}

// Upsert создает или обновляет конфигурацию салона или мастера
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: upserting config for tenant=%d, professional=%v, blockSize=%d",
		req.TenantID, req.ProfessionalID, req.BlockSizeMinutes)

	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	config, err := s.configRepo.Upsert(ctx, req.ToDomainConfig())
	if err != nil {
		s.logger.Error("Upsert: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted config id=%d", config.ID)
	return models.FromDomainConfig(config), nil
}

// Delete удаляет конфигурацию по ID
// После удаления запросы попадают на следующий уровень иерархии
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting config id=%d", id)

	if err := s.configRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config id=%d not found", id)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error for config id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted config id=%d", id)
	return nil
}

// Вспомогательные методы

// validateConfigData валидирует параметры конфигурации
func (s *Service) validateConfigData(req *models.UpsertConfigRequest) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.BlockSizeMinutes < domain.MinBlockSizeMinutes || req.BlockSizeMinutes > domain.MaxBlockSizeMinutes {
		return fmt.Errorf("%w: blockSizeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBlockSizeMinutes, domain.MaxBlockSizeMinutes)
	}

	return nil
}

// getConfigLevel возвращает строковое представление уровня конфигурации для логирования
func (s *Service) getConfigLevel(config *domain.TenantSlotsConfig) string {
	if config.IsTenantWide() {
		return "tenant"
	}
	return "professional"
}
