package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/BMS-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	cache           MonthCache
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// cache может быть nil - тогда инвалидация календарного кэша пропускается
func NewService(
	appointmentRepo AppointmentRepository,
	cache MonthCache,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		cache:           cache,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись (cancelled_by_client),
// салон - любую свою запись (cancelled_by_salon)
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by client=%d, bySalon=%t",
		appointmentID, req.ClientID, req.BySalon)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отменить можно только запись в статусе scheduled или confirmed
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	var cancelStatus domain.AppointmentStatus
	if req.BySalon {
		cancelStatus = domain.StatusCancelledBySalon
	} else {
		if appt.ClientID != req.ClientID {
			s.logger.Warn("Cancel: access denied for client=%d to cancel appointment id=%d", req.ClientID, appointmentID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByClient
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d with status=%s", appointmentID, cancelStatus)

	// Отмена освобождает слоты - инвалидируем календарный кэш месяца
	s.invalidateMonthCache(ctx, appt)

	return nil
}

// UpdateStatus обновляет статус записи (подтверждение, завершение, неявка)
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", appointmentID, req.Status)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)

	// Переход из активного статуса в неактивный (no_show) освобождает слоты
	if appt.IsActive() && !statusIsActive(newStatus) {
		s.invalidateMonthCache(ctx, appt)
	}

	return nil
}

// invalidateMonthCache сбрасывает кэш помесячной доступности мастера
// Ошибки кэша только логируются - источник истины всегда БД
func (s *Service) invalidateMonthCache(ctx context.Context, appt *domain.BookedAppointment) {
	if s.cache == nil {
		return
	}

	year, month := appt.Date.Year(), int(appt.Date.Month())
	if err := s.cache.Invalidate(ctx, appt.TenantID, appt.ProfessionalID, year, month); err != nil {
		s.logger.Warn("invalidateMonthCache: failed to invalidate cache for professional=%d, %04d-%02d: %v",
			appt.ProfessionalID, year, month, err)
	}
}

func statusIsActive(status domain.AppointmentStatus) bool {
	for _, active := range domain.ActiveStatuses {
		if status == active {
			return true
		}
	}
	return false
}
