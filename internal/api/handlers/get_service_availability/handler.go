package get_service_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
	getServiceAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_service_availability"
)

const (
	msgInvalidTenantID       = "некорректный ID салона"
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidQueryParams    = "некорректные параметры запроса: ожидаются serviceId, year, month"
	msgPeriodOutOfRange      = "период вне поддерживаемого диапазона"
	msgServiceNotFound       = "услуга не найдена"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetServiceAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetServiceAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/professionals/{professionalId}/service-availability
// Query params: serviceId (required), year (required), month (required, 1..12),
// excludeClientId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/service-availability - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/service-availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		tenantID,
		professionalID,
		query.Get("serviceId"),
		query.Get("year"),
		query.Get("month"),
		query.Get("excludeClientId"),
	)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/service-availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getServiceAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/service-availability - Service not found: tenant_id=%d, service_id=%d",
				tenantID, useCaseReq.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getServiceAvailability.ErrInvalidPeriod):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/service-availability - Period out of range: tenant_id=%d, year=%d, month=%d",
				tenantID, useCaseReq.Year, useCaseReq.Month)
			handlers.RespondBadRequest(w, msgPeriodOutOfRange)

		case errors.Is(err, getServiceAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/service-availability - Invalid input: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tenants/{id}/professionals/{id}/service-availability - Failed to get availability: tenant_id=%d, service_id=%d, error=%v",
				tenantID, useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/professionals/{id}/service-availability - Availability retrieved: tenant_id=%d, professional_id=%d, service_id=%d, days_count=%d",
		tenantID, professionalID, useCaseReq.ServiceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
