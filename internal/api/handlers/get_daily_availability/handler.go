package get_daily_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
	getDailyAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_daily_availability"
)

const (
	msgInvalidTenantID       = "некорректный ID салона"
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateOutOfRange        = "дата вне поддерживаемого диапазона"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDailyAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDailyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/professionals/{professionalId}/availability
// Query params: date (required, YYYY-MM-DD), excludeClientId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/availability - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, professionalID, dateStr, r.URL.Query().Get("excludeClientId"))
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDailyAvailability.ErrInvalidDate):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/availability - Date out of range: tenant_id=%d, date=%s",
				tenantID, dateStr)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, getDailyAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/availability - Invalid input: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tenants/{id}/professionals/{id}/availability - Failed to get availability: tenant_id=%d, professional_id=%d, error=%v",
				tenantID, professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/professionals/{id}/availability - Availability retrieved: tenant_id=%d, professional_id=%d, blocks_count=%d",
		tenantID, professionalID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, response)
}
