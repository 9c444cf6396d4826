package build_itineraries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
	buildItineraries "github.com/m04kA/BMS-SchedulingService/internal/usecase/build_itineraries"
)

const (
	msgInvalidTenantID    = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateOutOfRange     = "дата вне поддерживаемого диапазона"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	useCase BuildItinerariesUseCase
	logger  Logger
}

func NewHandler(useCase BuildItinerariesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/itineraries/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/itineraries/search - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req BuildItinerariesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/itineraries/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/itineraries/search - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildItineraries.ErrServiceNotFound):
			h.logger.Warn("POST /tenants/{id}/itineraries/search - Service not found: tenant_id=%d, service_ids=%v",
				tenantID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, buildItineraries.ErrInvalidDate):
			h.logger.Warn("POST /tenants/{id}/itineraries/search - Date out of range: tenant_id=%d, date=%s",
				tenantID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, buildItineraries.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/itineraries/search - Invalid input: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /tenants/{id}/itineraries/search - Failed to build itineraries: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /tenants/{id}/itineraries/search - Itineraries built: tenant_id=%d, services_count=%d, itineraries_count=%d",
		tenantID, len(req.ServiceIDs), len(result.Itineraries))
	handlers.RespondJSON(w, http.StatusOK, response)
}
