package get_calendar_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
	getCalendarAvailability "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_calendar_availability"
)

const (
	msgInvalidTenantID       = "некорректный ID салона"
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidYear           = "некорректный год"
	msgInvalidMonth          = "некорректный месяц"
	msgPeriodOutOfRange      = "период вне поддерживаемого диапазона"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCalendarAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/professionals/{professionalId}/calendar
// Query params: year (required), month (required, 1..12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/calendar - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/calendar - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/professionals/{id}/calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendarAvailability.Request{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		Year:           year,
		Month:          month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarAvailability.ErrInvalidPeriod):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/calendar - Period out of range: tenant_id=%d, year=%d, month=%d",
				tenantID, year, month)
			handlers.RespondBadRequest(w, msgPeriodOutOfRange)

		case errors.Is(err, getCalendarAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/professionals/{id}/calendar - Invalid input: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tenants/{id}/professionals/{id}/calendar - Failed to get calendar: tenant_id=%d, professional_id=%d, error=%v",
				tenantID, professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/professionals/{id}/calendar - Calendar retrieved: tenant_id=%d, professional_id=%d, days_count=%d",
		tenantID, professionalID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
