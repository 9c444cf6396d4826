package get_tenant_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig/models"
)

const (
	msgInvalidTenantID = "некорректный ID салона"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/config
// Query params: professionalId (опционально)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/config - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var professionalID *int64
	if professionalIDStr := r.URL.Query().Get("professionalId"); professionalIDStr != "" {
		id, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/config - Invalid professional ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		professionalID = &id
	}

	// Сервис при отсутствии конфигурации возвращает дефолт, а не ошибку
	result, err := h.service.GetWithHierarchy(r.Context(), &models.GetConfigRequest{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
	})
	if err != nil {
		h.logger.Error("GET /tenants/{id}/config - Failed to get config: tenant_id=%d, error=%v",
			tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{id}/config - Config retrieved successfully: tenant_id=%d, block_size=%d",
		tenantID, result.BlockSizeMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
