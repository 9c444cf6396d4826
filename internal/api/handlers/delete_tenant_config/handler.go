package delete_tenant_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig"
)

const (
	msgInvalidConfigID = "некорректный ID конфигурации"
	msgNotFound        = "конфигурация не найдена"
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

// Handle DELETE /api/v1/tenants/{tenantId}/configs/{configId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	configID, err := strconv.ParseInt(vars["configId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tenants/{id}/configs/{id} - Invalid config ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfigID)
		return
	}

	if err := h.service.Delete(r.Context(), configID); err != nil {
		switch {
		case errors.Is(err, tenantconfig.ErrConfigNotFound):
			h.logger.Warn("DELETE /tenants/{id}/configs/{id} - Config not found: config_id=%d", configID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tenants/{id}/configs/{id} - Failed to delete config: config_id=%d, error=%v",
				configID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tenants/{id}/configs/{id} - Config deleted successfully: config_id=%d", configID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
