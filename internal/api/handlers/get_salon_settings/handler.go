package get_salon_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/settings
// Публичный endpoint. Для салона без сохраненных настроек возвращаются значения по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	result, err := h.service.Get(r.Context(), salonID)
	if err != nil {
		h.logger.Error("GET /salons/{id}/settings - Failed to get settings: salon_id=%s, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/settings - Settings retrieved: salon_id=%s, default=%t", salonID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
