package update_salon_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimezone    = "неизвестный часовой пояс"
	msgInvalidData        = "некорректные настройки салона"
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

// Handle PUT /api/v1/salons/{salonId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	var req UpdateSalonSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(salonID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidTimezone):
			h.logger.Warn("PUT /salons/{id}/settings - Invalid timezone: salon_id=%s, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/settings - Invalid data: salon_id=%s, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /salons/{id}/settings - Failed to update settings: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/settings - Settings updated: salon_id=%s, mode=%s, timezone=%s, step=%d",
		salonID, result.BookingMode, result.Timezone, result.SlotStepMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
