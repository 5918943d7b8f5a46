package get_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	getGrid "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_grid"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность"
	msgStaffNotFound   = "мастер не найден"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetGridUseCase
	logger  Logger
}

func NewHandler(useCase GetGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/staff/{staffId}/grid
// Query params: date (required), durationMinutes (optional, по умолчанию шаг сетки)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, staffID := vars["salonId"], vars["staffId"]
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/staff/{id}/grid - Missing date: staff_id=%s", staffID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/grid - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var duration int
	if s := query.Get("durationMinutes"); s != "" {
		duration, err = strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/staff/{id}/grid - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getGrid.Request{
		SalonID:         salonID,
		StaffID:         staffID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getGrid.ErrStaffNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/grid - Staff not found: salon_id=%s, staff_id=%s", salonID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getGrid.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/staff/{id}/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /salons/{id}/staff/{id}/grid - Failed to build grid: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/staff/{id}/grid - Grid built: staff_id=%s, date=%s, cells=%d",
		staffID, dateStr, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
