package block_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	blockTime "github.com/m04kA/SMC-SalonAvailability/internal/usecase/block_time"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgStaffNotFound      = "мастер не найден"
	msgStaffBusy          = "расписание мастера сейчас изменяется другим запросом, повторите попытку"
	msgInvalidData        = "некорректные данные блокировки"
)

type Handler struct {
	useCase BlockTimeUseCase
	logger  Logger
}

func NewHandler(useCase BlockTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/staff/{staffId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, staffID := vars["salonId"], vars["staffId"]

	var req BlockTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/staff/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(salonID, staffID)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/staff/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *blockTime.SlotUnavailableError
		switch {
		case errors.As(err, &rejection):
			h.logger.Warn("POST /salons/{id}/staff/{id}/blocks - Rejected: staff_id=%s, reason=%s", staffID, rejection.Reason)
			handlers.RespondDecisionRejection(w, rejection.Reason)

		case errors.Is(err, blockTime.ErrStaffNotFound):
			h.logger.Warn("POST /salons/{id}/staff/{id}/blocks - Staff not found: salon_id=%s, staff_id=%s", salonID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, blockTime.ErrStaffBusy):
			h.logger.Warn("POST /salons/{id}/staff/{id}/blocks - Staff busy: staff_id=%s", staffID)
			handlers.RespondConflict(w, msgStaffBusy)

		case errors.Is(err, blockTime.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/staff/{id}/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /salons/{id}/staff/{id}/blocks - Failed to block time: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/staff/{id}/blocks - Time blocked: block_id=%s, staff_id=%s", result.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
