package validate_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	validateBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/validate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgStaffNotEligible   = "мастер не выполняет эту услугу"
	msgStaffRequired      = "в салоне включен выбор мастера, укажите staffId"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/bookings/validate
// Пробная проверка без записи: отказ возвращается как 200 с ok=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(salonID)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateBooking.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{id}/bookings/validate - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, validateBooking.ErrStaffNotFound):
			h.logger.Warn("POST /salons/{id}/bookings/validate - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, validateBooking.ErrStaffNotEligible):
			h.logger.Warn("POST /salons/{id}/bookings/validate - Staff not eligible: staff_id=%s", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		case errors.Is(err, validateBooking.ErrStaffRequired):
			h.logger.Warn("POST /salons/{id}/bookings/validate - Staff required: salon_id=%s", salonID)
			handlers.RespondBadRequest(w, msgStaffRequired)

		case errors.Is(err, validateBooking.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/bookings/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /salons/{id}/bookings/validate - Failed to validate: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/bookings/validate - Decision ok=%t reason=%s: salon_id=%s, staff_id=%s",
		result.Decision.OK, result.Decision.Reason, salonID, result.StaffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
