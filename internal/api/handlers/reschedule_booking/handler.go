package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgCannotReschedule   = "бронирование не может быть перенесено"
	msgStaffNotFound      = "мастер не найден"
	msgStaffNotEligible   = "мастер не выполняет услугу бронирования"
	msgStaffBusy          = "к мастеру сейчас записывается другой клиент, повторите попытку"
	msgInvalidData        = "некорректные данные переноса"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *rescheduleBooking.SlotUnavailableError
		switch {
		case errors.As(err, &rejection):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot rejected: booking_id=%s, reason=%s", bookingID, rejection.Reason)
			handlers.RespondDecisionRejection(w, rejection.Reason)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Cannot reschedule: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrStaffNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, rescheduleBooking.ErrStaffNotEligible):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff not eligible: staff_id=%s", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		case errors.Is(err, rescheduleBooking.ErrStaffBusy):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff busy: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgStaffBusy)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%s, user_id=%d, staff_id=%s",
		bookingID, userID, result.StaffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
