package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgStaffNotEligible   = "мастер не выполняет эту услугу"
	msgStaffRequired      = "в салоне включен выбор мастера, укажите staffId"
	msgStaffBusy          = "к мастеру сейчас записывается другой клиент, повторите попытку"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgInvalidData        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(salonID, userID)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createBooking.SlotUnavailableError
		switch {
		case errors.As(err, &rejection):
			h.logger.Warn("POST /salons/{id}/bookings - Slot rejected: salon_id=%s, user_id=%d, reason=%s",
				salonID, userID, rejection.Reason)
			handlers.RespondDecisionRejection(w, rejection.Reason)

		case errors.Is(err, createBooking.ErrStaffBusy):
			h.logger.Warn("POST /salons/{id}/bookings - Staff busy: salon_id=%s, staff_id=%s", salonID, req.StaffID)
			handlers.RespondConflict(w, msgStaffBusy)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{id}/bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /salons/{id}/bookings - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrStaffNotEligible):
			h.logger.Warn("POST /salons/{id}/bookings - Staff not eligible: staff_id=%s, service_id=%s", req.StaffID, req.ServiceID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		case errors.Is(err, createBooking.ErrStaffRequired):
			h.logger.Warn("POST /salons/{id}/bookings - Staff required: salon_id=%s", salonID)
			handlers.RespondBadRequest(w, msgStaffRequired)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /salons/{id}/bookings - Too late to book: user_id=%d, salon_id=%s", userID, salonID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /salons/{id}/bookings - Failed to create booking: user_id=%d, salon_id=%s, error=%v",
				userID, salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/bookings - Booking created successfully: booking_id=%s, user_id=%d, staff_id=%s",
		result.ID, userID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
