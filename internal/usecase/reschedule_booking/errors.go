package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается для отмененных и закрытых бронирований
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrStaffNotFound возвращается, когда мастер не найден среди активных мастеров салона
	ErrStaffNotFound = errors.New("reschedule_booking: staff not found")

	// ErrStaffNotEligible возвращается, когда новый мастер не выполняет услугу бронирования
	ErrStaffNotEligible = errors.New("reschedule_booking: staff does not perform this service")

	// ErrSlotNotAvailable возвращается, когда новый интервал занят или вне расписания
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrStaffBusy возвращается, когда запись к мастеру уже выполняет другой запрос
	ErrStaffBusy = errors.New("reschedule_booking: staff is being booked by another request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

// SlotUnavailableError отказ валидатора с кодом причины
type SlotUnavailableError struct {
	Reason availability.ReasonCode
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSlotNotAvailable, e.Reason)
}

func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}
