package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден среди активных мастеров салона
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrStaffNotEligible возвращается, когда мастер не выполняет услугу
	ErrStaffNotEligible = errors.New("create_booking: staff does not perform this service")

	// ErrStaffRequired возвращается в режиме choose_employee без указания мастера
	ErrStaffRequired = errors.New("create_booking: staff is required in choose_employee mode")

	// ErrSlotNotAvailable возвращается, когда интервал занят или вне расписания
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrStaffBusy возвращается, когда запись к мастеру уже выполняет другой запрос
	ErrStaffBusy = errors.New("create_booking: staff is being booked by another request")

	// ErrTooLateToBook возвращается, когда до начала меньше минимального запаса
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotUnavailableError отказ валидатора с кодом причины.
// errors.Is(err, ErrSlotNotAvailable) истинно для любого кода.
type SlotUnavailableError struct {
	Reason availability.ReasonCode
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSlotNotAvailable, e.Reason)
}

func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}
