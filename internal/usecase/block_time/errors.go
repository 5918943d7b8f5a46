package block_time

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
)

var (
	// ErrStaffNotFound возвращается, когда мастер не найден в салоне
	ErrStaffNotFound = errors.New("block_time: staff not found")

	// ErrSlotNotAvailable возвращается, когда интервал занят или вне расписания мастера
	ErrSlotNotAvailable = errors.New("block_time: slot is not available")

	// ErrStaffBusy возвращается, когда запись к мастеру уже выполняет другой запрос
	ErrStaffBusy = errors.New("block_time: staff is being booked by another request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_time: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_time: internal error")
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
