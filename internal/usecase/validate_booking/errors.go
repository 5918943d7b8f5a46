package validate_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("validate_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден среди активных мастеров салона
	ErrStaffNotFound = errors.New("validate_booking: staff not found")

	// ErrStaffNotEligible возвращается, когда мастер не выполняет услугу
	ErrStaffNotEligible = errors.New("validate_booking: staff does not perform this service")

	// ErrStaffRequired возвращается в режиме choose_employee без указания мастера
	ErrStaffRequired = errors.New("validate_booking: staff is required in choose_employee mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_booking: internal error")
)
