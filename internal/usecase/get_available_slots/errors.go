package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден среди активных мастеров салона
	ErrStaffNotFound = errors.New("get_available_slots: staff not found")

	// ErrStaffNotEligible возвращается, когда мастер не выполняет услугу
	ErrStaffNotEligible = errors.New("get_available_slots: staff does not perform this service")

	// ErrStaffRequired возвращается в режиме choose_employee без указания мастера
	ErrStaffRequired = errors.New("get_available_slots: staff is required in choose_employee mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
