package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInvalidTimezone возвращается, когда часовой пояс не найден в базе IANA
	ErrInvalidTimezone = errors.New("settings: unknown timezone")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
