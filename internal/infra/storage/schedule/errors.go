package schedule

import "errors"

var (
	// ErrTimeOffConflict возвращается, когда новый отпуск пересекается с уже существующим
	ErrTimeOffConflict = errors.New("schedule.repository: time off conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
