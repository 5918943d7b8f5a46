package get_grid

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
)

// Request модель запроса календарной сетки мастера
type Request struct {
	SalonID         string
	StaffID         string
	Date            time.Time
	DurationMinutes int // 0 - длина ячейки равна шагу сетки
}

// Response сетка на день: каждая ячейка в часы работы салона
type Response struct {
	Date            time.Time
	StaffID         string
	StepMinutes     int
	DurationMinutes int
	Cells           []Cell
}

// Cell ячейка сетки. Reason пустой для свободной ячейки.
type Cell struct {
	StartAt   time.Time
	EndAt     time.Time
	Available bool
	Reason    availability.ReasonCode
}
