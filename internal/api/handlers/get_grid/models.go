package get_grid

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	getGrid "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_grid"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// GridResponse HTTP response model
type GridResponse struct {
	Date            string         `json:"date"`
	StaffID         string         `json:"staffId"`
	StepMinutes     int            `json:"stepMinutes"`
	DurationMinutes int            `json:"durationMinutes"`
	Cells           []CellResponse `json:"cells"`
}

type CellResponse struct {
	StartTime string `json:"startTime"`
	StartAt   string `json:"startAt"`
	EndAt     string `json:"endAt"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func FromUseCaseResponse(resp *getGrid.Response) *GridResponse {
	cells := make([]CellResponse, 0, len(resp.Cells))
	for _, c := range resp.Cells {
		cells = append(cells, CellResponse{
			StartTime: types.NewTimeString(c.StartAt).String(),
			StartAt:   c.StartAt.Format(time.RFC3339),
			EndAt:     c.EndAt.Format(time.RFC3339),
			Available: c.Available,
			Reason:    string(c.Reason),
		})
	}

	return &GridResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StaffID:         resp.StaffID,
		StepMinutes:     resp.StepMinutes,
		DurationMinutes: resp.DurationMinutes,
		Cells:           cells,
	}
}
