package block_time

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	blockTime "github.com/m04kA/SMC-SalonAvailability/internal/usecase/block_time"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// BlockTimeRequest HTTP request model
type BlockTimeRequest struct {
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staffId"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func (r *BlockTimeRequest) ToUseCaseRequest(salonID, staffID string) (*blockTime.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &blockTime.Request{
		SalonID:   salonID,
		StaffID:   staffID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    r.Reason,
	}, nil
}

func FromUseCaseResponse(resp *blockTime.Response) *BlockResponse {
	return &BlockResponse{
		ID:        resp.ID,
		StaffID:   resp.StaffID,
		StartAt:   resp.StartAt.Format(time.RFC3339),
		EndAt:     resp.EndAt.Format(time.RFC3339),
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
