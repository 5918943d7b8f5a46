package validate_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/memory/memorytest"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

type decisionCounter map[string]int

func (c decisionCounter) IncDecision(operation, reason string) {
	c[operation+":"+reason]++
}

func newUseCase(salon *memorytest.Salon, m Metrics) *UseCase {
	return NewUseCase(salon.Settings, salon.Store, salon.Loader, m, logger.Nop())
}

func TestExecute_Decisions(t *testing.T) {
	salon := memorytest.NewSalon()
	salon.Book("b-1", memorytest.Anna, memorytest.At(10, 0), memorytest.At(11, 0))

	tests := []struct {
		name    string
		req     Request
		want    availability.Decision
		staffID string
	}{
		{
			name: "free interval",
			req:  Request{StaffID: memorytest.Anna, ServiceID: memorytest.Haircut, StartTime: "11:00"},
			want: availability.Allow(), staffID: memorytest.Anna,
		},
		{
			name: "overlap",
			req:  Request{StaffID: memorytest.Anna, ServiceID: memorytest.Haircut, StartTime: "10:30"},
			want: availability.Reject(availability.ReasonOverlap),
		},
		{
			name: "reschedule excludes itself",
			req:  Request{StaffID: memorytest.Anna, ServiceID: memorytest.Haircut, StartTime: "10:30", ExcludeBookingID: "b-1"},
			want: availability.Allow(), staffID: memorytest.Anna,
		},
		{
			name: "break",
			req:  Request{StaffID: memorytest.Anna, StartTime: "12:30", EndTime: "13:30"},
			want: availability.Reject(availability.ReasonInsideBreak),
		},
		{
			name: "outside hours",
			req:  Request{StaffID: memorytest.Bob, ServiceID: memorytest.Haircut, StartTime: "11:30"},
			want: availability.Reject(availability.ReasonOutsideWorkingHours),
		},
		{
			name: "end before start",
			req:  Request{StaffID: memorytest.Bob, StartTime: "15:00", EndTime: "14:00"},
			want: availability.Reject(availability.ReasonSlotUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.SalonID = memorytest.SalonID
			req.Date = memorytest.Monday

			resp, err := newUseCase(salon, nil).Execute(context.Background(), &req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Decision)
			assert.Equal(t, tt.staffID, resp.StaffID)
		})
	}
}

func TestExecute_AutoAssign(t *testing.T) {
	salon := memorytest.NewSalon()
	salon.SetMode(domain.ModeAutoAssign)
	salon.Book("b-1", memorytest.Anna, memorytest.At(15, 0), memorytest.At(16, 0))
	counter := decisionCounter{}

	resp, err := newUseCase(salon, counter).Execute(context.Background(), &Request{
		SalonID:   memorytest.SalonID,
		ServiceID: memorytest.Haircut,
		Date:      memorytest.Monday,
		StartTime: types.TimeString("15:00"),
	})

	require.NoError(t, err)
	assert.True(t, resp.Decision.OK)
	assert.Equal(t, memorytest.Bob, resp.StaffID)
	assert.Equal(t, 1, counter["validate:"])

	// никто не свободен: причина первого мастера
	salon.Book("b-2", memorytest.Bob, memorytest.At(15, 0), memorytest.At(16, 0))
	resp, err = newUseCase(salon, counter).Execute(context.Background(), &Request{
		SalonID:   memorytest.SalonID,
		ServiceID: memorytest.Haircut,
		Date:      memorytest.Monday,
		StartTime: types.TimeString("15:00"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Decision.OK)
	assert.Empty(t, resp.StaffID)
	assert.Equal(t, availability.ReasonOverlap, resp.Decision.Reason)
	assert.Equal(t, 1, counter["validate:overlap"])
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "no end and no service",
			req:     &Request{SalonID: memorytest.SalonID, StaffID: memorytest.Anna, Date: memorytest.Monday, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad start time",
			req:     &Request{SalonID: memorytest.SalonID, StaffID: memorytest.Anna, Date: memorytest.Monday, StartTime: "25:00", EndTime: "26:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown staff",
			req:     &Request{SalonID: memorytest.SalonID, StaffID: "ghost", ServiceID: memorytest.Haircut, Date: memorytest.Monday, StartTime: "10:00"},
			wantErr: ErrStaffNotFound,
		},
		{
			name:    "staff required",
			req:     &Request{SalonID: memorytest.SalonID, ServiceID: memorytest.Haircut, Date: memorytest.Monday, StartTime: "10:00"},
			wantErr: ErrStaffRequired,
		},
		{
			name:    "foreign service",
			req:     &Request{SalonID: memorytest.SalonID, StaffID: memorytest.Anna, ServiceID: memorytest.Manicure, Date: memorytest.Monday, StartTime: "10:00"},
			wantErr: ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(memorytest.NewSalon(), nil).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
