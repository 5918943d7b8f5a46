package daycontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/memory"
)

func TestGetDayContext(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	store := memory.NewStore()
	store.AddOperatingHours(domain.OperatingHoursRule{SalonID: "salon-1", DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"})
	store.AddOperatingHours(domain.OperatingHoursRule{SalonID: "salon-2", DayOfWeek: 1, OpenTime: "10:00", CloseTime: "20:00"})
	store.AddStaffHours(
		domain.StaffHoursRule{StaffID: "anna", DayOfWeek: 1, StartTime: "10:00", EndTime: "16:00"},
		domain.StaffHoursRule{StaffID: "carl", DayOfWeek: 1, StartTime: "10:00", EndTime: "16:00"},
	)
	store.AddBooking(
		domain.Booking{ID: "in-day", StaffID: "anna", StartAt: day.Add(10 * time.Hour), EndAt: day.Add(11 * time.Hour), Status: domain.StatusConfirmed},
		domain.Booking{ID: "next-day", StaffID: "anna", StartAt: day.Add(34 * time.Hour), EndAt: day.Add(35 * time.Hour), Status: domain.StatusConfirmed},
		domain.Booking{ID: "cancelled", StaffID: "anna", StartAt: day.Add(12 * time.Hour), EndAt: day.Add(13 * time.Hour), Status: domain.StatusCancelled},
		domain.Booking{ID: "other-staff", StaffID: "carl", StartAt: day.Add(10 * time.Hour), EndAt: day.Add(11 * time.Hour), Status: domain.StatusConfirmed},
	)
	store.AddTimeOff(
		domain.TimeOffRecord{ID: "vacation", StaffID: "anna", StartAt: day.Add(-48 * time.Hour), EndAt: day.Add(2 * time.Hour)},
		domain.TimeOffRecord{ID: "ended-at-midnight", StaffID: "anna", StartAt: day.Add(-2 * time.Hour), EndAt: day},
	)

	loader := NewLoader(store, store)

	dc, err := loader.GetDayContext(context.Background(), "salon-1", []string{"anna"}, day.Add(15*time.Hour))
	require.NoError(t, err)

	require.Len(t, dc.SalonHours, 1)
	assert.Equal(t, "salon-1", dc.SalonHours[0].SalonID)
	require.Len(t, dc.StaffHours, 1)
	assert.Equal(t, "anna", dc.StaffHours[0].StaffID)
	require.Len(t, dc.Bookings, 1)
	assert.Equal(t, "in-day", dc.Bookings[0].ID)
	require.Len(t, dc.TimeOff, 1)
	assert.Equal(t, "vacation", dc.TimeOff[0].ID)
}

type failingSchedule struct {
	*memory.Store
	err error
}

func (f failingSchedule) GetStaffHours(ctx context.Context, staffIDs []string) ([]domain.StaffHoursRule, error) {
	return nil, f.err
}

func TestGetDayContext_Error(t *testing.T) {
	store := memory.NewStore()
	boom := errors.New("connection reset")

	loader := NewLoader(failingSchedule{Store: store, err: boom}, store)

	_, err := loader.GetDayContext(context.Background(), "salon-1", []string{"anna"}, time.Now())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "staff hours")
}
