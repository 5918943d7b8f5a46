package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

func setup(t *testing.T, status domain.BookingStatus) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.AddBooking(domain.Booking{
		ID:        "b-1",
		SalonID:   "salon-1",
		StaffID:   "anna",
		ServiceID: ptr.Ptr("haircut"),
		UserID:    ptr.Ptr(int64(42)),
		StartAt:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Status:    status,
	})
	return NewService(store, memory.TxManager{}, logger.Nop()), store
}

func TestService_GetByID(t *testing.T) {
	svc, _ := setup(t, domain.StatusConfirmed)

	resp, err := svc.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "anna", resp.StaffID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "2024-01-01T10:00:00Z", resp.StartAt)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	svc, store := setup(t, domain.StatusConfirmed)

	err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: ptr.Ptr("заболела"),
	})
	require.NoError(t, err)

	bookings := store.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusCancelled, bookings[0].Status)
	assert.NotNil(t, bookings[0].CancelledAt)

	err = svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc, _ := setup(t, domain.StatusConfirmed)

	err := svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		initial domain.BookingStatus
		status  string
		wantErr error
	}{
		{name: "complete confirmed", initial: domain.StatusConfirmed, status: "completed"},
		{name: "no show pending", initial: domain.StatusPending, status: "no_show"},
		{name: "cannot reopen", initial: domain.StatusConfirmed, status: "pending", wantErr: ErrInvalidInput},
		{name: "already cancelled", initial: domain.StatusCancelled, status: "completed", wantErr: ErrCannotChangeStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := setup(t, tt.initial)

			err := svc.UpdateStatus(context.Background(), "b-1", &models.UpdateStatusRequest{Status: tt.status})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.status), store.Bookings()[0].Status)
		})
	}
}

type recordingTx struct {
	calls int
}

func (r *recordingTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}

func TestService_WritesRunInTransaction(t *testing.T) {
	_, store := setup(t, domain.StatusConfirmed)
	tx := &recordingTx{}
	svc := NewService(store, tx, logger.Nop())

	require.NoError(t, svc.UpdateStatus(context.Background(), "b-1", &models.UpdateStatusRequest{UserID: 42, Status: string(domain.StatusCompleted)}))
	assert.Equal(t, 1, tx.calls)

	err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Equal(t, 2, tx.calls)
}
