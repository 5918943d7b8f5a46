package settings

import (
	"context"
	"errors"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/settings/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

func newService(repo SettingsRepository) *Service {
	return NewService(repo, Defaults{Timezone: "Europe/Moscow"}, logger.Nop())
}

func TestService_GetDefaults(t *testing.T) {
	svc := newService(memory.NewStore())

	resp, err := svc.Get(context.Background(), "salon-1")

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, string(domain.ModeChooseEmployee), resp.BookingMode)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)
	assert.Equal(t, domain.DefaultSlotStepMinutes, resp.SlotStepMinutes)
	assert.Nil(t, resp.UpdatedAt)
}

func TestService_UpdatePartial(t *testing.T) {
	store := memory.NewStore()
	svc := newService(store)
	ctx := context.Background()

	resp, err := svc.Update(ctx, &models.UpdateSettingsRequest{
		SalonID:     "salon-1",
		BookingMode: ptr.Ptr("auto_assign"),
	})
	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, "auto_assign", resp.BookingMode)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)

	_, err = svc.Update(ctx, &models.UpdateSettingsRequest{
		SalonID:         "salon-1",
		SlotStepMinutes: ptr.Ptr(15),
	})
	require.NoError(t, err)

	effective, err := svc.GetEffective(ctx, "salon-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAutoAssign, effective.BookingMode)
	assert.Equal(t, 15, effective.SlotStepMinutes)
}

func TestService_UpdateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateSettingsRequest
		wantErr error
	}{
		{
			name:    "empty salon",
			req:     &models.UpdateSettingsRequest{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown mode",
			req:     &models.UpdateSettingsRequest{SalonID: "s", BookingMode: ptr.Ptr("random")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "step too small",
			req:     &models.UpdateSettingsRequest{SalonID: "s", SlotStepMinutes: ptr.Ptr(1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown timezone",
			req:     &models.UpdateSettingsRequest{SalonID: "s", Timezone: ptr.Ptr("Mars/Olympus")},
			wantErr: ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(memory.NewStore()).Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (*domain.SalonSettings, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) Upsert(context.Context, *domain.SalonSettings) (*domain.SalonSettings, error) {
	return nil, errors.New("connection refused")
}

func TestService_RepositoryError(t *testing.T) {
	_, err := newService(failingRepo{}).GetEffective(context.Background(), "salon-1")
	assert.ErrorIs(t, err, ErrInternal)
}
