package domain

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

func TestResolveLegacyStatus(t *testing.T) {
	tests := []struct {
		name   string
		status BookingStatus
		notes  *string
		want   BookingStatus
	}{
		{name: "no notes", status: StatusConfirmed, notes: nil, want: StatusConfirmed},
		{name: "plain notes", status: StatusConfirmed, notes: ptr.Ptr("окрашивание"), want: StatusConfirmed},
		{name: "completed tag", status: StatusConfirmed, notes: ptr.Ptr("done [status:completed]"), want: StatusCompleted},
		{name: "no show tag", status: StatusConfirmed, notes: ptr.Ptr("[status:no_show]"), want: StatusNoShow},
		{name: "both tags, completed wins", status: StatusConfirmed, notes: ptr.Ptr("[status:no_show] [status:completed]"), want: StatusCompleted},
		{name: "tag ignored for cancelled", status: StatusCancelled, notes: ptr.Ptr("[status:completed]"), want: StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 20 {
				assert.Equal(t, tt.want, ResolveLegacyStatus(tt.status, tt.notes))
			}
		})
	}
}

func TestBookingStatus_IsOccupying(t *testing.T) {
	assert.True(t, StatusPending.IsOccupying())
	assert.True(t, StatusConfirmed.IsOccupying())
	assert.False(t, StatusCompleted.IsOccupying())
	assert.False(t, StatusCancelled.IsOccupying())
	assert.False(t, StatusNoShow.IsOccupying())
}

func TestLegacyStatusMigrationMatchesShim(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/002_normalize_legacy_status.sql")
	require.NoError(t, err)
	sql := string(raw)

	prev := -1
	for _, legacy := range legacyStatusTags {
		stmt := fmt.Sprintf("SET status = '%s', updated_at = NOW()\nWHERE status = 'confirmed' AND notes LIKE '%%%s%%'", legacy.status, legacy.tag)
		idx := strings.Index(sql, stmt)
		require.GreaterOrEqual(t, idx, 0, "no update for %s", legacy.tag)
		assert.Greater(t, idx, prev, "tag %s is applied out of order", legacy.tag)
		prev = idx
	}
}
