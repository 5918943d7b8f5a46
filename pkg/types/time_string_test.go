package types

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		want    int
		wantErr error
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "08:30", want: 510},
		{name: "end of day", input: "24:00", want: MinutesPerDay},
		{name: "bad minutes", input: "10:61", wantErr: ErrInvalidTimeString},
		{name: "missing colon", input: "1000", wantErr: ErrInvalidTimeString},
		{name: "letters", input: "ab:cd", wantErr: ErrInvalidTimeString},
		{name: "past end of day", input: "24:30", wantErr: ErrTimeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Minutes()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.False(t, TimeString("bad").IsBefore("17:59"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	date := time.Date(2024, 1, 1, 17, 0, 0, 0, loc)

	got, err := TimeString("09:15").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 15, 0, 0, loc), got)
}

func TestTimeString_OnDate_DSTDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "spring forward",
			date: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
			want: time.Date(2024, 3, 10, 10, 0, 0, 0, loc),
		},
		{
			name: "fall back",
			date: time.Date(2024, 11, 3, 0, 0, 0, 0, loc),
			want: time.Date(2024, 11, 3, 10, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString("10:00").OnDate(tt.date)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, 10, got.Hour())
			assert.Equal(t, 0, got.Minute())
		})
	}
}

func TestTimeString_OnDate_EndOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := TimeString("24:00").OnDate(time.Date(2024, 3, 10, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc).Equal(got))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("13:30:00"))
	assert.Equal(t, TimeString("13:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
