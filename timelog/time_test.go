package timelog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClock(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"9:30:00 AM", true},
		{"09:30:00 am", true},
		{"12:00:00 PM", true},
		{"  9:30:00 PM  ", true},
		{"09:30:00", true},
		{"23:59", true},
		{"00:00:00", true},
		{"13:00:00 PM", false},
		{"0:30:00 AM", false},
		{"9:30 AM", false},
		{"25:00", false},
		{"9:30", false},
		{"09:60:00", false},
		{"09:30:00 XM", false},
		{"09:30:00AM", false},
		{"", false},
		{"noon", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateClock(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidClock)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		wantHour int
		wantMin  int
		wantSec  int
	}{
		{"9:30:00 AM", 9, 30, 0},
		{"12:00:00 PM", 12, 0, 0},
		{"12:15:30 AM", 0, 15, 30},
		{"05:00:00 pm", 17, 0, 0},
		{"17:45:10", 17, 45, 10},
		{"08:05", 8, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMin, got.Minute())
			assert.Equal(t, tt.wantSec, got.Second())
			assert.Equal(t, AnchorDate.YearDay(), got.YearDay())
			assert.Equal(t, AnchorDate.Year(), got.Year())
		})
	}
}

func TestParseClock_Rejects(t *testing.T) {
	for _, input := range []string{"", "13:00:00 PM", "ab:cd", "9", "9:30:00 AM extra", "24:00:00", "9:-1:00", "+9:30"} {
		_, err := ParseClock(input)
		assert.True(t, errors.Is(err, ErrUnparsableClock), "input %q: got %v", input, err)
	}
}

func TestParseHM(t *testing.T) {
	d, err := ParseHM("08:00")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, d)

	d, err = ParseHM("7:45")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+45*time.Minute, d)

	for _, bad := range []string{"8", "08:60", "x:00", "", "-1:00"} {
		_, err := ParseHM(bad)
		assert.ErrorIs(t, err, ErrInvalidDuration, bad)
	}
}

func TestFormatHM_RoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 61, 479, 480, 1439, 6000} {
		d := time.Duration(minutes) * time.Minute
		parsed, err := ParseHM(FormatHM(d))
		require.NoError(t, err, "minutes %d", minutes)
		assert.Equal(t, minutes, int(parsed/time.Minute))
	}

	assert.Equal(t, "04:00", FormatHM(4*time.Hour+59*time.Second))
	assert.Equal(t, "00:00", FormatHM(-time.Hour))
}

func TestFormatSpan(t *testing.T) {
	assert.Equal(t, "0s", FormatSpan(0))
	assert.Equal(t, "0s", FormatSpan(-time.Minute))
	assert.Equal(t, "4h", FormatSpan(4*time.Hour))
	assert.Equal(t, "1h 5s", FormatSpan(time.Hour+5*time.Second))
	assert.Equal(t, "2h 3m 4s", FormatSpan(2*time.Hour+3*time.Minute+4*time.Second))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "12:00:00 AM", FormatClock(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "09:05:07 AM", FormatClock(time.Date(2000, 1, 1, 9, 5, 7, 0, time.UTC)))
	assert.Equal(t, "12:30:00 PM", FormatClock(time.Date(2000, 1, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, "05:00:00 PM", FormatClock(time.Date(2000, 1, 1, 17, 0, 0, 0, time.UTC)))
}

func TestDisplayClock(t *testing.T) {
	assert.Equal(t, "9:30 AM", DisplayClock("09:30:00 AM"))
	assert.Equal(t, "5:15 PM", DisplayClock("17:15:00"))
	assert.Equal(t, "garbage", DisplayClock("garbage"))
}

func TestLocalNow(t *testing.T) {
	now := LocalNow()
	if now.Nanosecond() != 0 {
		t.Errorf("Expected no microseconds, got %d nanoseconds", now.Nanosecond())
	}
}
