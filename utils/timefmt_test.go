package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:30", 570},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "-1:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, mins := range []int{0, 540, 570, 1439} {
		got, err := ParseClock(FormatClock(mins))
		require.NoError(t, err)
		assert.Equal(t, mins, got)
	}
}

func TestIntervalLabel(t *testing.T) {
	assert.Equal(t, "9:00 AM - 10:30 AM", IntervalLabel(540, 630))
	assert.Equal(t, "12:00 PM - 1:00 PM", IntervalLabel(720, 780))
	assert.Equal(t, "12:00 AM - 1:00 AM", IntervalLabel(0, 60))
}
