package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
		{" 10:15 ", 615},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "-1:30", "ab:cd", "10:15:30"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrInvalidTimeWindow, in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "13:30", FormatClock(810.7))
	// Past-midnight totals stay unwrapped.
	assert.Equal(t, "25:10", FormatClock(1510))
}

func TestRoundingHelpers(t *testing.T) {
	assert.Equal(t, 2.63, Round2(2.6349))
	assert.Equal(t, 2.64, Round2(2.636))
	assert.Equal(t, 12.3, Round1(12.34))
}
