package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock converts "HH:MM" (24-hour) to minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeWindow
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidTimeWindow
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidTimeWindow
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeWindow
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
// Values past 24:00 are rendered as-is; a long day is not wrapped.
func FormatClock(minutes float64) string {
	total := int(minutes)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Round2 and Round1 are display-rounding helpers; sums are always taken
// over unrounded values first.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

func Round1(v float64) float64 { return math.Round(v*10) / 10 }
