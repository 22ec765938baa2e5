package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidTimeFormat is returned when a clock string is not HH:MM.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// Time is a clock-of-day value in minutes since midnight.
type Time int

var sixty = decimal.NewFromInt(60)

// Parse parses an HH:MM clock string (24-hour).
func Parse(s string) (Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return Time(hour*60 + minute), nil
}

// Hour returns the hour component (0..23).
func (t Time) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0..59).
func (t Time) Minute() int {
	return int(t) % 60
}

// AddMinutes returns t shifted forward by m minutes.
func (t Time) AddMinutes(m int) Time {
	return t + Time(m)
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// HoursBetween returns the elapsed hours from in to out as a decimal.
// Spans that cross midnight are not supported and yield zero.
func HoursBetween(in, out Time) decimal.Decimal {
	if out < in {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(out - in)).Div(sixty)
}

// IsLate reports whether an arrival is strictly after the standard
// in-time plus the grace period. Arriving exactly at the grace limit
// does not count as late.
func IsLate(in, standardIn Time, graceMinutes int) bool {
	return in > standardIn.AddMinutes(graceMinutes)
}

// IsEarlyDeparture reports whether a departure is before the standard out-time.
func IsEarlyDeparture(out, standardOut Time) bool {
	return out < standardOut
}

// IsNightShift reports whether a departure time falls in the night window
// (22:00 onward, or up to and including the 06:00 hour).
func IsNightShift(out Time) bool {
	h := out.Hour()
	return h >= 22 || h <= 6
}
