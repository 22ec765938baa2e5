package clock

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Time
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"17:30", 1050, true},
		{"23:59", 1439, true},
		{" 08:15 ", 495, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9", 0, false},
		{"nine:thirty", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("Parse(%q) returned error %v, want %v", c.input, err, c.want)
			} else if got != c.want {
				t.Errorf("Parse(%q) = %d, want %d", c.input, got, c.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("Parse(%q) = %d, want error", c.input, got)
		} else if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidTimeFormat", c.input, err)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		in, out string
		want    string
	}{
		{"09:00", "17:00", "8"},
		{"09:00", "17:30", "8.5"},
		{"09:00", "09:00", "0"},
		{"22:00", "06:00", "0"}, // cross-midnight unsupported
	}
	for _, c := range cases {
		in, _ := Parse(c.in)
		out, _ := Parse(c.out)
		got := HoursBetween(in, out)
		if got.String() != c.want {
			t.Errorf("HoursBetween(%s, %s) = %s, want %s", c.in, c.out, got, c.want)
		}
	}
}

func TestIsLateGraceBoundary(t *testing.T) {
	standardIn, _ := Parse("09:00")

	atGrace, _ := Parse("09:10")
	if IsLate(atGrace, standardIn, 10) {
		t.Error("arrival exactly at grace limit must not be late")
	}

	pastGrace, _ := Parse("09:11")
	if !IsLate(pastGrace, standardIn, 10) {
		t.Error("arrival one minute past grace limit must be late")
	}
}

func TestIsEarlyDeparture(t *testing.T) {
	standardOut, _ := Parse("17:00")

	early, _ := Parse("16:59")
	if !IsEarlyDeparture(early, standardOut) {
		t.Error("16:59 against 17:00 must be early")
	}
	onTime, _ := Parse("17:00")
	if IsEarlyDeparture(onTime, standardOut) {
		t.Error("17:00 against 17:00 must not be early")
	}
}

func TestIsNightShift(t *testing.T) {
	cases := []struct {
		out  string
		want bool
	}{
		{"22:00", true},
		{"23:45", true},
		{"02:30", true},
		{"06:59", true},
		{"07:00", false},
		{"17:00", false},
		{"21:59", false},
	}
	for _, c := range cases {
		out, _ := Parse(c.out)
		if got := IsNightShift(out); got != c.want {
			t.Errorf("IsNightShift(%s) = %v, want %v", c.out, got, c.want)
		}
	}
}
