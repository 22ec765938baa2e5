package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Record - one employee's attendance for one calendar day.
// At most one record may exist per (employee, date); in/out times are
// set only when the status is present.
type Record struct {
	EmployeeID string
	Date       time.Time
	Status     Status
	InTime     *string // HH:MM
	OutTime    *string // HH:MM
}

// Validate checks the record's structural invariants.
func (r Record) Validate() error {
	if r.Status == StatusAbsent && (r.InTime != nil || r.OutTime != nil) {
		return ErrTimesOnAbsentRecord
	}
	if r.Status != StatusPresent && r.Status != StatusAbsent {
		return ErrInvalidStatus
	}
	return nil
}

// Summary - aggregate of one employee's attendance over one pay period.
type Summary struct {
	PresentDays         int
	AbsentDays          int
	UnrecordedDays      int // working days with no record at all
	LateDays            int
	EarlyOutDays        int
	WeekendDays         int
	HolidayDays         int
	WorkingDaysInPeriod int

	TotalWorkingHours decimal.Decimal
	OvertimeHours     decimal.Decimal
	NightShiftHours   decimal.Decimal
	WeekendHours      decimal.Decimal
	HolidayHours      decimal.Decimal

	// Days skipped because a recorded time could not be parsed.
	// Kept so callers can warn about incomplete attendance.
	ExcludedDays []time.Time
}

// AttendancePercentage returns present days over working days, in percent.
func (s Summary) AttendancePercentage() decimal.Decimal {
	if s.WorkingDaysInPeriod == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.PresentDays)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(s.WorkingDaysInPeriod)))
}
