package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajidmustaq/school-payroll/internal/pkg/validator"
)

// TaxSlab - one progressive income bracket. Bounds are inclusive.
// A zero Max on the final slab means the bracket is open-ended.
type TaxSlab struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	RatePct decimal.Decimal
}

// Unbounded reports whether the slab has no upper bound.
func (s TaxSlab) Unbounded() bool {
	return s.Max.IsZero()
}

// ValidateTaxSlabs checks that slabs are ascending and contiguous from
// zero with no gaps or overlaps. Only the final slab may be open-ended.
func ValidateTaxSlabs(slabs []TaxSlab) error {
	if len(slabs) == 0 {
		return ErrInvalidTaxSlabs
	}
	if !slabs[0].Min.IsZero() {
		return ErrInvalidTaxSlabs
	}

	one := decimal.NewFromInt(1)
	for i, slab := range slabs {
		if slab.RatePct.IsNegative() {
			return ErrInvalidTaxSlabs
		}
		last := i == len(slabs)-1
		if slab.Unbounded() {
			if !last {
				return ErrInvalidTaxSlabs
			}
			continue
		}
		if slab.Max.LessThanOrEqual(slab.Min) {
			return ErrInvalidTaxSlabs
		}
		if !last && !slabs[i+1].Min.Equal(slab.Max.Add(one)) {
			return ErrInvalidTaxSlabs
		}
	}
	return nil
}

// Settings - global payroll configuration, shared and read-only during
// a run. Constructed once by the admin-facing collaborator and passed
// explicitly into every computation.
type Settings struct {
	StandardWorkingHours decimal.Decimal
	StandardInTime       string // HH:MM
	StandardOutTime      string // HH:MM
	GraceMinutes         int

	OvertimeRateMultiplier   decimal.Decimal
	NightShiftRateMultiplier decimal.Decimal
	WeekendRateMultiplier    decimal.Decimal
	HolidayRateMultiplier    decimal.Decimal

	// Default allowance amounts by item name. The "transport" default
	// is the basis for proration against attendance.
	AllowanceDefaults map[string]decimal.Decimal

	PFPercent       decimal.Decimal
	ESIPercent      decimal.Decimal
	ProfessionalTax decimal.Decimal // flat monthly amount

	LateDeductionAfterDays   int
	LateDeductionRatePct     decimal.Decimal
	EarlyOutDeductionRatePct decimal.Decimal

	BasicSalaryPercentage decimal.Decimal // basic share of gross salary
	HouseRentAllowancePct decimal.Decimal

	AllowedLeavesProbationary int
	AllowedLeavesPermanent    int

	AttendanceBonusPct    decimal.Decimal // of basic salary
	AttendanceBonusMinPct decimal.Decimal // attendance threshold

	WeekendDays []time.Weekday
	Holidays    []time.Time

	TaxSlabs []TaxSlab
}

// IsWeekend reports whether d falls on a configured weekend day.
func (s Settings) IsWeekend(d time.Time) bool {
	for _, w := range s.WeekendDays {
		if d.Weekday() == w {
			return true
		}
	}
	return false
}

// IsHoliday reports whether d is a configured holiday.
func (s Settings) IsHoliday(d time.Time) bool {
	for _, h := range s.Holidays {
		if h.Year() == d.Year() && h.Month() == d.Month() && h.Day() == d.Day() {
			return true
		}
	}
	return false
}

// AllowedLeaves returns the unexcused-absence allowance for an
// employment status.
func (s Settings) AllowedLeaves(status EmploymentStatus) int {
	if status == StatusProbationary {
		return s.AllowedLeavesProbationary
	}
	return s.AllowedLeavesPermanent
}

func (s *Settings) Validate() error {
	var errs validator.ValidationErrors

	if !s.StandardWorkingHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "standard_working_hours", Message: "must be positive"})
	}
	if !validator.IsValidClockTime(s.StandardInTime) {
		errs = append(errs, validator.ValidationError{Field: "standard_in_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidClockTime(s.StandardOutTime) {
		errs = append(errs, validator.ValidationError{Field: "standard_out_time", Message: "must be HH:MM"})
	}
	if s.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_minutes", Message: "must be non-negative"})
	}

	multipliers := map[string]decimal.Decimal{
		"overtime_rate_multiplier":    s.OvertimeRateMultiplier,
		"night_shift_rate_multiplier": s.NightShiftRateMultiplier,
		"weekend_rate_multiplier":     s.WeekendRateMultiplier,
		"holiday_rate_multiplier":     s.HolidayRateMultiplier,
	}
	for field, m := range multipliers {
		if m.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	percentages := map[string]decimal.Decimal{
		"pf_percent":                   s.PFPercent,
		"esi_percent":                  s.ESIPercent,
		"late_deduction_rate_pct":      s.LateDeductionRatePct,
		"early_out_deduction_rate_pct": s.EarlyOutDeductionRatePct,
		"basic_salary_percentage":      s.BasicSalaryPercentage,
		"house_rent_allowance_pct":     s.HouseRentAllowancePct,
		"attendance_bonus_pct":         s.AttendanceBonusPct,
		"attendance_bonus_min_pct":     s.AttendanceBonusMinPct,
	}
	for field, p := range percentages {
		pf, _ := p.Float64()
		if !validator.IsPercentage(pf) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be between 0 and 100"})
		}
	}

	if s.ProfessionalTax.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "professional_tax", Message: "must be non-negative"})
	}
	if s.LateDeductionAfterDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_deduction_after_days", Message: "must be non-negative"})
	}
	if s.AllowedLeavesProbationary < 0 || s.AllowedLeavesPermanent < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowed_leaves", Message: "must be non-negative"})
	}
	if len(s.WeekendDays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "weekend_days", Message: "at least one weekend day is required"})
	}

	if err := ValidateTaxSlabs(s.TaxSlabs); err != nil {
		errs = append(errs, validator.ValidationError{Field: "tax_slabs", Message: "must be contiguous and ascending from zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
