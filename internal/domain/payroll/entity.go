package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/pkg/validator"
)

// EmploymentStatus enum
type EmploymentStatus string

const (
	StatusProbationary EmploymentStatus = "probationary"
	StatusPermanent    EmploymentStatus = "permanent"
)

// LatePolicy - per-employee late arrival rules.
type LatePolicy struct {
	GraceMinutes           int
	DeductionPerMinute     decimal.Decimal
	MaxLateMinutesPerMonth int
}

// LeavePolicy - annual leave entitlements in days.
type LeavePolicy struct {
	CasualLeave     int
	SickLeave       int
	AnnualLeave     int
	MaternityLeave  int
	LeaveEncashment bool
}

// CompensationProfile - one employee's compensation configuration.
// Owned by the roster collaborator; immutable for the duration of a
// payroll run.
type CompensationProfile struct {
	EmployeeID             string
	Name                   string
	BasicSalary            decimal.Decimal
	OvertimeRateMultiplier decimal.Decimal // default 1.5
	Allowances             map[string]decimal.Decimal
	Deductions             map[string]decimal.Decimal // fixed monthly items
	WorkingDaysPerWeek     int                        // 1..7
	DutyStart              string                     // HH:MM
	DutyEnd                string                     // HH:MM
	LatePolicy             LatePolicy
	LeavePolicy            LeavePolicy
	EmploymentStatus       EmploymentStatus
	JoiningDate            time.Time
}

func (p *CompensationProfile) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(p.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if p.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if p.WorkingDaysPerWeek < 1 || p.WorkingDaysPerWeek > 7 {
		errs = append(errs, validator.ValidationError{Field: "working_days_per_week", Message: "must be between 1 and 7"})
	}
	if !validator.IsValidClockTime(p.DutyStart) {
		errs = append(errs, validator.ValidationError{Field: "duty_start", Message: "must be HH:MM"})
	}
	if !validator.IsValidClockTime(p.DutyEnd) {
		errs = append(errs, validator.ValidationError{Field: "duty_end", Message: "must be HH:MM"})
	}
	if p.EmploymentStatus != StatusProbationary && p.EmploymentStatus != StatusPermanent {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be 'probationary' or 'permanent'"})
	}
	if p.JoiningDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EarningsBreakdown - gross pay components for one period.
type EarningsBreakdown struct {
	Basic           decimal.Decimal
	HouseRent       decimal.Decimal
	Allowances      map[string]decimal.Decimal
	OvertimePay     decimal.Decimal
	NightShiftPay   decimal.Decimal
	WeekendPay      decimal.Decimal
	HolidayPay      decimal.Decimal
	AttendanceBonus decimal.Decimal
	LeaveEncashment decimal.Decimal
}

// Total sums every earnings component. There are no terms outside
// this breakdown.
func (e EarningsBreakdown) Total() decimal.Decimal {
	total := e.Basic.
		Add(e.HouseRent).
		Add(e.OvertimePay).
		Add(e.NightShiftPay).
		Add(e.WeekendPay).
		Add(e.HolidayPay).
		Add(e.AttendanceBonus).
		Add(e.LeaveEncashment)
	for _, amount := range e.Allowances {
		total = total.Add(amount)
	}
	return total
}

// DeductionsBreakdown - deduction components for one period.
type DeductionsBreakdown struct {
	ProvidentFund     decimal.Decimal
	ProfessionalTax   decimal.Decimal
	IncomeTax         decimal.Decimal
	ESI               decimal.Decimal
	LateDeduction     decimal.Decimal
	EarlyOutDeduction decimal.Decimal
	LeaveDeduction    decimal.Decimal
	Other             map[string]decimal.Decimal // fixed items from the profile
}

// Total sums every deduction component.
func (d DeductionsBreakdown) Total() decimal.Decimal {
	total := d.ProvidentFund.
		Add(d.ProfessionalTax).
		Add(d.IncomeTax).
		Add(d.ESI).
		Add(d.LateDeduction).
		Add(d.EarlyOutDeduction).
		Add(d.LeaveDeduction)
	for _, amount := range d.Other {
		total = total.Add(amount)
	}
	return total
}

// PayrollResult - the computed outcome for one employee and one period.
// Created fresh on every run, never mutated in place; re-running with
// identical inputs yields an identical result.
type PayrollResult struct {
	EmployeeID      string
	Period          PayPeriod
	Earnings        EarningsBreakdown
	Deductions      DeductionsBreakdown
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal // clamped at zero

	// NegativeBeforeClamp marks results whose deductions exceeded
	// earnings, so callers can highlight them for review.
	NegativeBeforeClamp bool

	Attendance attendance.Summary
}
