package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

// transportKey is the allowance item that gets prorated against
// attendance instead of being paid verbatim.
const transportKey = "transport"

// EarningsCalculator derives the gross pay components for one period
// from the compensation profile and the aggregated attendance.
type EarningsCalculator struct {
	settings payroll.Settings
}

func NewEarningsCalculator(settings payroll.Settings) *EarningsCalculator {
	return &EarningsCalculator{settings: settings}
}

// dailyRate is basic salary spread over the period's working days.
func (c *EarningsCalculator) dailyRate(profile payroll.CompensationProfile, summary attendance.Summary) decimal.Decimal {
	if summary.WorkingDaysInPeriod == 0 {
		return decimal.Zero
	}
	return profile.BasicSalary.Div(decimal.NewFromInt(int64(summary.WorkingDaysInPeriod)))
}

func (c *EarningsCalculator) hourlyRate(profile payroll.CompensationProfile, summary attendance.Summary) decimal.Decimal {
	if !c.settings.StandardWorkingHours.IsPositive() {
		return decimal.Zero
	}
	return c.dailyRate(profile, summary).Div(c.settings.StandardWorkingHours)
}

// Compute builds the full earnings breakdown.
func (c *EarningsCalculator) Compute(profile payroll.CompensationProfile, summary attendance.Summary) payroll.EarningsBreakdown {
	hourlyRate := c.hourlyRate(profile, summary)

	basic := profile.BasicSalary.Mul(c.settings.BasicSalaryPercentage).Div(hundred)
	houseRent := basic.Mul(c.settings.HouseRentAllowancePct).Div(hundred)

	allowances := make(map[string]decimal.Decimal, len(profile.Allowances))
	for name, amount := range profile.Allowances {
		if name == transportKey {
			allowances[name] = c.proratedTransport(summary)
			continue
		}
		allowances[name] = amount
	}

	overtimeMult := profile.OvertimeRateMultiplier
	if overtimeMult.IsZero() {
		overtimeMult = c.settings.OvertimeRateMultiplier
	}

	breakdown := payroll.EarningsBreakdown{
		Basic:         basic,
		HouseRent:     houseRent,
		Allowances:    allowances,
		OvertimePay:   summary.OvertimeHours.Mul(hourlyRate).Mul(overtimeMult),
		NightShiftPay: summary.NightShiftHours.Mul(hourlyRate).Mul(c.settings.NightShiftRateMultiplier),
		WeekendPay:    summary.WeekendHours.Mul(hourlyRate).Mul(c.settings.WeekendRateMultiplier),
		HolidayPay:    summary.HolidayHours.Mul(hourlyRate).Mul(c.settings.HolidayRateMultiplier),
	}

	breakdown.AttendanceBonus = c.attendanceBonus(profile, summary)
	breakdown.LeaveEncashment = c.leaveEncashment(profile, summary)
	return breakdown
}

// proratedTransport pays the settings transport default in proportion
// to the days actually attended.
func (c *EarningsCalculator) proratedTransport(summary attendance.Summary) decimal.Decimal {
	if summary.WorkingDaysInPeriod == 0 {
		return decimal.Zero
	}
	return c.settings.AllowanceDefaults[transportKey].
		Mul(decimal.NewFromInt(int64(summary.PresentDays))).
		Div(decimal.NewFromInt(int64(summary.WorkingDaysInPeriod)))
}

// attendanceBonus pays a share of basic salary for near-perfect
// attendance with zero late arrivals.
func (c *EarningsCalculator) attendanceBonus(profile payroll.CompensationProfile, summary attendance.Summary) decimal.Decimal {
	if summary.LateDays > 0 {
		return decimal.Zero
	}
	if summary.AttendancePercentage().LessThan(c.settings.AttendanceBonusMinPct) {
		return decimal.Zero
	}
	return profile.BasicSalary.Mul(c.settings.AttendanceBonusPct).Div(hundred)
}

// leaveEncashment converts unused casual leave into pay when the
// employee's leave policy allows it.
func (c *EarningsCalculator) leaveEncashment(profile payroll.CompensationProfile, summary attendance.Summary) decimal.Decimal {
	if !profile.LeavePolicy.LeaveEncashment {
		return decimal.Zero
	}

	entitlement := profile.LeavePolicy.CasualLeave
	taken := summary.AbsentDays + summary.UnrecordedDays
	if taken > entitlement {
		taken = entitlement
	}
	unused := entitlement - taken
	if unused <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(unused)).Mul(c.dailyRate(profile, summary))
}
