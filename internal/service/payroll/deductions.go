package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

// DeductionsCalculator derives the deduction components for one
// period: statutory items, attendance-based penalties, and the fixed
// items carried on the profile.
type DeductionsCalculator struct {
	settings payroll.Settings
}

func NewDeductionsCalculator(settings payroll.Settings) *DeductionsCalculator {
	return &DeductionsCalculator{settings: settings}
}

// Compute builds the full deductions breakdown. The earnings breakdown
// is an input because ESI is charged on gross pay and PF on the basic
// component.
func (c *DeductionsCalculator) Compute(
	profile payroll.CompensationProfile,
	summary attendance.Summary,
	earnings payroll.EarningsBreakdown,
) (payroll.DeductionsBreakdown, error) {
	incomeTax, err := MonthlyIncomeTax(profile.BasicSalary.Mul(twelve), c.settings.TaxSlabs)
	if err != nil {
		return payroll.DeductionsBreakdown{}, fmt.Errorf("income tax: %w", err)
	}

	dailyRate := decimal.Zero
	if summary.WorkingDaysInPeriod > 0 {
		dailyRate = profile.BasicSalary.Div(decimal.NewFromInt(int64(summary.WorkingDaysInPeriod)))
	}

	other := make(map[string]decimal.Decimal, len(profile.Deductions))
	for name, amount := range profile.Deductions {
		other[name] = amount
	}

	return payroll.DeductionsBreakdown{
		ProvidentFund:     earnings.Basic.Mul(c.settings.PFPercent).Div(hundred),
		ProfessionalTax:   c.settings.ProfessionalTax,
		IncomeTax:         incomeTax,
		ESI:               earnings.Total().Mul(c.settings.ESIPercent).Div(hundred),
		LateDeduction:     c.lateDeduction(summary, dailyRate),
		EarlyOutDeduction: c.earlyOutDeduction(summary, dailyRate),
		LeaveDeduction:    c.leaveDeduction(profile, summary, dailyRate),
		Other:             other,
	}, nil
}

// lateDeduction charges a fraction of the daily rate for every late
// day past the configured threshold.
func (c *DeductionsCalculator) lateDeduction(summary attendance.Summary, dailyRate decimal.Decimal) decimal.Decimal {
	excess := summary.LateDays - c.settings.LateDeductionAfterDays
	if excess <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(excess)).
		Mul(dailyRate).
		Mul(c.settings.LateDeductionRatePct).
		Div(hundred)
}

func (c *DeductionsCalculator) earlyOutDeduction(summary attendance.Summary, dailyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(summary.EarlyOutDays)).
		Mul(dailyRate).
		Mul(c.settings.EarlyOutDeductionRatePct).
		Div(hundred)
}

// leaveDeduction charges a full daily rate for every absence past the
// allowance for the employee's employment status. Working days with no
// record at all count as absences here.
func (c *DeductionsCalculator) leaveDeduction(
	profile payroll.CompensationProfile,
	summary attendance.Summary,
	dailyRate decimal.Decimal,
) decimal.Decimal {
	allowed := c.settings.AllowedLeaves(profile.EmploymentStatus)
	taken := summary.AbsentDays + summary.UnrecordedDays
	if taken <= allowed {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(taken - allowed)).Mul(dailyRate)
}
