package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyIncomeTax computes the progressive-slab annual income tax for
// an annualized salary and prorates it to a monthly figure.
//
// Each slab taxes the span min(annualSalary, slab.Max) - slab.Min + 1
// at its marginal rate; slab bounds are inclusive. Slabs must be
// contiguous and ascending from zero or the call fails with
// ErrInvalidTaxSlabs.
func MonthlyIncomeTax(annualSalary decimal.Decimal, slabs []payroll.TaxSlab) (decimal.Decimal, error) {
	if err := payroll.ValidateTaxSlabs(slabs); err != nil {
		return decimal.Zero, err
	}
	if !annualSalary.IsPositive() {
		return decimal.Zero, nil
	}

	tax := decimal.Zero
	for _, slab := range slabs {
		if annualSalary.LessThanOrEqual(slab.Min) {
			break
		}
		upper := annualSalary
		if !slab.Unbounded() {
			upper = decimal.Min(annualSalary, slab.Max)
		}
		taxableInSlab := upper.Sub(slab.Min).Add(one)
		tax = tax.Add(taxableInSlab.Mul(slab.RatePct).Div(hundred))
	}

	return tax.Div(twelve), nil
}
