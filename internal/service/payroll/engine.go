package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
	attendanceService "github.com/sajidmustaq/school-payroll/internal/service/attendance"
)

// Engine orchestrates one payroll run: attendance aggregation, then
// earnings, then deductions, composed into an immutable PayrollResult.
// The engine holds no mutable state across computations; identical
// inputs always produce an identical result.
type Engine struct {
	settings   payroll.Settings
	aggregator *attendanceService.Aggregator
	earnings   *EarningsCalculator
	deductions *DeductionsCalculator
	logger     *zap.Logger

	// Workers bounds the roster batch concurrency. Zero means one
	// worker per roster entry.
	Workers int
}

// NewEngine validates the settings up front. Invalid tax slabs are a
// configuration error and fail engine construction, so a batch with
// bad slabs never starts.
func NewEngine(settings payroll.Settings, logger *zap.Logger) (*Engine, error) {
	if err := payroll.ValidateTaxSlabs(settings.TaxSlabs); err != nil {
		return nil, payroll.ErrInvalidTaxSlabs
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", payroll.ErrInvalidSettings, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		settings:   settings,
		aggregator: attendanceService.NewAggregator(settings),
		earnings:   NewEarningsCalculator(settings),
		deductions: NewDeductionsCalculator(settings),
		logger:     logger,
	}, nil
}

// ComputeForEmployee runs one employee's payroll for one period.
//
// The employee must have joined on or before the period's last day,
// and the immediately preceding period must already be processed —
// periods are finalized in chronological order so leave balances carry
// forward consistently. The check is waived for the employee's first
// payable period.
func (e *Engine) ComputeForEmployee(
	profile payroll.CompensationProfile,
	records []attendance.Record,
	period payroll.PayPeriod,
	processed payroll.PeriodSet,
) (payroll.PayrollResult, error) {
	if err := profile.Validate(); err != nil {
		return payroll.PayrollResult{}, err
	}
	if profile.JoiningDate.After(period.End()) {
		return payroll.PayrollResult{}, payroll.ErrEmployeeNotYetJoined
	}

	previous := period.Previous()
	if !previous.End().Before(profile.JoiningDate) && !processed.Contains(previous) {
		return payroll.PayrollResult{}, payroll.ErrPriorPeriodUnprocessed
	}

	summary, err := e.aggregator.Aggregate(records, profile, period)
	if err != nil {
		return payroll.PayrollResult{}, fmt.Errorf("aggregate attendance: %w", err)
	}

	earnings := e.earnings.Compute(profile, summary)
	deductions, err := e.deductions.Compute(profile, summary, earnings)
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	totalEarnings := earnings.Total()
	totalDeductions := deductions.Total()
	netPay := totalEarnings.Sub(totalDeductions)

	negative := netPay.IsNegative()
	if negative {
		netPay = decimal.Zero
	}

	return payroll.PayrollResult{
		EmployeeID:          profile.EmployeeID,
		Period:              period,
		Earnings:            earnings,
		Deductions:          deductions,
		TotalEarnings:       totalEarnings,
		TotalDeductions:     totalDeductions,
		NetPay:              netPay,
		NegativeBeforeClamp: negative,
		Attendance:          summary,
	}, nil
}
