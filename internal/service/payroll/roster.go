package payroll

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

// RosterEntry is one employee's outcome in a batch run: either a
// result or an error, never both.
type RosterEntry struct {
	EmployeeID string
	Result     *payroll.PayrollResult
	Err        error
}

// ComputeForRoster runs ComputeForEmployee independently for every
// profile in the roster. One employee's failure does not abort the
// others; callers get a per-employee entry either way, ordered by
// employee id so the output is stable across runs.
//
// Computations share nothing but the read-only settings, so they run
// concurrently on an errgroup bounded by Workers. Cancelling ctx stops
// scheduling further employees.
func (e *Engine) ComputeForRoster(
	ctx context.Context,
	roster map[string]payroll.CompensationProfile,
	source attendance.Source,
	period payroll.PayPeriod,
	processed map[string]payroll.PeriodSet,
) []RosterEntry {
	ids := make([]string, 0, len(roster))
	for id := range roster {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]RosterEntry, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	if e.Workers > 0 {
		g.SetLimit(e.Workers)
	}

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			select {
			case <-ctx.Done():
				entries[i] = RosterEntry{EmployeeID: id, Err: ctx.Err()}
				return nil
			default:
			}

			profile := roster[id]
			records := source.RecordsForPeriod(id, period.Start(), period.End())

			result, err := e.ComputeForEmployee(profile, records, period, processed[id])
			if err != nil {
				e.logger.Warn("payroll computation failed",
					zap.String("employee_id", id),
					zap.String("period", period.String()),
					zap.Error(err),
				)
				entries[i] = RosterEntry{EmployeeID: id, Err: err}
				return nil
			}

			entries[i] = RosterEntry{EmployeeID: id, Result: &result}
			return nil
		})
	}

	// Workers only ever return nil; the group is used for bounding
	// and joining, not error propagation.
	_ = g.Wait()

	return entries
}
