package memory

import (
	"sync"

	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

// ProcessedLedger tracks which pay periods have been processed per
// employee. The engine treats "processed" as an external fact; this
// ledger is the in-memory stand-in for the persistence collaborator
// that owns it.
type ProcessedLedger struct {
	mu        sync.RWMutex
	processed map[string]payroll.PeriodSet
}

func NewProcessedLedger() *ProcessedLedger {
	return &ProcessedLedger{
		processed: make(map[string]payroll.PeriodSet),
	}
}

// MarkProcessed records that a period has been finalized for an employee.
func (l *ProcessedLedger) MarkProcessed(employeeID string, period payroll.PayPeriod) {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, ok := l.processed[employeeID]
	if !ok {
		set = payroll.NewPeriodSet()
		l.processed[employeeID] = set
	}
	set.Add(period)
}

// PeriodsFor returns a copy of the processed set for an employee.
func (l *ProcessedLedger) PeriodsFor(employeeID string) payroll.PeriodSet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	set := payroll.NewPeriodSet()
	for period := range l.processed[employeeID] {
		set.Add(period)
	}
	return set
}
