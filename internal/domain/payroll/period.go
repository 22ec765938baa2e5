package payroll

import (
	"fmt"
	"time"
)

// PayPeriod identifies one payroll month.
type PayPeriod struct {
	Month time.Month
	Year  int
}

// Start returns the first day of the period.
func (p PayPeriod) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period.
func (p PayPeriod) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Previous returns the immediately preceding period.
func (p PayPeriod) Previous() PayPeriod {
	prev := p.Start().AddDate(0, -1, 0)
	return PayPeriod{Month: prev.Month(), Year: prev.Year()}
}

func (p PayPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// PeriodSet is the set of periods already processed for one employee.
// It is supplied by the persistence collaborator; the engine only
// consults it to enforce chronological processing.
type PeriodSet map[PayPeriod]struct{}

func NewPeriodSet(periods ...PayPeriod) PeriodSet {
	s := make(PeriodSet, len(periods))
	for _, p := range periods {
		s.Add(p)
	}
	return s
}

func (s PeriodSet) Add(p PayPeriod) {
	s[p] = struct{}{}
}

func (s PeriodSet) Contains(p PayPeriod) bool {
	_, ok := s[p]
	return ok
}
