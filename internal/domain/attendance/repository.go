package attendance

import "time"

// Source is a read-only view over recorded attendance, queryable per
// employee. The payroll engine never writes attendance; persistence
// belongs to the collaborator that owns the records.
type Source interface {
	// Record returns the record for one employee on one calendar day.
	Record(employeeID string, date time.Time) (Record, bool)

	// RecordsForPeriod returns all records for one employee with
	// from <= date <= to, ordered by date ascending.
	RecordsForPeriod(employeeID string, from, to time.Time) []Record
}
