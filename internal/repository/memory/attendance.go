package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
)

// AttendanceStore is an in-memory attendance.Source. It enforces the
// one-record-per-employee-per-day invariant on write so the engine can
// rely on it on read.
type AttendanceStore struct {
	mu      sync.RWMutex
	records map[string]map[string]attendance.Record // employeeID -> dateKey -> record
}

func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{
		records: make(map[string]map[string]attendance.Record),
	}
}

func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// Add stores one attendance record. Adding a second record for the
// same employee and date fails with ErrDuplicateRecord.
func (s *AttendanceStore) Add(record attendance.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, ok := s.records[record.EmployeeID]
	if !ok {
		byDate = make(map[string]attendance.Record)
		s.records[record.EmployeeID] = byDate
	}

	key := dateKey(record.Date)
	if _, exists := byDate[key]; exists {
		return attendance.ErrDuplicateRecord
	}
	byDate[key] = record
	return nil
}

// Record implements attendance.Source.
func (s *AttendanceStore) Record(employeeID string, date time.Time) (attendance.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[employeeID][dateKey(date)]
	return record, ok
}

// RecordsForPeriod implements attendance.Source.
func (s *AttendanceStore) RecordsForPeriod(employeeID string, from, to time.Time) []attendance.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []attendance.Record
	for _, record := range s.records[employeeID] {
		if record.Date.Before(from) || record.Date.After(to) {
			continue
		}
		result = append(result, record)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}
