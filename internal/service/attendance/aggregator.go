package attendance

import (
	"fmt"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
	"github.com/sajidmustaq/school-payroll/internal/pkg/clock"
)

// Aggregator folds one employee's daily attendance records for a pay
// period into an attendance.Summary.
type Aggregator struct {
	settings payroll.Settings
}

func NewAggregator(settings payroll.Settings) *Aggregator {
	return &Aggregator{settings: settings}
}

// Aggregate walks every calendar day of the period and classifies it
// against the employee's duty hours.
//
// Days whose recorded times cannot be parsed are skipped and listed in
// Summary.ExcludedDays rather than failing the whole employee. Working
// days with no record at all are counted as UnrecordedDays: absent for
// deduction purposes, but outside the recorded present/absent totals.
func (a *Aggregator) Aggregate(
	records []attendance.Record,
	profile payroll.CompensationProfile,
	period payroll.PayPeriod,
) (attendance.Summary, error) {
	dutyStart, err := clock.Parse(profile.DutyStart)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("duty start: %w", err)
	}
	dutyEnd, err := clock.Parse(profile.DutyEnd)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("duty end: %w", err)
	}

	grace := profile.LatePolicy.GraceMinutes
	if grace == 0 {
		grace = a.settings.GraceMinutes
	}

	byDate := make(map[string]attendance.Record, len(records))
	for _, r := range records {
		byDate[r.Date.Format("2006-01-02")] = r
	}

	var summary attendance.Summary
	for day := period.Start(); !day.After(period.End()); day = day.AddDate(0, 0, 1) {
		weekend := a.settings.IsWeekend(day)
		holiday := a.settings.IsHoliday(day)
		if !weekend {
			summary.WorkingDaysInPeriod++
		}

		record, ok := byDate[day.Format("2006-01-02")]
		if !ok {
			if !weekend && !holiday {
				summary.UnrecordedDays++
			}
			continue
		}

		if record.Status == attendance.StatusAbsent {
			summary.AbsentDays++
			continue
		}

		if record.InTime == nil || record.OutTime == nil {
			summary.ExcludedDays = append(summary.ExcludedDays, day)
			continue
		}
		in, err := clock.Parse(*record.InTime)
		if err != nil {
			summary.ExcludedDays = append(summary.ExcludedDays, day)
			continue
		}
		out, err := clock.Parse(*record.OutTime)
		if err != nil {
			summary.ExcludedDays = append(summary.ExcludedDays, day)
			continue
		}

		summary.PresentDays++
		hours := clock.HoursBetween(in, out)
		summary.TotalWorkingHours = summary.TotalWorkingHours.Add(hours)
		if hours.GreaterThan(a.settings.StandardWorkingHours) {
			summary.OvertimeHours = summary.OvertimeHours.Add(hours.Sub(a.settings.StandardWorkingHours))
		}

		if clock.IsLate(in, dutyStart, grace) {
			summary.LateDays++
		}
		if clock.IsEarlyDeparture(out, dutyEnd) {
			summary.EarlyOutDays++
		}
		if weekend {
			summary.WeekendDays++
			summary.WeekendHours = summary.WeekendHours.Add(hours)
		}
		if holiday {
			summary.HolidayDays++
			summary.HolidayHours = summary.HolidayHours.Add(hours)
		}
		if clock.IsNightShift(out) {
			summary.NightShiftHours = summary.NightShiftHours.Add(hours)
		}
	}

	return summary, nil
}
