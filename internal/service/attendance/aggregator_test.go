package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

// August 2024: 31 days, 22 non-weekend days against a Sat/Sun weekend.
var testPeriod = payroll.PayPeriod{Month: time.August, Year: 2024}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testSettings(t *testing.T) payroll.Settings {
	t.Helper()
	return payroll.Settings{
		StandardWorkingHours: dec(t, "8"),
		StandardInTime:       "09:00",
		StandardOutTime:      "17:00",
		GraceMinutes:         10,
		WeekendDays:          []time.Weekday{time.Saturday, time.Sunday},
	}
}

func testProfile() payroll.CompensationProfile {
	return payroll.CompensationProfile{
		EmployeeID:       "emp-001",
		DutyStart:        "09:00",
		DutyEnd:          "17:00",
		LatePolicy:       payroll.LatePolicy{GraceMinutes: 10},
		EmploymentStatus: payroll.StatusPermanent,
	}
}

func present(day int, in, out string) domain.Record {
	return domain.Record{
		EmployeeID: "emp-001",
		Date:       time.Date(2024, time.August, day, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusPresent,
		InTime:     &in,
		OutTime:    &out,
	}
}

func absent(day int) domain.Record {
	return domain.Record{
		EmployeeID: "emp-001",
		Date:       time.Date(2024, time.August, day, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusAbsent,
	}
}

func TestAggregateEmptyMonth(t *testing.T) {
	agg := NewAggregator(testSettings(t))

	summary, err := agg.Aggregate(nil, testProfile(), testPeriod)
	require.NoError(t, err)

	assert.Equal(t, 22, summary.WorkingDaysInPeriod)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 0, summary.AbsentDays)
	// no record on a working day is unrecorded, not absent
	assert.Equal(t, 22, summary.UnrecordedDays)
}

func TestAggregateClassifiesDays(t *testing.T) {
	agg := NewAggregator(testSettings(t))

	records := []domain.Record{
		present(1, "09:00", "17:00"),  // Thursday, regular day
		present(2, "09:11", "17:00"),  // late by one minute past grace
		present(5, "09:10", "17:00"),  // exactly at grace limit, not late
		present(6, "09:00", "16:30"),  // early departure
		present(7, "09:00", "19:00"),  // two hours overtime
		absent(8),                     // explicit absence
		present(9, "09:00", "23:00"),  // night shift, six hours overtime
		present(10, "09:00", "17:00"), // Saturday work
	}

	summary, err := agg.Aggregate(records, testProfile(), testPeriod)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.EarlyOutDays)
	assert.Equal(t, 1, summary.WeekendDays)
	assert.Equal(t, 22, summary.WorkingDaysInPeriod)

	assert.True(t, summary.OvertimeHours.Equal(dec(t, "8")), "overtime = %s", summary.OvertimeHours)
	assert.True(t, summary.WeekendHours.Equal(dec(t, "8")), "weekend hours = %s", summary.WeekendHours)
	assert.True(t, summary.NightShiftHours.Equal(dec(t, "14")), "night hours = %s", summary.NightShiftHours)

	// 6 recorded working days remain unrecorded-free; the other
	// working days of the month carry no record
	assert.Equal(t, 22-7, summary.UnrecordedDays)
}

func TestAggregateExcludesUnparseableTimes(t *testing.T) {
	agg := NewAggregator(testSettings(t))

	bad := present(1, "9am", "17:00")
	good := present(2, "09:00", "17:00")

	summary, err := agg.Aggregate([]domain.Record{bad, good}, testProfile(), testPeriod)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.PresentDays)
	require.Len(t, summary.ExcludedDays, 1)
	assert.Equal(t, 1, summary.ExcludedDays[0].Day())
	// the excluded day is not silently treated as unrecorded
	assert.Equal(t, 22-2, summary.UnrecordedDays)
}

func TestAggregateHolidays(t *testing.T) {
	settings := testSettings(t)
	settings.Holidays = []time.Time{
		time.Date(2024, time.August, 14, 0, 0, 0, 0, time.UTC), // Wednesday
		time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC), // Thursday
	}
	agg := NewAggregator(settings)

	// worked the first holiday, skipped the second
	records := []domain.Record{present(14, "09:00", "17:00")}

	summary, err := agg.Aggregate(records, testProfile(), testPeriod)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.HolidayDays)
	assert.True(t, summary.HolidayHours.Equal(dec(t, "8")), "holiday hours = %s", summary.HolidayHours)
	// an unworked holiday is neither absent nor unrecorded
	assert.Equal(t, 22-2, summary.UnrecordedDays)
}

func TestAggregateRecordedTotalsStayWithinWorkingDays(t *testing.T) {
	agg := NewAggregator(testSettings(t))

	var records []domain.Record
	day := testPeriod.Start()
	settings := testSettings(t)
	for ; !day.After(testPeriod.End()); day = day.AddDate(0, 0, 1) {
		if settings.IsWeekend(day) {
			continue
		}
		if day.Day()%5 == 0 {
			records = append(records, absent(day.Day()))
		} else {
			records = append(records, present(day.Day(), "09:00", "17:00"))
		}
	}

	summary, err := agg.Aggregate(records, testProfile(), testPeriod)
	require.NoError(t, err)

	assert.LessOrEqual(t, summary.PresentDays+summary.AbsentDays, summary.WorkingDaysInPeriod)
	assert.Equal(t, 0, summary.UnrecordedDays)
}

func TestAggregateRejectsBadDutyHours(t *testing.T) {
	agg := NewAggregator(testSettings(t))

	profile := testProfile()
	profile.DutyStart = "nine"

	_, err := agg.Aggregate(nil, profile, testPeriod)
	assert.Error(t, err)
}
