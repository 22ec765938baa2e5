package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
	"github.com/sajidmustaq/school-payroll/internal/repository/memory"
)

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("fixtures: bad decimal literal " + s)
	}
	return d
}

// DefaultSettings returns the payroll configuration a fresh school
// starts from: a 09:00-17:00 eight-hour day, Saturday/Sunday weekend,
// and three progressive tax slabs.
func DefaultSettings() payroll.Settings {
	return payroll.Settings{
		StandardWorkingHours: dec("8"),
		StandardInTime:       "09:00",
		StandardOutTime:      "17:00",
		GraceMinutes:         10,

		OvertimeRateMultiplier:   dec("1.5"),
		NightShiftRateMultiplier: dec("1.25"),
		WeekendRateMultiplier:    dec("2"),
		HolidayRateMultiplier:    dec("2"),

		AllowanceDefaults: map[string]decimal.Decimal{
			"transport": dec("2000"),
			"medical":   dec("1500"),
		},

		PFPercent:       dec("8"),
		ESIPercent:      dec("0.75"),
		ProfessionalTax: dec("200"),

		LateDeductionAfterDays:   3,
		LateDeductionRatePct:     dec("50"),
		EarlyOutDeductionRatePct: dec("25"),

		BasicSalaryPercentage: dec("100"),
		HouseRentAllowancePct: dec("40"),

		AllowedLeavesProbationary: 2,
		AllowedLeavesPermanent:    4,

		AttendanceBonusPct:    dec("5"),
		AttendanceBonusMinPct: dec("95"),

		WeekendDays: []time.Weekday{time.Saturday, time.Sunday},

		TaxSlabs: []payroll.TaxSlab{
			{Min: dec("0"), Max: dec("600000"), RatePct: dec("0")},
			{Min: dec("600001"), Max: dec("1200000"), RatePct: dec("5")},
			{Min: dec("1200001"), RatePct: dec("10")}, // open-ended
		},
	}
}

// SampleRoster builds a small demo roster keyed by employee id.
func SampleRoster() map[string]payroll.CompensationProfile {
	profiles := []payroll.CompensationProfile{
		{
			EmployeeID:             uuid.NewString(),
			Name:                   "Ayesha Khan",
			BasicSalary:            dec("60000"),
			OvertimeRateMultiplier: dec("1.5"),
			Allowances: map[string]decimal.Decimal{
				"transport": dec("2000"),
				"medical":   dec("1500"),
			},
			WorkingDaysPerWeek: 5,
			DutyStart:          "09:00",
			DutyEnd:            "17:00",
			LatePolicy:         payroll.LatePolicy{GraceMinutes: 10},
			LeavePolicy:        payroll.LeavePolicy{CasualLeave: 10, SickLeave: 8, AnnualLeave: 14, LeaveEncashment: true},
			EmploymentStatus:   payroll.StatusPermanent,
			JoiningDate:        time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID:             uuid.NewString(),
			Name:                   "Bilal Ahmed",
			BasicSalary:            dec("45000"),
			OvertimeRateMultiplier: dec("1.5"),
			Allowances: map[string]decimal.Decimal{
				"transport": dec("2000"),
			},
			Deductions: map[string]decimal.Decimal{
				"staff loan": dec("3000"),
			},
			WorkingDaysPerWeek: 5,
			DutyStart:          "08:00",
			DutyEnd:            "16:00",
			LatePolicy:         payroll.LatePolicy{GraceMinutes: 15},
			LeavePolicy:        payroll.LeavePolicy{CasualLeave: 6, SickLeave: 6, AnnualLeave: 10},
			EmploymentStatus:   payroll.StatusProbationary,
			JoiningDate:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	roster := make(map[string]payroll.CompensationProfile, len(profiles))
	for _, p := range profiles {
		roster[p.EmployeeID] = p
	}
	return roster
}

// SeedAttendance fills the store with a plausible month of records for
// every employee in the roster: present on working days with a couple
// of absences and one late arrival each.
func SeedAttendance(
	store *memory.AttendanceStore,
	roster map[string]payroll.CompensationProfile,
	settings payroll.Settings,
	period payroll.PayPeriod,
) error {
	for _, profile := range roster {
		workingDay := 0
		for day := period.Start(); !day.After(period.End()); day = day.AddDate(0, 0, 1) {
			if settings.IsWeekend(day) {
				continue
			}
			workingDay++

			record := attendance.Record{
				EmployeeID: profile.EmployeeID,
				Date:       day,
				Status:     attendance.StatusPresent,
				InTime:     strPtr(profile.DutyStart),
				OutTime:    strPtr(profile.DutyEnd),
			}
			switch workingDay {
			case 5, 12:
				record.Status = attendance.StatusAbsent
				record.InTime = nil
				record.OutTime = nil
			case 8:
				in, _ := time.Parse("15:04", profile.DutyStart)
				record.InTime = strPtr(in.Add(25 * time.Minute).Format("15:04"))
			}

			if err := store.Add(record); err != nil {
				return err
			}
		}
	}
	return nil
}
