package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sajidmustaq/school-payroll/internal/domain/attendance"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

func TestEarningsBasicAndHouseRent(t *testing.T) {
	settings := testSettings(t)
	settings.BasicSalaryPercentage = dec(t, "80")
	settings.HouseRentAllowancePct = dec(t, "40")
	calc := NewEarningsCalculator(settings)

	profile := testProfile(t, "60000")
	summary := attendance.Summary{PresentDays: 22, WorkingDaysInPeriod: 22}

	earnings := calc.Compute(profile, summary)

	assert.True(t, earnings.Basic.Equal(dec(t, "48000")), "basic = %s", earnings.Basic)
	assert.True(t, earnings.HouseRent.Equal(dec(t, "19200")), "house rent = %s", earnings.HouseRent)
}

func TestEarningsTransportProration(t *testing.T) {
	settings := testSettings(t)
	calc := NewEarningsCalculator(settings)

	profile := testProfile(t, "60000")
	profile.Allowances = map[string]decimal.Decimal{
		"transport": dec(t, "2000"),
		"medical":   dec(t, "1500"),
	}
	summary := attendance.Summary{PresentDays: 11, WorkingDaysInPeriod: 22}

	earnings := calc.Compute(profile, summary)

	// transport pays from the settings default, scaled by attendance;
	// every other allowance item passes through verbatim.
	assert.True(t, earnings.Allowances["transport"].Equal(dec(t, "1000")),
		"transport = %s", earnings.Allowances["transport"])
	assert.True(t, earnings.Allowances["medical"].Equal(dec(t, "1500")),
		"medical = %s", earnings.Allowances["medical"])
}

func TestEarningsOvertimeAndPremiums(t *testing.T) {
	settings := testSettings(t)
	calc := NewEarningsCalculator(settings)

	profile := testProfile(t, "44000") // dailyRate 2000, hourlyRate 250
	summary := attendance.Summary{
		PresentDays:         22,
		WorkingDaysInPeriod: 22,
		OvertimeHours:       dec(t, "4"),
		NightShiftHours:     dec(t, "8"),
		WeekendHours:        dec(t, "8"),
		HolidayHours:        dec(t, "8"),
	}

	earnings := calc.Compute(profile, summary)

	assert.True(t, earnings.OvertimePay.Equal(dec(t, "1500")), "overtime = %s", earnings.OvertimePay)     // 4*250*1.5
	assert.True(t, earnings.NightShiftPay.Equal(dec(t, "2500")), "night = %s", earnings.NightShiftPay)    // 8*250*1.25
	assert.True(t, earnings.WeekendPay.Equal(dec(t, "4000")), "weekend = %s", earnings.WeekendPay)        // 8*250*2
	assert.True(t, earnings.HolidayPay.Equal(dec(t, "4000")), "holiday = %s", earnings.HolidayPay)        // 8*250*2
}

func TestEarningsAttendanceBonus(t *testing.T) {
	settings := testSettings(t)
	calc := NewEarningsCalculator(settings)
	profile := testProfile(t, "60000")

	tests := []struct {
		name     string
		present  int
		lateDays int
		want     string
	}{
		{"perfect attendance no lates", 22, 0, "3000"},
		{"above threshold no lates", 21, 0, "3000"}, // 95.45%
		{"below threshold", 20, 0, "0"},             // 90.9%
		{"perfect attendance but late", 22, 1, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := attendance.Summary{
				PresentDays:         tt.present,
				LateDays:            tt.lateDays,
				WorkingDaysInPeriod: 22,
			}
			earnings := calc.Compute(profile, summary)
			assert.True(t, earnings.AttendanceBonus.Equal(dec(t, tt.want)),
				"bonus = %s, want %s", earnings.AttendanceBonus, tt.want)
		})
	}
}

func TestEarningsLeaveEncashment(t *testing.T) {
	settings := testSettings(t)
	calc := NewEarningsCalculator(settings)

	profile := testProfile(t, "44000") // dailyRate 2000
	profile.LeavePolicy = payroll.LeavePolicy{CasualLeave: 10, LeaveEncashment: true}
	summary := attendance.Summary{PresentDays: 20, AbsentDays: 2, WorkingDaysInPeriod: 22}

	earnings := calc.Compute(profile, summary)
	assert.True(t, earnings.LeaveEncashment.Equal(dec(t, "16000")), // 8 unused days * 2000
		"encashment = %s", earnings.LeaveEncashment)

	profile.LeavePolicy.LeaveEncashment = false
	earnings = calc.Compute(profile, summary)
	assert.True(t, earnings.LeaveEncashment.IsZero(), "encashment without the policy = %s", earnings.LeaveEncashment)
}

func TestEarningsTotalSumsEveryComponent(t *testing.T) {
	settings := testSettings(t)
	calc := NewEarningsCalculator(settings)

	profile := testProfile(t, "60000")
	profile.Allowances = map[string]decimal.Decimal{
		"transport": dec(t, "2000"),
		"medical":   dec(t, "1500"),
		"food":      dec(t, "1000"),
	}
	profile.LeavePolicy = payroll.LeavePolicy{CasualLeave: 10, LeaveEncashment: true}
	summary := attendance.Summary{
		PresentDays:         22,
		WorkingDaysInPeriod: 22,
		OvertimeHours:       dec(t, "3"),
		NightShiftHours:     dec(t, "8"),
	}

	earnings := calc.Compute(profile, summary)

	manual := earnings.Basic.
		Add(earnings.HouseRent).
		Add(earnings.OvertimePay).
		Add(earnings.NightShiftPay).
		Add(earnings.WeekendPay).
		Add(earnings.HolidayPay).
		Add(earnings.AttendanceBonus).
		Add(earnings.LeaveEncashment)
	for _, a := range earnings.Allowances {
		manual = manual.Add(a)
	}

	assert.True(t, earnings.Total().Equal(manual), "Total() = %s, manual sum = %s", earnings.Total(), manual)
}
