package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/sajidmustaq/school-payroll/internal/config"
	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
	"github.com/sajidmustaq/school-payroll/internal/fixtures"
	"github.com/sajidmustaq/school-payroll/internal/repository/memory"
	payrollService "github.com/sajidmustaq/school-payroll/internal/service/payroll"
)

// payrollrun is a demo batch caller: it seeds a sample roster and a
// month of attendance, runs the engine over the roster, and prints the
// per-employee success/failure table a payroll screen would show.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger, err := cfg.BuildLogger()
	if err != nil {
		fmt.Println("Error building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings := cfg.Apply(fixtures.DefaultSettings())

	engine, err := payrollService.NewEngine(settings, logger)
	if err != nil {
		logger.Fatal("invalid payroll configuration", zap.Error(err))
	}
	engine.Workers = cfg.App.Workers

	now := time.Now()
	period := payroll.PayPeriod{Month: now.Month(), Year: now.Year()}

	roster := fixtures.SampleRoster()
	store := memory.NewAttendanceStore()
	if err := fixtures.SeedAttendance(store, roster, settings, period); err != nil {
		logger.Fatal("seeding attendance failed", zap.Error(err))
	}

	// New hires have no prior period; mark everyone else's previous
	// month as processed the way a persistence layer would.
	ledger := memory.NewProcessedLedger()
	for id, profile := range roster {
		if profile.JoiningDate.Before(period.Previous().Start()) {
			ledger.MarkProcessed(id, period.Previous())
		}
	}
	processed := make(map[string]payroll.PeriodSet, len(roster))
	for id := range roster {
		processed[id] = ledger.PeriodsFor(id)
	}

	entries := engine.ComputeForRoster(context.Background(), roster, store, period, processed)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "EMPLOYEE\tNAME\tEARNINGS\tDEDUCTIONS\tNET PAY\tSTATUS\n")
	for _, entry := range entries {
		name := roster[entry.EmployeeID].Name
		if entry.Err != nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\tFAILED: %v\n", entry.EmployeeID[:8], name, entry.Err)
			continue
		}
		r := entry.Result
		status := "OK"
		if r.NegativeBeforeClamp {
			status = "OK (net pay clamped to zero)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.EmployeeID[:8], name,
			r.TotalEarnings.StringFixed(2),
			r.TotalDeductions.StringFixed(2),
			r.NetPay.StringFixed(2),
			status,
		)
	}
	w.Flush()
}
