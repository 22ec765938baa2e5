package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sajidmustaq/school-payroll/internal/domain/payroll"
)

type Config struct {
	App     AppConfig
	Payroll PayrollConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
	Workers  int
}

// PayrollConfig carries the admin-configurable statutory values that
// override the shipped defaults.
type PayrollConfig struct {
	PFPercent              decimal.Decimal
	ESIPercent             decimal.Decimal
	ProfessionalTax        decimal.Decimal
	GraceMinutes           int
	LateDeductionAfterDays int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	config := &Config{}

	workers, err := strconv.Atoi(getEnv("PAYROLL_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKERS: %w", err)
	}
	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Workers:  workers,
	}

	pfPercent, err := getDecimalEnv("PAYROLL_PF_PERCENT", "8")
	if err != nil {
		return nil, err
	}
	esiPercent, err := getDecimalEnv("PAYROLL_ESI_PERCENT", "0.75")
	if err != nil {
		return nil, err
	}
	professionalTax, err := getDecimalEnv("PAYROLL_PROFESSIONAL_TAX", "200")
	if err != nil {
		return nil, err
	}
	graceMinutes, err := strconv.Atoi(getEnv("PAYROLL_GRACE_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_GRACE_MINUTES: %w", err)
	}
	lateAfterDays, err := strconv.Atoi(getEnv("PAYROLL_LATE_DEDUCTION_AFTER_DAYS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_DEDUCTION_AFTER_DAYS: %w", err)
	}

	config.Payroll = PayrollConfig{
		PFPercent:              pfPercent,
		ESIPercent:             esiPercent,
		ProfessionalTax:        professionalTax,
		GraceMinutes:           graceMinutes,
		LateDeductionAfterDays: lateAfterDays,
	}

	return config, nil
}

// Apply overlays the configured statutory values onto a settings value.
func (c *Config) Apply(settings payroll.Settings) payroll.Settings {
	settings.PFPercent = c.Payroll.PFPercent
	settings.ESIPercent = c.Payroll.ESIPercent
	settings.ProfessionalTax = c.Payroll.ProfessionalTax
	settings.GraceMinutes = c.Payroll.GraceMinutes
	settings.LateDeductionAfterDays = c.Payroll.LateDeductionAfterDays
	return settings
}

// BuildLogger returns a zap logger appropriate for the configured
// environment.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	if c.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDecimalEnv(key, fallback string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
