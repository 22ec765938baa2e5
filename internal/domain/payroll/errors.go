package payroll

import "errors"

// Payroll domain errors
var (
	// Per-employee failures; a batch continues past them.
	ErrEmployeeNotYetJoined   = errors.New("employee joined after the requested pay period")
	ErrPriorPeriodUnprocessed = errors.New("previous pay period has not been processed for this employee")

	// Configuration failures; fatal for the whole batch.
	ErrInvalidTaxSlabs = errors.New("tax slabs must be contiguous and ascending from zero")
	ErrInvalidSettings = errors.New("invalid payroll settings")

	ErrProfileNotFound = errors.New("compensation profile not found")
)
