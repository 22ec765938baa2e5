package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateRecord     = errors.New("attendance record already exists for this employee and date")
	ErrTimesOnAbsentRecord = errors.New("in/out times are not allowed on an absent record")
	ErrInvalidStatus       = errors.New("invalid attendance status")
	ErrRecordNotFound      = errors.New("attendance record not found")
)
