package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out for today, cannot check in again")
	ErrNoActiveSession   = errors.New("no active check-in found")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDateRange   = errors.New("start date must be on or before end date")
)
