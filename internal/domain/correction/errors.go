package correction

import "errors"

var (
	ErrCorrectionNotFound = errors.New("attendance correction not found")
	ErrAlreadyResolved    = errors.New("attendance correction has already been approved or rejected")
	ErrDuplicatePending   = errors.New("a correction for this date is already awaiting review")
	ErrMissingReason      = errors.New("a reason is required")
	ErrInvalidRequest     = errors.New("attendance date, requested time and reason are required")
)
