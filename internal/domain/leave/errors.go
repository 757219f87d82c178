package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyResolved      = errors.New("leave request has already been approved or rejected")
	ErrNotEditable          = errors.New("only pending leave requests can be modified")
	ErrInvalidDateRange     = errors.New("end date cannot be before start date")
	ErrMissingReason        = errors.New("a rejection reason is required")
	ErrInvalidLeaveType     = errors.New("invalid leave type")
	ErrNotOwner             = errors.New("leave request belongs to another user")
)
