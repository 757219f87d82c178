package response

import (
	"errors"
	"net/http"

	"github.com/attendhub/attendhub-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendhub-backend-go/internal/domain/correction"
	"github.com/attendhub/attendhub-backend-go/internal/domain/leave"
	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/domain/user"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager or admin access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for today. Cannot check in again.")
	case errors.Is(err, attendance.ErrNoActiveSession):
		Conflict(w, "No active check-in found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must be on or before end date", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyResolved):
		Conflict(w, "Leave request has already been approved or rejected")
	case errors.Is(err, leave.ErrNotEditable):
		Conflict(w, "Only pending leave requests can be modified")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date cannot be before start date", nil)
	case errors.Is(err, leave.ErrMissingReason):
		BadRequest(w, "A rejection reason is required", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Leave request belongs to another user")

	// Correction domain errors
	case errors.Is(err, correction.ErrCorrectionNotFound):
		NotFound(w, "Attendance correction not found")
	case errors.Is(err, correction.ErrAlreadyResolved):
		Conflict(w, "Attendance correction has already been approved or rejected")
	case errors.Is(err, correction.ErrDuplicatePending):
		Conflict(w, "A correction for this date is already awaiting review")
	case errors.Is(err, correction.ErrMissingReason):
		BadRequest(w, "A reason is required", nil)
	case errors.Is(err, correction.ErrInvalidRequest):
		BadRequest(w, "Attendance date, requested time and reason are required", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
