package leave

import (
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of sick, personal, casual, paid, unpaid"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// EditRequest carries the fields an owner may change while a request is pending.
type EditRequest struct {
	LeaveType *string `json:"leave_type,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	UserEmail       *string `json:"user_email,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Reason          string  `json:"reason"`
	Status          Status  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
