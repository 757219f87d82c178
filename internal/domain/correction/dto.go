package correction

import (
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	AttendanceDate string `json:"attendance_date"`
	MissingType    string `json:"missing_type"`
	RequestedTime  string `json:"requested_time"`
	Reason         string `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "attendance_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.MissingType != string(MissingCheckIn) && r.MissingType != string(MissingCheckOut) {
		errs = append(errs, validator.ValidationError{Field: "missing_type", Message: "must be check_in or check_out"})
	}
	if !validator.IsValidClockTime(r.RequestedTime) {
		errs = append(errs, validator.ValidationError{Field: "requested_time", Message: "must be a valid time (HH:MM or HH:MM:SS)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveRequest struct {
	Remarks *string `json:"remarks,omitempty"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type CorrectionResponse struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	UserName       *string     `json:"user_name,omitempty"`
	UserEmail      *string     `json:"user_email,omitempty"`
	AttendanceDate string      `json:"attendance_date"`
	MissingType    MissingType `json:"missing_type"`
	RequestedTime  string      `json:"requested_time"`
	Reason         string      `json:"reason"`
	Status         Status      `json:"status"`
	AttendanceID   *string     `json:"attendance_id,omitempty"`
	ApprovedBy     *string     `json:"approved_by,omitempty"`
	Remarks        *string     `json:"remarks,omitempty"`
	Applied        bool        `json:"applied"`
	CreatedAt      time.Time   `json:"created_at"`
}
