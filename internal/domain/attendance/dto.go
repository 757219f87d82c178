package attendance

import (
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/pkg/validator"
)

// RangeFilter bounds a listing to a date range (inclusive dates, local bucket).
type RangeFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f RangeFilter) Validate() error {
	var errs validator.ValidationErrors
	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return errs
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// Bounds returns the [start of start_date, start of the day after end_date)
// window the filter covers, in the given location.
func (f RangeFilter) Bounds(loc *time.Location) (time.Time, time.Time) {
	start, _ := time.ParseInLocation("2006-01-02", f.StartDate, loc)
	end, _ := time.ParseInLocation("2006-01-02", f.EndDate, loc)
	return start, end.AddDate(0, 0, 1)
}

type AttendanceResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	UserName      *string    `json:"user_name,omitempty"`
	UserEmail     *string    `json:"user_email,omitempty"`
	CheckInTime   time.Time  `json:"check_in_time"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
	Status        Status     `json:"status"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
}

// TodayStatusResponse drives the check-in/check-out widget.
type TodayStatusResponse struct {
	State      string              `json:"state"` // "checked-in", "completed" or "no-data"
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

// ReportResponse summarizes a user's attendance over a date range.
type ReportResponse struct {
	TotalDays    int                  `json:"total_days"`
	PresentDays  int                  `json:"present_days"`
	AbsentDays   int                  `json:"absent_days"`
	TotalHours   float64              `json:"total_hours"`
	AverageHours float64              `json:"average_hours"`
	Records      []AttendanceResponse `json:"records"`
}
