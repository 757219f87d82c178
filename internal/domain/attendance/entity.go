package attendance

import "time"

type Status string

const (
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusAbsent     Status = "absent"
)

// Attendance is one row per check-in event. At most one record per user per
// calendar day may have a nil CheckOutTime.
type Attendance struct {
	ID            string
	UserID        string
	CheckInTime   time.Time
	CheckOutTime  *time.Time
	Status        Status
	DurationHours *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined from users for team views
	UserName  *string
	UserEmail *string
}

// Open reports whether this record is an open session.
func (a Attendance) Open() bool {
	return a.CheckOutTime == nil
}
