package correction

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type MissingType string

const (
	MissingCheckIn  MissingType = "check_in"
	MissingCheckOut MissingType = "check_out"
)

// Correction is an attendance correction request. Invariant: at most one
// non-rejected correction per (user, attendance date) outstanding at a time.
// The AttendanceID link is best-effort; a correction may target a day with no
// attendance row at all.
type Correction struct {
	ID             string
	UserID         string
	AttendanceDate string // YYYY-MM-DD, local calendar day
	MissingType    MissingType
	RequestedTime  string // HH:MM or HH:MM:SS
	Reason         string
	Status         Status
	AttendanceID   *string
	ApprovedBy     *string
	Remarks        *string
	Applied        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from users for manager/admin listings
	UserName  *string
	UserEmail *string
}

// Resolved reports whether the correction has left the pending state.
func (c Correction) Resolved() bool {
	return c.Status != StatusPending
}
