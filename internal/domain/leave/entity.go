package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveTypes lists the accepted leave_type values.
var LeaveTypes = []string{"sick", "personal", "casual", "paid", "unpaid"}

// LeaveRequest entity. Invariant: StartDate <= EndDate. Only pending requests
// may be edited or deleted; approved/rejected are terminal.
type LeaveRequest struct {
	ID              string
	UserID          string
	LeaveType       string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          Status
	ApprovedBy      *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined from users for manager/admin listings
	UserName  *string
	UserEmail *string
}

// Resolved reports whether the request has left the pending state.
func (r LeaveRequest) Resolved() bool {
	return r.Status != StatusPending
}
