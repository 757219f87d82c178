package notification

import "time"

// Kind represents the category of a notification
type Kind string

const (
	KindLeave      Kind = "leave"
	KindAttendance Kind = "attendance"
	KindCorrection Kind = "correction"
	KindSystem     Kind = "system"
)

// Notification is a best-effort side effect of the workflow engines. It is
// never required for the correctness of the primary workflows.
type Notification struct {
	ID          string
	UserID      string
	Kind        Kind
	Message     string
	ReferenceID *string
	IsRead      bool
	CreatedAt   time.Time
}
