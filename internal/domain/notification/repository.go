package notification

import "context"

// Repository defines data access for notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID string) ([]*Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, id, userID string) error
	MarkAllAsRead(ctx context.Context, userID string) error

	// Probe checks once at startup whether the notifications table is
	// reachable. When it is not, the service degrades to a no-op sink.
	Probe(ctx context.Context) error
}

// Notifier is the engine-facing sink. Dispatch is best-effort: failures are
// logged and swallowed, never propagated to the primary workflow.
type Notifier interface {
	Notify(ctx context.Context, userID, message string, kind Kind, referenceID string)
	NotifyMany(ctx context.Context, userIDs []string, message string, kind Kind, referenceID string)
}

// Service adds the recipient-facing operations on top of the sink.
type Service interface {
	Notifier

	List(ctx context.Context, userID string) (ListResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error

	// Subscribe registers a live-update stream for a user. The returned
	// unsubscribe func must be invoked on teardown.
	Subscribe(userID string) (<-chan Event, func())
}
