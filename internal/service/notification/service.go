package notification

import (
	"context"
	"log/slog"

	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

type service struct {
	repo    notification.Repository
	hub     *sse.Hub
	logger  *slog.Logger
	enabled bool
}

// NewService builds the notification sink. The repository is probed once at
// startup: when the notifications table is unreachable the sink degrades to a
// silent no-op so the workflow engines keep working without it.
func NewService(ctx context.Context, repo notification.Repository, hub *sse.Hub, logger *slog.Logger) notification.Service {
	enabled := true
	if err := repo.Probe(ctx); err != nil {
		logger.Warn("notifications disabled, table unreachable", slog.Any("error", err))
		enabled = false
	}

	return &service{
		repo:    repo,
		hub:     hub,
		logger:  logger,
		enabled: enabled,
	}
}

// Notify implements notification.Notifier. Failures are logged and swallowed;
// dispatch must never fail the calling workflow.
func (s *service) Notify(ctx context.Context, userID, message string, kind notification.Kind, referenceID string) {
	if !s.enabled {
		return
	}

	n := &notification.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Message: message,
	}
	if referenceID != "" {
		n.ReferenceID = &referenceID
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Warn("failed to store notification",
			slog.String("user_id", userID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return
	}

	s.hub.Publish(userID, sse.Event{
		UserID: userID,
		Event:  "notification",
		Data:   toResponse(n),
	})
}

// NotifyMany implements notification.Notifier.
func (s *service) NotifyMany(ctx context.Context, userIDs []string, message string, kind notification.Kind, referenceID string) {
	for _, userID := range userIDs {
		s.Notify(ctx, userID, message, kind, referenceID)
	}
}

// List implements notification.Service.
func (s *service) List(ctx context.Context, userID string) (notification.ListResponse, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return notification.ListResponse{}, err
	}

	unread, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return notification.ListResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toResponse(n))
	}

	return notification.ListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

// MarkAllRead implements notification.Service.
func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(userID string) (<-chan notification.Event, func()) {
	raw, unsubscribe := s.hub.Subscribe(userID)

	out := make(chan notification.Event, 10)
	go func() {
		defer close(out)
		for ev := range raw {
			resp, ok := ev.Data.(notification.NotificationResponse)
			if !ok {
				continue
			}
			out <- notification.Event{Event: ev.Event, Data: resp}
		}
	}()

	return out, unsubscribe
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:          n.ID,
		Kind:        n.Kind,
		Message:     n.Message,
		ReferenceID: n.ReferenceID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}
