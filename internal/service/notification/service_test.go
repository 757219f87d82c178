package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	stored    []*notification.Notification
	probeErr  error
	createErr error
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	n.CreatedAt = time.Now()
	r.stored = append(r.stored, n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range r.stored {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) UnreadCount(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range r.stored {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id, userID string) error {
	for _, n := range r.stored {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(_ context.Context, userID string) error {
	for _, n := range r.stored {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Probe(_ context.Context) error {
	return r.probeErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotify_StoresAndCountsUnread(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(context.Background(), repo, sse.NewHub(), testLogger())

	svc.Notify(context.Background(), "user-1", "Your leave request has been approved.", notification.KindLeave, "leave-1")

	result, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, 1, result.UnreadCount)
	assert.Equal(t, notification.KindLeave, result.Notifications[0].Kind)
	require.NotNil(t, result.Notifications[0].ReferenceID)
	assert.Equal(t, "leave-1", *result.Notifications[0].ReferenceID)
}

func TestNotify_DisabledSinkIsSilent(t *testing.T) {
	repo := &fakeNotificationRepo{probeErr: errors.New("relation does not exist")}
	svc := NewService(context.Background(), repo, sse.NewHub(), testLogger())

	svc.Notify(context.Background(), "user-1", "hello", notification.KindSystem, "")

	assert.Empty(t, repo.stored)
}

func TestNotify_StoreFailureIsSwallowed(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("connection reset")}
	svc := NewService(context.Background(), repo, sse.NewHub(), testLogger())

	// Must not panic or propagate; the workflow engines never see this error.
	svc.Notify(context.Background(), "user-1", "hello", notification.KindSystem, "")
}

func TestSubscribe_ReceivesPublishedNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(context.Background(), repo, sse.NewHub(), testLogger())

	events, cleanup := svc.Subscribe("user-1")
	defer cleanup()

	svc.Notify(context.Background(), "user-1", "ping", notification.KindSystem, "")

	select {
	case ev := <-events:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, "ping", ev.Data.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a live event")
	}
}

func TestMarkRead_ScopedToOwner(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(context.Background(), repo, sse.NewHub(), testLogger())
	ctx := context.Background()

	svc.Notify(ctx, "user-1", "msg", notification.KindSystem, "")
	id := repo.stored[0].ID

	err := svc.MarkRead(ctx, "user-2", id)
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)

	err = svc.MarkRead(ctx, "user-1", id)
	require.NoError(t, err)

	result, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.UnreadCount)
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(context.Background(), repo, sse.NewHub(), testLogger())
	ctx := context.Background()

	svc.Notify(ctx, "user-1", "one", notification.KindSystem, "")
	svc.Notify(ctx, "user-1", "two", notification.KindSystem, "")

	require.NoError(t, svc.MarkAllRead(ctx, "user-1"))

	result, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.UnreadCount)
}
