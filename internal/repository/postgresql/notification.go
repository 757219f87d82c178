package postgresql

import (
	"context"
	"fmt"

	"github.com/attendhub/attendhub-backend-go/internal/domain/notification"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, user_id, kind, message, reference_id, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.UserID, n.Kind, n.Message, n.ReferenceID, n.IsRead,
	).Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListByUser implements notification.Repository.
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, message, reference_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.ReferenceID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// UnreadCount implements notification.Repository.
func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	var count int
	if err := q.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead implements notification.Repository.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, userID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

// MarkAllAsRead implements notification.Repository.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

	if _, err := q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}

// Probe implements notification.Repository.
func (r *notificationRepository) Probe(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM notifications LIMIT 1`

	var id string
	if err := q.QueryRow(ctx, query).Scan(&id); err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("notifications table unavailable: %w", err)
	}

	return nil
}
