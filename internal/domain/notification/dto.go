package notification

import "time"

type NotificationResponse struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Message     string    `json:"message"`
	ReferenceID *string   `json:"reference_id,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

// Event is a live update pushed to a subscribed client.
type Event struct {
	Event string               `json:"event"`
	Data  NotificationResponse `json:"data"`
}
