package notification

import "context"

// Service is the notification sink used by the rest of the system.
// Enqueue is fire-and-forget: delivery problems are logged, never returned,
// and must not fail the operation that triggered the notification.
type Service interface {
	Enqueue(ctx context.Context, employeeID, title, message string)
	List(ctx context.Context, employeeID string, unreadOnly bool) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, employeeID string) (int, error)
	MarkAsRead(ctx context.Context, employeeID, notificationID string) error
	MarkAllAsRead(ctx context.Context, employeeID string) error
	Subscribe(ctx context.Context, employeeID string) (<-chan NotificationResponse, func())
	Stop()
}
