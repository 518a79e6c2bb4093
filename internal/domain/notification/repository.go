package notification

import "context"

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, notifications []*Notification) error
	GetByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]*Notification, error)
	GetUnreadCount(ctx context.Context, employeeID string) (int, error)
	MarkAsRead(ctx context.Context, id string, employeeID string) error
	MarkAllAsRead(ctx context.Context, employeeID string) error
}
