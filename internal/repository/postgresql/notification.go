package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/notification"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (id, employee_id, title, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, n.ID, n.EmployeeID, n.Title, n.Message, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// CreateBatch creates multiple notifications in one statement
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(notifications))
	valueArgs := make([]interface{}, 0, len(notifications)*6)

	for i, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now()
		}

		base := i * 6
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		valueArgs = append(valueArgs, n.ID, n.EmployeeID, n.Title, n.Message, n.IsRead, n.CreatedAt)
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (id, employee_id, title, message, is_read, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	_, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return fmt.Errorf("failed to batch create notifications: %w", err)
	}

	return nil
}

// GetByEmployee retrieves notifications for an employee, newest first
func (r *notificationRepository) GetByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "employee_id = $1"
	if unreadOnly {
		whereClause += " AND is_read = false"
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, title, message, is_read, created_at
		FROM notifications
		WHERE %s
		ORDER BY created_at DESC
	`, whereClause)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

// GetUnreadCount returns the count of unread notifications for an employee
func (r *notificationRepository) GetUnreadCount(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM notifications WHERE employee_id = $1 AND is_read = false`
	var count int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead marks a notification as read, scoped to its owner
func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1 AND employee_id = $2
	`

	result, err := q.Exec(ctx, query, id, employeeID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead marks all notifications as read for an employee
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = true
		WHERE employee_id = $1 AND is_read = false
	`

	_, err := q.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}
