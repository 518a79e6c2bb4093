package notification

import "time"

// Notification represents a notification entity
type Notification struct {
	ID         string
	EmployeeID string
	Title      string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
