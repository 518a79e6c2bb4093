package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for attendance_logs table
type AttendanceRepository interface {
	// CreateIfNotOpen inserts a clock-in row unless an open log (no clock-out)
	// already exists for the employee. Returns ErrAlreadyClockedIn otherwise.
	CreateIfNotOpen(ctx context.Context, employeeID string, clockIn time.Time) (AttendanceLog, error)

	// CloseOpen stamps the employee's open log with clockOut and the computed
	// total hours in one conditional write. Returns ErrNotClockedIn when no
	// open log exists.
	CloseOpen(ctx context.Context, employeeID string, clockOut time.Time) (AttendanceLog, error)

	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceLog, error)
	GetAllWithEmployee(ctx context.Context) ([]AttendanceLog, error)
}
