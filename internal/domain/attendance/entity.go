package attendance

import "time"

// AttendanceLog entity
type AttendanceLog struct {
	ID           string
	EmployeeID   string
	ClockInTime  time.Time
	ClockOutTime *time.Time
	TotalHours   *float64

	// Relationships (for responses)
	EmployeeName *string
}
