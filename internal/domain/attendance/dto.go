package attendance

import "time"

type AttendanceLogResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	TotalHours   *float64   `json:"total_hours,omitempty"`
	EmployeeName *string    `json:"employee_name,omitempty"`
}

func ToAttendanceLogResponse(l AttendanceLog) AttendanceLogResponse {
	return AttendanceLogResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		ClockInTime:  l.ClockInTime,
		ClockOutTime: l.ClockOutTime,
		TotalHours:   l.TotalHours,
		EmployeeName: l.EmployeeName,
	}
}
