package attendance

import (
	"context"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/attendance"
)

type Service struct {
	logs attendance.AttendanceRepository
}

func NewService(logs attendance.AttendanceRepository) *Service {
	return &Service{logs: logs}
}

// ClockIn opens a new attendance log for the employee. The repository guard
// rejects a second open log.
func (s *Service) ClockIn(ctx context.Context, employeeID string) (attendance.AttendanceLog, error) {
	return s.logs.CreateIfNotOpen(ctx, employeeID, time.Now())
}

// ClockOut closes the employee's open log and stamps the worked hours.
func (s *Service) ClockOut(ctx context.Context, employeeID string) (attendance.AttendanceLog, error) {
	return s.logs.CloseOpen(ctx, employeeID, time.Now())
}

func (s *Service) GetMyLogs(ctx context.Context, employeeID string) ([]attendance.AttendanceLog, error) {
	return s.logs.GetByEmployee(ctx, employeeID)
}

func (s *Service) GetAllLogs(ctx context.Context) ([]attendance.AttendanceLog, error) {
	return s.logs.GetAllWithEmployee(ctx)
}
