package postgresql

import (
	"context"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/attendance"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CreateIfNotOpen implements attendance.AttendanceRepository. The insert is
// guarded against an existing open log in the same statement.
func (r *attendanceRepositoryImpl) CreateIfNotOpen(ctx context.Context, employeeID string, clockIn time.Time) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (id, employee_id, clock_in_time)
		SELECT uuidv7(), $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_logs
			WHERE employee_id = $1 AND clock_out_time IS NULL
		)
		RETURNING id, employee_id, clock_in_time, clock_out_time, total_hours
	`

	var log attendance.AttendanceLog
	err := q.QueryRow(ctx, query, employeeID, clockIn).Scan(
		&log.ID, &log.EmployeeID, &log.ClockInTime, &log.ClockOutTime, &log.TotalHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceLog{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceLog{}, err
	}

	return log, nil
}

// CloseOpen implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CloseOpen(ctx context.Context, employeeID string, clockOut time.Time) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET clock_out_time = $2,
			total_hours = EXTRACT(EPOCH FROM ($2 - clock_in_time)) / 3600
		WHERE employee_id = $1 AND clock_out_time IS NULL
		RETURNING id, employee_id, clock_in_time, clock_out_time, total_hours
	`

	var log attendance.AttendanceLog
	err := q.QueryRow(ctx, query, employeeID, clockOut).Scan(
		&log.ID, &log.EmployeeID, &log.ClockInTime, &log.ClockOutTime, &log.TotalHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceLog{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceLog{}, err
	}

	return log, nil
}

// GetByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, clock_in_time, clock_out_time, total_hours
		FROM attendance_logs
		WHERE employee_id = $1
		ORDER BY clock_in_time DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]attendance.AttendanceLog, 0)
	for rows.Next() {
		var log attendance.AttendanceLog
		if err := rows.Scan(&log.ID, &log.EmployeeID, &log.ClockInTime, &log.ClockOutTime, &log.TotalHours); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// GetAllWithEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetAllWithEmployee(ctx context.Context) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT al.id, al.employee_id, al.clock_in_time, al.clock_out_time, al.total_hours,
			   e.first_name || ' ' || e.last_name as employee_name
		FROM attendance_logs al
		JOIN employees e ON al.employee_id = e.id
		ORDER BY al.clock_in_time DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]attendance.AttendanceLog, 0)
	for rows.Next() {
		var log attendance.AttendanceLog
		var employeeName string
		if err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.ClockInTime, &log.ClockOutTime, &log.TotalHours,
			&employeeName,
		); err != nil {
			return nil, err
		}
		log.EmployeeName = &employeeName
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
