package postgresql

import (
	"context"

	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_date, end_date, reason, status,
			created_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			NOW()
		) RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&id)

	if err != nil {
		return "", err
	}

	return id, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id,
			   lr.start_date, lr.end_date, lr.reason,
			   lr.status, lr.reviewed_by, lr.reviewed_at, lr.review_notes,
			   lr.created_at,
			   lt.type_name as leave_type_name,
			   e.first_name || ' ' || e.last_name as employee_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var leaveTypeName, employeeName string

	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.ReviewNotes,
		&req.CreatedAt,
		&leaveTypeName, &employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	req.LeaveTypeName = &leaveTypeName
	req.EmployeeName = &employeeName

	return req, nil
}

// GetByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id,
			   lr.start_date, lr.end_date, lr.reason,
			   lr.status, lr.reviewed_by, lr.reviewed_at, lr.review_notes,
			   lr.created_at,
			   lt.type_name as leave_type_name
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var req leave.LeaveRequest
		var leaveTypeName string

		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID,
			&req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.ReviewNotes,
			&req.CreatedAt,
			&leaveTypeName,
		); err != nil {
			return nil, err
		}

		req.LeaveTypeName = &leaveTypeName
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// GetAllWithDetails implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetAllWithDetails(ctx context.Context) ([]leave.LeaveRequestDetails, error) {
	return r.listDetails(ctx, "")
}

// GetPendingWithDetails implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetPendingWithDetails(ctx context.Context) ([]leave.LeaveRequestDetails, error) {
	return r.listDetails(ctx, string(leave.LeaveRequestStatusPending))
}

func (r *leaveRequestRepositoryImpl) listDetails(ctx context.Context, status string) ([]leave.LeaveRequestDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id,
			   e.first_name || ' ' || e.last_name as employee_name,
			   lr.leave_type_id,
			   lt.type_name as leave_type_name,
			   lr.start_date, lr.end_date, lr.reason, lr.status
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE ($1 = '' OR lr.status = $1)
		ORDER BY lr.created_at DESC
		LIMIT 100
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]leave.LeaveRequestDetails, 0)
	for rows.Next() {
		var d leave.LeaveRequestDetails
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.EmployeeName,
			&d.LeaveTypeID, &d.LeaveTypeName,
			&d.StartDate, &d.EndDate, &d.Reason, &d.Status,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// UpdateStatusIfPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy string, notes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), review_notes = $3
		WHERE id = $4
		AND status = 'Pending'
	`

	result, err := q.Exec(ctx, query, status, reviewedBy, notes, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// DeleteIfPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) DeleteIfPending(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1
		AND status = 'Pending'
	`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}
