package postgresql

import (
	"context"

	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetByEmployeeAndType implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type_id, remaining_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID).Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID,
		&balance.RemainingDays, &balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// GetByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type_id, remaining_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY leave_type_id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var balance leave.LeaveBalance
		if err := rows.Scan(
			&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID,
			&balance.RemainingDays, &balance.CreatedAt, &balance.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, rows.Err()
}

// GetAll implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type_id, remaining_days, created_at, updated_at
		FROM leave_balances
		ORDER BY employee_id, leave_type_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var balance leave.LeaveBalance
		if err := rows.Scan(
			&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID,
			&balance.RemainingDays, &balance.CreatedAt, &balance.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, rows.Err()
}

// Provision implements leave.LeaveBalanceRepository. The upsert keeps the
// existing remaining_days when the row already exists, so two concurrent
// provisions for the same pair both return the single surviving row.
func (r *leaveBalanceRepositoryImpl) Provision(ctx context.Context, employeeID, leaveTypeID string, defaultDays float64) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, leave_type_id, remaining_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (employee_id, leave_type_id)
		DO UPDATE SET updated_at = leave_balances.updated_at
		RETURNING id, employee_id, leave_type_id, remaining_days, created_at, updated_at
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, defaultDays).Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID,
		&balance.RemainingDays, &balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// Deduct implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Deduct(ctx context.Context, employeeID, leaveTypeID string, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET remaining_days = remaining_days - $3,
			updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2
		AND remaining_days >= $3
	`

	result, err := q.Exec(ctx, query, employeeID, leaveTypeID, days)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}
