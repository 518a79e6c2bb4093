package postgresql

import (
	"context"
	"fmt"

	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, type_name, is_paid, max_days_per_year, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.TypeName, leaveType.IsPaid, leaveType.MaxDaysPerYear,
	).Scan(&leaveType.ID, &leaveType.CreatedAt)

	if err != nil {
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type_name, is_paid, max_days_per_year, created_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.TypeName, &lt.IsPaid, &lt.MaxDaysPerYear, &lt.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

// GetAll implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type_name, is_paid, max_days_per_year, created_at
		FROM leave_types
		ORDER BY type_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]leave.LeaveType, 0)
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.TypeName, &lt.IsPaid, &lt.MaxDaysPerYear, &lt.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, lt)
	}

	return types, rows.Err()
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, leaveType leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET type_name = $1, is_paid = $2, max_days_per_year = $3
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query,
		leaveType.TypeName, leaveType.IsPaid, leaveType.MaxDaysPerYear, leaveType.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_types
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("leave type with id %s not found: %w", id, leave.ErrLeaveTypeNotFound)
	}

	return nil
}
