package postgresql

import (
	"context"
	"fmt"

	"github.com/attendsys/attendance-backend-go/internal/domain/employee"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, password_hash,
			phone, hire_date, is_admin, is_active,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, TRUE,
			NOW(), NOW()
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.PasswordHash,
		emp.Phone, emp.HireDate, emp.IsAdmin,
	).Scan(&emp.ID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, email, password_hash,
			   phone, hire_date, is_admin, is_active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PasswordHash,
		&emp.Phone, &emp.HireDate, &emp.IsAdmin, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, email, password_hash,
			   phone, hire_date, is_admin, is_active,
			   created_at, updated_at
		FROM employees
		WHERE LOWER(email) = LOWER($1)
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PasswordHash,
		&emp.Phone, &emp.HireDate, &emp.IsAdmin, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, email, password_hash,
			   phone, hire_date, is_admin, is_active,
			   created_at, updated_at
		FROM employees
		ORDER BY last_name, first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PasswordHash,
			&emp.Phone, &emp.HireDate, &emp.IsAdmin, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3,
			phone = $4, hire_date = $5, is_admin = $6,
			updated_at = NOW()
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		emp.FirstName, emp.LastName, emp.Email,
		emp.Phone, emp.HireDate, emp.IsAdmin,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("employee with id %s not found: %w", id, employee.ErrEmployeeNotFound)
	}

	return nil
}
