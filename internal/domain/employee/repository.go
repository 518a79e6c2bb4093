package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Deactivate(ctx context.Context, id string) error
}
