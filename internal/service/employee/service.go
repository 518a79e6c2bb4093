package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendsys/attendance-backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	employees employee.EmployeeRepository
}

func NewService(employees employee.EmployeeRepository) *Service {
	return &Service{employees: employees}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.employees.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	return s.employees.Create(ctx, employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Phone:        req.Phone,
		HireDate:     req.ParsedHireDate(),
		IsAdmin:      req.IsAdmin,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return s.employees.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.Email != emp.Email {
		if other, err := s.employees.GetByEmail(ctx, req.Email); err == nil && other.ID != emp.ID {
			return employee.Employee{}, employee.ErrEmailExists
		} else if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, fmt.Errorf("failed to check existing email: %w", err)
		}
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.Email = req.Email
	emp.Phone = req.Phone
	emp.HireDate = req.ParsedHireDate()
	emp.IsAdmin = req.IsAdmin

	if err := s.employees.Update(ctx, emp); err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.employees.Deactivate(ctx, id)
}
