package employee

import (
	"time"

	"github.com/attendsys/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone,omitempty"`
	HireDate  string  `json:"hire_date"`
	IsAdmin   bool    `json:"is_admin"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedHireDate returns the parsed hire date. Call Validate first.
func (r *CreateEmployeeRequest) ParsedHireDate() time.Time {
	d, _ := validator.IsValidDate(r.HireDate)
	return d
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	HireDate  string  `json:"hire_date"`
	IsAdmin   bool    `json:"is_admin"`
	IsActive  bool    `json:"is_active"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		HireDate:  e.HireDate.Format("2006-01-02"),
		IsAdmin:   e.IsAdmin,
		IsActive:  e.IsActive,
	}
}
