package leave

import (
	"time"

	"github.com/attendsys/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	TypeName       string `json:"type_name"`
	IsPaid         bool   `json:"is_paid"`
	MaxDaysPerYear int    `json:"max_days_per_year"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TypeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "type_name",
			Message: "type_name is required",
		})
	}
	if len(r.TypeName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "type_name",
			Message: "type_name must not exceed 255 characters",
		})
	}
	if r.MaxDaysPerYear < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_days_per_year",
			Message: "max_days_per_year must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveRequestRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	var startDate, endDate time.Time
	var startOK, endOK bool

	if startDate, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if endDate, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed date range. Call Validate first.
func (r *CreateLeaveRequestRequest) Dates() (time.Time, time.Time) {
	startDate, _ := validator.IsValidDate(r.StartDate)
	endDate, _ := validator.IsValidDate(r.EndDate)
	return startDate, endDate
}

type ReviewLeaveRequestRequest struct {
	Status      string  `json:"status"`
	ReviewNotes *string `json:"review_notes,omitempty"`
}

func (r *ReviewLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(LeaveRequestStatusApproved),
		string(LeaveRequestStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either 'Approved' or 'Rejected'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          float64 `json:"days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewNotes   *string `json:"review_notes,omitempty"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
}

func ToLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		LeaveTypeID:   lr.LeaveTypeID,
		StartDate:     lr.StartDate.Format("2006-01-02"),
		EndDate:       lr.EndDate.Format("2006-01-02"),
		Days:          DaysInclusive(lr.StartDate, lr.EndDate),
		Reason:        lr.Reason,
		Status:        string(lr.Status),
		ReviewedBy:    lr.ReviewedBy,
		ReviewNotes:   lr.ReviewNotes,
		LeaveTypeName: lr.LeaveTypeName,
		EmployeeName:  lr.EmployeeName,
	}
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	RemainingDays float64 `json:"remaining_days"`
}

func ToLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:            b.ID,
		EmployeeID:    b.EmployeeID,
		LeaveTypeID:   b.LeaveTypeID,
		RemainingDays: b.RemainingDays,
	}
}
