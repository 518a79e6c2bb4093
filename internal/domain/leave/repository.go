package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetAll(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - interface for leave_balances table.
// Provision and Deduct are single atomic statements; concurrent callers
// never observe a torn write.
type LeaveBalanceRepository interface {
	GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (LeaveBalance, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)
	GetAll(ctx context.Context) ([]LeaveBalance, error)

	// Provision creates the balance row for (employeeID, leaveTypeID) with
	// defaultDays if absent and returns the surviving row. Two concurrent
	// calls for the same pair yield exactly one row.
	Provision(ctx context.Context, employeeID, leaveTypeID string, defaultDays float64) (LeaveBalance, error)

	// Deduct subtracts days from the balance, guarded by
	// remaining_days >= days. Returns ErrInsufficientBalance when the guard
	// fails and ErrLeaveBalanceNotFound semantics are folded into the same
	// zero-row outcome.
	Deduct(ctx context.Context, employeeID, leaveTypeID string, days float64) error
}

// LeaveRequestDetails is a read model joining employee and type names.
type LeaveRequestDetails struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	LeaveTypeID   string
	LeaveTypeName string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	Status        LeaveRequestStatus
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (string, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetAllWithDetails(ctx context.Context) ([]LeaveRequestDetails, error)
	GetPendingWithDetails(ctx context.Context) ([]LeaveRequestDetails, error)

	// UpdateStatusIfPending flips the status in a single conditional write
	// (WHERE status = 'Pending'). Returns ErrLeaveRequestAlreadyProcessed
	// when the guard matched no row.
	UpdateStatusIfPending(ctx context.Context, id string, status LeaveRequestStatus, reviewedBy string, notes *string) error

	// DeleteIfPending removes the request only while it is still Pending.
	DeleteIfPending(ctx context.Context, id string) error
}
