package leave

import "time"

// LeaveType entity, reference data owned by admins
type LeaveType struct {
	ID             string
	TypeName       string
	IsPaid         bool
	MaxDaysPerYear int
	CreatedAt      time.Time
}

// LeaveBalance entity, the per-employee per-type entitlement ledger row.
// At most one row exists per (EmployeeID, LeaveTypeID) pair, enforced by a
// unique key in storage.
type LeaveBalance struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	RemainingDays float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status      LeaveRequestStatus
	ReviewedBy  *string
	ReviewedAt  *time.Time
	ReviewNotes *string

	CreatedAt time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	EmployeeName  *string
}

// DaysInclusive returns the number of requested days, counting both the
// start and the end date. Creation-time validation and approval-time
// deduction must both use this formula.
func DaysInclusive(startDate, endDate time.Time) float64 {
	start := startDate.Truncate(24 * time.Hour)
	end := endDate.Truncate(24 * time.Hour)
	return end.Sub(start).Hours()/24 + 1
}
