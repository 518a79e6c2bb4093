package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveTypeNotFound            = errors.New("leave type not found")
	ErrLeaveBalanceNotFound         = errors.New("leave balance not found")
	ErrInsufficientBalance          = errors.New("insufficient leave balance")
	ErrNotRequestOwner              = errors.New("leave request belongs to another employee")
)

// InsufficientBalanceError carries the available/requested amounts so the
// caller can report both. It matches ErrInsufficientBalance under errors.Is.
type InsufficientBalanceError struct {
	Available float64
	Requested float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: available %.1f days, requested %.1f days",
		e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
