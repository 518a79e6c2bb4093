package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/attendance"
	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/domain/employee"
	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/attendsys/attendance-backend-go/internal/domain/notification"
	"github.com/attendsys/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient balance carries the amounts for the client
	var insufficient *leave.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		BadRequest(w, "Insufficient leave balance", map[string]string{
			"available_days": fmt.Sprintf("%.1f", insufficient.Available),
			"requested_days": fmt.Sprintf("%.1f", insufficient.Requested),
		})
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenNotFound):
		Unauthorized(w, "Refresh token not found")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance log")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
