package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
)

// Notifier is the slice of the notification service the leave workflow needs.
type Notifier interface {
	Enqueue(ctx context.Context, employeeID, title, message string)
}

// RequestService owns the leave request lifecycle: submission, review and
// cancellation. All balance mutations go through conditional writes so that
// concurrent reviews of the same request or balance cannot double-spend.
type RequestService struct {
	tx          database.TxManager
	types       leave.LeaveTypeRepository
	balances    leave.LeaveBalanceRepository
	requests    leave.LeaveRequestRepository
	notifier    Notifier
	defaultDays float64
}

func NewRequestService(
	tx database.TxManager,
	types leave.LeaveTypeRepository,
	balances leave.LeaveBalanceRepository,
	requests leave.LeaveRequestRepository,
	notifier Notifier,
	defaultDays float64,
) *RequestService {
	return &RequestService{
		tx:          tx,
		types:       types,
		balances:    balances,
		requests:    requests,
		notifier:    notifier,
		defaultDays: defaultDays,
	}
}

// CreateRequest submits a new leave request for the acting employee. The
// request is stored as Pending; no balance is deducted until approval. The
// balance is checked up front so obviously oversized requests fail fast, and
// a missing balance row is provisioned with the type's annual entitlement.
func (s *RequestService) CreateRequest(ctx context.Context, actor auth.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, endDate := req.Dates()
	days := leave.DaysInclusive(startDate, endDate)

	leaveType, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	balance, err := s.balances.GetByEmployeeAndType(ctx, actor.EmployeeID, leaveType.ID)
	if err != nil {
		if !errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			return leave.LeaveRequest{}, fmt.Errorf("failed to get leave balance: %w", err)
		}
		balance, err = s.balances.Provision(ctx, actor.EmployeeID, leaveType.ID, s.entitlement(leaveType))
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to provision leave balance: %w", err)
		}
	}

	if balance.RemainingDays < days {
		return leave.LeaveRequest{}, &leave.InsufficientBalanceError{
			Available: balance.RemainingDays,
			Requested: days,
		}
	}

	request := leave.LeaveRequest{
		EmployeeID:  actor.EmployeeID,
		LeaveTypeID: leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      leave.LeaveRequestStatusPending,
	}

	id, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.requests.GetByID(ctx, id)
}

// Review approves or rejects a pending request. Approval flips the status
// and deducts the balance inside one transaction; both writes are guarded,
// so a request can be consumed at most once and a balance can never go
// negative. Rejection flips the status only. The requester is notified after
// commit, best effort.
func (s *RequestService) Review(ctx context.Context, actor auth.Context, requestID string, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	status := leave.LeaveRequestStatus(req.Status)
	days := leave.DaysInclusive(request.StartDate, request.EndDate)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requests.UpdateStatusIfPending(txCtx, requestID, status, actor.EmployeeID, req.ReviewNotes); err != nil {
			return err
		}
		if status == leave.LeaveRequestStatusApproved {
			if err := s.balances.Deduct(txCtx, request.EmployeeID, request.LeaveTypeID, days); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, leave.ErrInsufficientBalance) {
			// Re-read outside the rolled-back transaction to report the
			// amount actually available.
			available := 0.0
			if balance, balErr := s.balances.GetByEmployeeAndType(ctx, request.EmployeeID, request.LeaveTypeID); balErr == nil {
				available = balance.RemainingDays
			}
			return leave.LeaveRequest{}, &leave.InsufficientBalanceError{
				Available: available,
				Requested: days,
			}
		}
		return leave.LeaveRequest{}, err
	}

	s.notifyReview(ctx, request, status, req.ReviewNotes)

	return s.requests.GetByID(ctx, requestID)
}

// CancelRequest removes the acting employee's own request while it is still
// Pending. Reviewed requests are part of the ledger history and stay put.
func (s *RequestService) CancelRequest(ctx context.Context, actor auth.Context, requestID string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.EmployeeID != actor.EmployeeID {
		return leave.ErrNotRequestOwner
	}

	return s.requests.DeleteIfPending(ctx, requestID)
}

// GetRequest returns a single request. Non-admins can only see their own.
func (s *RequestService) GetRequest(ctx context.Context, actor auth.Context, requestID string) (leave.LeaveRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !actor.IsAdmin && request.EmployeeID != actor.EmployeeID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

// GetMyRequests lists the acting employee's requests, newest first.
func (s *RequestService) GetMyRequests(ctx context.Context, actor auth.Context) ([]leave.LeaveRequest, error) {
	return s.requests.GetByEmployee(ctx, actor.EmployeeID)
}

// GetAllRequests lists every request with employee and type names joined.
func (s *RequestService) GetAllRequests(ctx context.Context) ([]leave.LeaveRequestDetails, error) {
	return s.requests.GetAllWithDetails(ctx)
}

// GetPendingRequests lists requests still awaiting review.
func (s *RequestService) GetPendingRequests(ctx context.Context) ([]leave.LeaveRequestDetails, error) {
	return s.requests.GetPendingWithDetails(ctx)
}

func (s *RequestService) entitlement(leaveType leave.LeaveType) float64 {
	if leaveType.MaxDaysPerYear > 0 {
		return float64(leaveType.MaxDaysPerYear)
	}
	return s.defaultDays
}

func (s *RequestService) notifyReview(ctx context.Context, request leave.LeaveRequest, status leave.LeaveRequestStatus, notes *string) {
	var title string
	switch status {
	case leave.LeaveRequestStatusApproved:
		title = "Leave request approved"
	case leave.LeaveRequestStatusRejected:
		title = "Leave request rejected"
	default:
		return
	}

	message := fmt.Sprintf("Your leave request from %s to %s has been %s.",
		request.StartDate.Format("2006-01-02"),
		request.EndDate.Format("2006-01-02"),
		string(status),
	)
	if notes != nil && *notes != "" {
		message += " Notes: " + *notes
	}

	s.notifier.Enqueue(ctx, request.EmployeeID, title, message)
}
