package leave

import (
	"context"

	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
)

// Service covers the reference-data side of leave management: the leave type
// catalogue and balance listings.
type Service struct {
	types    leave.LeaveTypeRepository
	balances leave.LeaveBalanceRepository
}

func NewService(types leave.LeaveTypeRepository, balances leave.LeaveBalanceRepository) *Service {
	return &Service{types: types, balances: balances}
}

func (s *Service) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	return s.types.Create(ctx, leave.LeaveType{
		TypeName:       req.TypeName,
		IsPaid:         req.IsPaid,
		MaxDaysPerYear: req.MaxDaysPerYear,
	})
}

func (s *Service) GetLeaveType(ctx context.Context, id string) (leave.LeaveType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *Service) GetLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return s.types.GetAll(ctx)
}

func (s *Service) UpdateLeaveType(ctx context.Context, id string, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	leaveType, err := s.types.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveType{}, err
	}

	leaveType.TypeName = req.TypeName
	leaveType.IsPaid = req.IsPaid
	leaveType.MaxDaysPerYear = req.MaxDaysPerYear

	if err := s.types.Update(ctx, leaveType); err != nil {
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

func (s *Service) DeleteLeaveType(ctx context.Context, id string) error {
	return s.types.Delete(ctx, id)
}

func (s *Service) GetMyBalances(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	return s.balances.GetByEmployee(ctx, employeeID)
}

func (s *Service) GetAllBalances(ctx context.Context) ([]leave.LeaveBalance, error) {
	return s.balances.GetAll(ctx)
}
