package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/guard"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

// LeaveService implements leave requests and HR decisions.
type LeaveService struct {
	leaves    ports.LeaveRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewLeaveService(leaves ports.LeaveRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *LeaveService {
	return &LeaveService{leaves: leaves, employees: employees, logger: logger}
}

// Request files a pending leave request for the principal's employee record.
func (s *LeaveService) Request(ctx context.Context, p domain.Principal, input ports.RequestLeaveInput) (*domain.LeaveRequest, error) {
	if err := guard.Check(p, ""); err != nil {
		return nil, err
	}

	days := domain.LeaveDays(input.StartDate, input.EndDate)
	if days == 0 {
		return nil, domain.ErrInvalidLeaveRange
	}

	employee, err := s.employees.FindByUserID(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	request := &domain.LeaveRequest{
		CompanyID:  p.CompanyID,
		EmployeeID: employee.ID,
		Type:       input.Type,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Days:       days,
		Status:     domain.LeavePending,
		Reason:     input.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.leaves.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("leave_id", created.ID).Str("employee_id", employee.ID).Int("days", days).Msg("leave requested")
	return created, nil
}

// List returns the company's requests for HR roles when all is set, otherwise
// the principal's own requests.
func (s *LeaveService) List(ctx context.Context, p domain.Principal, all bool) ([]domain.LeaveRequest, error) {
	if all {
		if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
			return nil, err
		}
		return s.leaves.ListByCompany(ctx, p.CompanyID)
	}

	if err := guard.Check(p, ""); err != nil {
		return nil, err
	}
	employee, err := s.employees.FindByUserID(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, err
	}
	return s.leaves.ListByEmployee(ctx, p.CompanyID, employee.ID)
}

// Decide approves or rejects a pending request.
func (s *LeaveService) Decide(ctx context.Context, p domain.Principal, id string, status domain.LeaveStatus) (*domain.LeaveRequest, error) {
	if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
		return nil, err
	}
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return nil, domain.ErrLeaveNotPending
	}

	request, err := s.leaves.FindByID(ctx, p.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if err := guard.Check(p, request.CompanyID); err != nil {
		return nil, err
	}
	if request.Status != domain.LeavePending {
		return nil, domain.ErrLeaveNotPending
	}

	request.Status = status
	request.DecidedBy = p.UserID
	request.UpdatedAt = time.Now().UTC()

	decided, err := s.leaves.Update(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("leave_id", id).Str("status", string(status)).Str("decided_by", p.UserID).Msg("leave decided")
	return decided, nil
}
