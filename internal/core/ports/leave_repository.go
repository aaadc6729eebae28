package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// LeaveRepository persists leave requests, scoped by company.
type LeaveRepository interface {
	Create(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error)
	FindByID(ctx context.Context, companyID, id string) (*domain.LeaveRequest, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]domain.LeaveRequest, error)
	Update(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error)
}
