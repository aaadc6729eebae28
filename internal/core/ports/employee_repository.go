package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// EmployeeRepository persists employee records. Every query is scoped by
// companyID; implementations must never return records from another tenant.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, companyID, id string) (*domain.Employee, error)
	FindByUserID(ctx context.Context, companyID, userID string) (*domain.Employee, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Employee, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
}
