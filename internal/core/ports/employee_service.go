package ports

import (
	"context"
	"time"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// EmployeeInput carries the writable fields of an employee record.
type EmployeeInput struct {
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department string
	HireDate   time.Time
	BaseSalary float64
}

// EmployeeService defines employee use-cases. Every operation receives the
// request principal and enforces role and tenant scope itself.
type EmployeeService interface {
	List(ctx context.Context, p domain.Principal) ([]domain.Employee, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Employee, error)
	Create(ctx context.Context, p domain.Principal, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, p domain.Principal, id string, input EmployeeInput) (*domain.Employee, error)
	Deactivate(ctx context.Context, p domain.Principal, id string) error
}
