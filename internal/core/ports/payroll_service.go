package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// PayrollJob is one unit of payroll work: generate the payslip for a single
// employee and period. Jobs are sharded by EmployeeID so re-runs for the same
// employee are processed in order.
type PayrollJob struct {
	CompanyID  string
	EmployeeID string
	Period     string
}

// PayrollService defines the request-facing payroll use-cases. Run enqueues
// one job per active employee and returns the number enqueued.
type PayrollService interface {
	List(ctx context.Context, p domain.Principal, all bool) ([]domain.Payslip, error)
	Run(ctx context.Context, p domain.Principal, period string) (int, error)
}

// PayrollProcessor consumes payroll jobs on the dispatcher workers.
type PayrollProcessor interface {
	Process(ctx context.Context, job PayrollJob) error
}
