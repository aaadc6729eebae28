package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// PayrollRepository persists payslips, scoped by company. Upsert replaces any
// existing payslip for the same (employee, period), making payroll runs
// idempotent.
type PayrollRepository interface {
	Upsert(ctx context.Context, payslip *domain.Payslip) (*domain.Payslip, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Payslip, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]domain.Payslip, error)
}
