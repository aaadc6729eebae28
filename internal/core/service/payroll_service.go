package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/guard"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

// deductionRate is the flat withholding applied to gross pay.
const deductionRate = 0.12

// PayrollService implements payslip listing and payroll runs. Job processing
// lives on PayrollProcessor, so the service can take its enqueuer at
// construction time.
type PayrollService struct {
	payslips  ports.PayrollRepository
	employees ports.EmployeeRepository
	queue     ports.PayrollEnqueuer
	logger    zerolog.Logger
}

func NewPayrollService(payslips ports.PayrollRepository, employees ports.EmployeeRepository, queue ports.PayrollEnqueuer, logger zerolog.Logger) *PayrollService {
	return &PayrollService{payslips: payslips, employees: employees, queue: queue, logger: logger}
}

// List returns the company's payslips for HR roles when all is set, otherwise
// the payslips for the principal's own employee record.
func (s *PayrollService) List(ctx context.Context, p domain.Principal, all bool) ([]domain.Payslip, error) {
	if all {
		if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
			return nil, err
		}
		return s.payslips.ListByCompany(ctx, p.CompanyID)
	}

	if err := guard.Check(p, ""); err != nil {
		return nil, err
	}
	employee, err := s.employees.FindByUserID(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, err
	}
	return s.payslips.ListByEmployee(ctx, p.CompanyID, employee.ID)
}

// Run enqueues one payroll job per active employee for the period and returns
// the number of jobs enqueued. Processing happens asynchronously.
func (s *PayrollService) Run(ctx context.Context, p domain.Principal, period string) (int, error) {
	if err := guard.Check(p, "", domain.RoleAdmin); err != nil {
		return 0, err
	}
	if !domain.ValidPeriod(period) {
		return 0, domain.ErrInvalidPeriod
	}

	employees, err := s.employees.ListActiveByCompany(ctx, p.CompanyID)
	if err != nil {
		return 0, err
	}

	for _, e := range employees {
		s.queue.Enqueue(ports.PayrollJob{
			CompanyID:  p.CompanyID,
			EmployeeID: e.ID,
			Period:     period,
		})
	}

	s.logger.Info().Str("company_id", p.CompanyID).Str("period", period).Int("jobs", len(employees)).Msg("payroll run enqueued")
	return len(employees), nil
}

// PayrollProcessor generates payslips for the jobs the dispatcher hands it.
type PayrollProcessor struct {
	payslips  ports.PayrollRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewPayrollProcessor(payslips ports.PayrollRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *PayrollProcessor {
	return &PayrollProcessor{payslips: payslips, employees: employees, logger: logger}
}

// Process generates the payslip for one job. Safe to replay: the payslip is
// upserted by (employee, period).
func (s *PayrollProcessor) Process(ctx context.Context, job ports.PayrollJob) error {
	employee, err := s.employees.FindByID(ctx, job.CompanyID, job.EmployeeID)
	if err != nil {
		return err
	}

	gross := employee.BaseSalary
	deductions := gross * deductionRate
	payslip := &domain.Payslip{
		CompanyID:   job.CompanyID,
		EmployeeID:  job.EmployeeID,
		Period:      job.Period,
		Gross:       gross,
		Deductions:  deductions,
		Net:         gross - deductions,
		GeneratedAt: time.Now().UTC(),
	}

	if _, err := s.payslips.Upsert(ctx, payslip); err != nil {
		return err
	}
	return nil
}
