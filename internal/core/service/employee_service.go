package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/guard"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

// EmployeeService implements employee CRUD. All queries are scoped to the
// principal's company; role checks live here, not only in the router.
type EmployeeService struct {
	employees ports.EmployeeRepository
	users     ports.AuthRepository
	revoker   ports.TokenRevoker
	logger    zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, users ports.AuthRepository, revoker ports.TokenRevoker, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, users: users, revoker: revoker, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context, p domain.Principal) ([]domain.Employee, error) {
	if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
		return nil, err
	}
	return s.employees.ListByCompany(ctx, p.CompanyID)
}

func (s *EmployeeService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Employee, error) {
	if err := guard.Check(p, ""); err != nil {
		return nil, err
	}
	employee, err := s.employees.FindByID(ctx, p.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if err := guard.Check(p, employee.CompanyID); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, p domain.Principal, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		CompanyID:  p.CompanyID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Position:   input.Position,
		Department: input.Department,
		HireDate:   input.HireDate,
		BaseSalary: input.BaseSalary,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.employees.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("company_id", p.CompanyID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, p domain.Principal, id string, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
		return nil, err
	}

	employee, err := s.employees.FindByID(ctx, p.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if err := guard.Check(p, employee.CompanyID); err != nil {
		return nil, err
	}

	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Email = input.Email
	employee.Position = input.Position
	employee.Department = input.Department
	if !input.HireDate.IsZero() {
		employee.HireDate = input.HireDate
	}
	employee.BaseSalary = input.BaseSalary
	employee.UpdatedAt = time.Now().UTC()

	return s.employees.Update(ctx, employee)
}

// Deactivate marks the employee inactive and, when a login account is linked,
// revokes its outstanding tokens so the account stops working within the
// access-token TTL rather than at the next refresh.
func (s *EmployeeService) Deactivate(ctx context.Context, p domain.Principal, id string) error {
	if err := guard.Check(p, "", domain.RoleAdmin); err != nil {
		return err
	}

	employee, err := s.employees.FindByID(ctx, p.CompanyID, id)
	if err != nil {
		return err
	}
	if err := guard.Check(p, employee.CompanyID); err != nil {
		return err
	}

	employee.Active = false
	employee.UpdatedAt = time.Now().UTC()
	if _, err := s.employees.Update(ctx, employee); err != nil {
		return err
	}

	if employee.UserID != "" {
		if err := s.users.DeactivateUser(ctx, employee.UserID); err != nil {
			return err
		}
		if err := s.revoker.Revoke(ctx, employee.UserID); err != nil {
			s.logger.Error().Err(err).Str("user_id", employee.UserID).Msg("token revocation failed")
		}
	}

	s.logger.Info().Str("employee_id", id).Str("company_id", p.CompanyID).Msg("employee deactivated")
	return nil
}
