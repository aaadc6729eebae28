package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/guard"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

// AttendanceService implements clock-in/clock-out and attendance listing.
type AttendanceService struct {
	attendance ports.AttendanceRepository
	employees  ports.EmployeeRepository
	logger     zerolog.Logger
}

func NewAttendanceService(attendance ports.AttendanceRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{attendance: attendance, employees: employees, logger: logger}
}

// ClockIn opens an attendance record for the principal's employee record.
// A second clock-in on the same day reports ErrAlreadyClockedIn.
func (s *AttendanceService) ClockIn(ctx context.Context, p domain.Principal) (*domain.Attendance, error) {
	if err := guard.Check(p, ""); err != nil {
		return nil, err
	}

	employee, err := s.employees.FindByUserID(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	day := domain.DayKey(now)

	open, err := s.attendance.FindOpen(ctx, p.CompanyID, employee.ID, day)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrAlreadyClockedIn
	}

	record := &domain.Attendance{
		CompanyID:  p.CompanyID,
		EmployeeID: employee.ID,
		Date:       day,
		ClockIn:    now,
	}
	return s.attendance.Create(ctx, record)
}

// ClockOut closes today's open attendance record and computes worked hours.
func (s *AttendanceService) ClockOut(ctx context.Context, p domain.Principal) (*domain.Attendance, error) {
	if err := guard.Check(p, ""); err != nil {
		return nil, err
	}

	employee, err := s.employees.FindByUserID(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record, err := s.attendance.FindOpen(ctx, p.CompanyID, employee.ID, domain.DayKey(now))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotClockedIn
	}

	record.ClockOut = &now
	record.Hours = now.Sub(record.ClockIn).Hours()
	return s.attendance.Update(ctx, record)
}

// List returns the principal's own records when employeeID is empty;
// another employee's records require an HR role. Either way the query is
// bound to the principal's company.
func (s *AttendanceService) List(ctx context.Context, p domain.Principal, employeeID string) ([]domain.Attendance, error) {
	if employeeID == "" {
		if err := guard.Check(p, ""); err != nil {
			return nil, err
		}
		employee, err := s.employees.FindByUserID(ctx, p.CompanyID, p.UserID)
		if err != nil {
			return nil, err
		}
		return s.attendance.ListByEmployee(ctx, p.CompanyID, employee.ID)
	}

	if err := guard.Check(p, "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
		return nil, err
	}
	return s.attendance.ListByEmployee(ctx, p.CompanyID, employeeID)
}
