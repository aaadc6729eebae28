package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// AttendanceRepository persists attendance records, scoped by company.
type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error)
	FindOpen(ctx context.Context, companyID, employeeID, date string) (*domain.Attendance, error)
	Update(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]domain.Attendance, error)
}
