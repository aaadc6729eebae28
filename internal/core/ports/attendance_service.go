package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// AttendanceService defines clock-in/clock-out use-cases. ClockIn and
// ClockOut always act on the principal's own employee record; List returns
// the principal's own records unless employeeID names another employee, which
// requires an HR role.
type AttendanceService interface {
	ClockIn(ctx context.Context, p domain.Principal) (*domain.Attendance, error)
	ClockOut(ctx context.Context, p domain.Principal) (*domain.Attendance, error)
	List(ctx context.Context, p domain.Principal, employeeID string) ([]domain.Attendance, error)
}
