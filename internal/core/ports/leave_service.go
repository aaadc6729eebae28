package ports

import (
	"context"
	"time"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// RequestLeaveInput carries a new leave request.
type RequestLeaveInput struct {
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// LeaveService defines leave use-cases. Request acts on the principal's own
// employee record; Decide requires an HR role and only moves pending
// requests.
type LeaveService interface {
	Request(ctx context.Context, p domain.Principal, input RequestLeaveInput) (*domain.LeaveRequest, error)
	List(ctx context.Context, p domain.Principal, all bool) ([]domain.LeaveRequest, error)
	Decide(ctx context.Context, p domain.Principal, id string, status domain.LeaveStatus) (*domain.LeaveRequest, error)
}
