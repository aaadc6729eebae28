package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// AuthRepository defines the identity persistence the auth core consumes.
// ProvisionTenant creates the company, its admin user, and the bootstrap
// employee record as one unit: either all three exist afterwards or none do.
type AuthRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	ProvisionTenant(ctx context.Context, company *domain.Company, user *domain.User, employee *domain.Employee) (*domain.User, error)
	DeactivateUser(ctx context.Context, id string) error
}
