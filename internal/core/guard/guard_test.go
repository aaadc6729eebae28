package guard

import (
	"errors"
	"testing"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

func principal(role string) domain.Principal {
	return domain.Principal{
		UserID:    "user_1",
		Email:     "u@acme.test",
		Role:      role,
		CompanyID: "company_1",
	}
}

func TestCheck_AnyAuthenticated(t *testing.T) {
	if err := Check(principal(domain.RoleEmployee), ""); err != nil {
		t.Fatalf("expected allow for authenticated principal, got %v", err)
	}
}

func TestCheck_Unauthenticated(t *testing.T) {
	if err := Check(domain.Principal{}, ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty principal, got %v", err)
	}
}

func TestCheck_RoleAllowed(t *testing.T) {
	if err := Check(principal(domain.RoleHRManager), "", domain.RoleAdmin, domain.RoleHRManager); err != nil {
		t.Fatalf("expected allow for hr_manager, got %v", err)
	}
}

func TestCheck_RoleDenied(t *testing.T) {
	if err := Check(principal(domain.RoleEmployee), "", domain.RoleAdmin); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for employee on admin operation, got %v", err)
	}
}

func TestCheck_TenantMatch(t *testing.T) {
	if err := Check(principal(domain.RoleEmployee), "company_1"); err != nil {
		t.Fatalf("expected allow for matching tenant, got %v", err)
	}
}

func TestCheck_TenantMismatchDeniesRegardlessOfRole(t *testing.T) {
	if err := Check(principal(domain.RoleAdmin), "company_2", domain.RoleAdmin); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized across tenants, got %v", err)
	}
}
