package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

func invokeRBAC(t *testing.T, principal *domain.Principal, roles ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(PrincipalKey, *principal)
	}

	handler := RequireRoles(roles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireRolesAllowed(t *testing.T) {
	p := domain.Principal{UserID: "user_1", Role: domain.RoleHRManager, CompanyID: "company_1"}

	rec := invokeRBAC(t, &p, domain.RoleAdmin, domain.RoleHRManager)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRolesDenied(t *testing.T) {
	p := domain.Principal{UserID: "user_1", Role: domain.RoleEmployee, CompanyID: "company_1"}

	rec := invokeRBAC(t, &p, domain.RoleAdmin, domain.RoleHRManager)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRolesNoPrincipal(t *testing.T) {
	rec := invokeRBAC(t, nil, domain.RoleAdmin)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
