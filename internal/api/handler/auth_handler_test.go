package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	return s.refreshFn(ctx, refreshToken)
}

func authResult() *ports.AuthResult {
	return &ports.AuthResult{
		User: &domain.User{
			ID:        "user_1",
			Email:     "owner@acme.test",
			Role:      domain.RoleAdmin,
			CompanyID: "company_1",
			Active:    true,
		},
		Tokens: domain.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
	}
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandlerRegister(t *testing.T) {
	var got ports.RegisterInput
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			got = input
			return authResult(), nil
		},
	})

	c, rec := newAuthContext(t, "/auth/register", `{"email":"owner@acme.test","password":"s3cret-pass","company_name":"Acme","industry":"retail"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.Email != "owner@acme.test" || got.CompanyName != "Acme" {
		t.Errorf("forwarded input = %+v", got)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken != "access-token" || resp.RefreshToken != "refresh-token" {
		t.Errorf("tokens = %q / %q", resp.AccessToken, resp.RefreshToken)
	}
	if resp.User == nil || resp.User.ID != "user_1" {
		t.Errorf("user = %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Error("password hash leaked in response")
	}
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatal("service called on invalid payload")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"missing email", `{"password":"s3cret-pass","company_name":"Acme"}`},
		{"bad email", `{"email":"not-an-email","password":"s3cret-pass","company_name":"Acme"}`},
		{"short password", `{"email":"a@b.test","password":"short","company_name":"Acme"}`},
		{"missing company", `{"email":"a@b.test","password":"s3cret-pass"}`},
	}
	for _, tc := range cases {
		c, rec := newAuthContext(t, "/auth/register", tc.body)
		if err := h.Register(c); err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newAuthContext(t, "/auth/register", `{"email":"owner@acme.test","password":"s3cret-pass","company_name":"Acme"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "owner@acme.test" || password != "s3cret-pass" {
				t.Errorf("credentials forwarded as %q / %q", email, password)
			}
			return authResult(), nil
		},
	})

	c, rec := newAuthContext(t, "/auth/login", `{"email":"owner@acme.test","password":"s3cret-pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthHandlerLoginRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newAuthContext(t, "/auth/login", `{"email":"owner@acme.test","password":"wrong-pass"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandlerRefresh(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(_ context.Context, refreshToken string) (*ports.AuthResult, error) {
			if refreshToken != "refresh-token" {
				t.Errorf("token forwarded as %q", refreshToken)
			}
			return authResult(), nil
		},
	})

	c, rec := newAuthContext(t, "/auth/refresh", `{"refresh_token":"refresh-token"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthHandlerRefreshMissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(context.Context, string) (*ports.AuthResult, error) {
			t.Fatal("service called on invalid payload")
			return nil, nil
		},
	})

	c, rec := newAuthContext(t, "/auth/refresh", `{}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAuthHandlerRefreshInvalidToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(context.Context, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidToken
		},
	})

	c, _ := newAuthContext(t, "/auth/refresh", `{"refresh_token":"expired"}`)
	err := h.Refresh(c)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
