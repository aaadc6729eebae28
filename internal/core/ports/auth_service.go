package ports

import (
	"context"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// RegisterInput carries everything needed to provision a tenant and its first
// admin account.
type RegisterInput struct {
	Email       string
	Password    string
	CompanyName string
	Industry    string
}

// AuthResult is returned by every operation that establishes a session.
type AuthResult struct {
	User   *domain.User
	Tokens domain.TokenPair
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}
