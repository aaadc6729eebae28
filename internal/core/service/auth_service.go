package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/ports"
	"github.com/nominasoft/hr-system/internal/core/token"
)

// dummyHash is compared against when the email is unknown so rejected logins
// cost the same whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hr-system-dummy"), bcrypt.DefaultCost)

// AuthService implements registration, login, and token refresh.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register provisions a new tenant: the company, its admin account, and a
// bootstrap employee record, then returns the admin's first token pair.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" || input.CompanyName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	company := &domain.Company{
		Name:      input.CompanyName,
		Industry:  input.Industry,
		CreatedAt: now,
	}
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	employee := &domain.Employee{
		Email:     input.Email,
		HireDate:  now,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.ProvisionTenant(ctx, company, user, employee)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.Issue(created.Principal())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", created.CompanyID).Str("user_id", created.ID).Msg("tenant registered")

	return &ports.AuthResult{User: created, Tokens: *pair}, nil
}

// Login checks the credentials and returns a fresh token pair. Unknown email,
// wrong password, and deactivated account all report ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{User: user, Tokens: *pair}, nil
}

// Refresh exchanges a valid refresh token for a new pair. Unlike access
// verification this path re-resolves the user, so a deleted or deactivated
// account cannot keep refreshing.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrUserNotFound
	}

	pair, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{User: user, Tokens: *pair}, nil
}
