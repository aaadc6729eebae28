// Package token issues and verifies the signed credentials that carry a
// request's identity: a short-lived access token embedding the full principal
// and a longer-lived refresh token carrying only the user id. Both are HS256
// JWTs; verification is stateless and never touches storage.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// ErrMissingSecret is returned by NewService when no signing secret is
// configured. The process must not serve without one.
var ErrMissingSecret = errors.New("token: signing secret not configured")

// Claims is the JWT payload for both token types. Refresh tokens carry only
// Subject, TokenType, and the time claims.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	CompanyID string `json:"company_id,omitempty"`
	TokenType string `json:"typ"`
}

// Service signs and verifies token pairs. Secrets are read-only after
// construction; the service is safe for concurrent use.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewService builds a token Service. refreshSecret may equal secret; a
// distinct value limits blast radius if one of them leaks.
func NewService(secret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if refreshSecret == "" {
		refreshSecret = secret
	}
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Service{
		accessSecret:  []byte(secret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// Issue mints a fresh access/refresh pair for the principal.
func (s *Service) Issue(p domain.Principal) (*domain.TokenPair, error) {
	now := s.now()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
		Email:     p.Email,
		Role:      p.Role,
		CompanyID: p.CompanyID,
		TokenType: typeAccess,
	}).SignedString(s.accessSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
		TokenType: typeRefresh,
	}).SignedString(s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess validates an access token and reconstructs its principal from
// the embedded claims. Expired tokens report domain.ErrTokenExpired; every
// other failure, including a refresh token presented here, reports
// domain.ErrInvalidToken.
func (s *Service) VerifyAccess(raw string) (*domain.Principal, error) {
	claims, err := s.parse(raw, s.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != typeAccess {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Principal{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		CompanyID: claims.CompanyID,
	}, nil
}

// VerifyRefresh validates a refresh token and returns the user id it was
// issued for. Access tokens presented here are rejected.
func (s *Service) VerifyRefresh(raw string) (string, error) {
	claims, err := s.parse(raw, s.refreshSecret)
	if err != nil {
		return "", err
	}
	if claims.TokenType != typeRefresh {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *Service) parse(raw string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
