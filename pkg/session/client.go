// Package session holds the client side of authentication: the current user,
// the access/refresh token pair, and an HTTP client that attaches the bearer
// token and transparently refreshes it once when a call is rejected.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

// RegisterInput mirrors the registration payload of the API.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry,omitempty"`
}

type authPayload struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// Client is an authenticated API client. It owns its session explicitly:
// there is no package-level state, and Logout never calls the server
// (tokens are stateless, so there is nothing server-side to clear).
type Client struct {
	baseURL string
	http    *http.Client
	store   Store

	mu      sync.Mutex
	current *Session
}

// NewClient builds a Client for the API at baseURL, restoring any session
// the store already holds.
func NewClient(baseURL string, store Store) (*Client, error) {
	if store == nil {
		store = NewMemoryStore()
	}
	saved, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		current: saved,
	}, nil
}

// IsAuthenticated reports whether a session with tokens is held.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil && c.current.AccessToken != ""
}

// Principal returns the current user's principal, or a zero value when not
// authenticated.
func (c *Client) Principal() domain.Principal {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || c.current.User == nil {
		return domain.Principal{}
	}
	return c.current.User.Principal()
}

// Login authenticates and stores the returned session. Any stale session is
// cleared first, so a failed login never leaves old credentials behind.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := c.clear(); err != nil {
		return nil, err
	}
	return c.authenticate(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register provisions a new company and admin account and stores the session.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if err := c.clear(); err != nil {
		return nil, err
	}
	return c.authenticate(ctx, "/auth/register", input)
}

// Logout clears the stored session unconditionally.
func (c *Client) Logout() error {
	return c.clear()
}

// Do performs an authenticated API call, decoding the JSON response into out
// when out is non-nil. On a 401 it attempts exactly one token refresh and
// retries once; if the refresh fails the session is cleared and the caller
// must re-authenticate.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	access := c.accessToken()
	if access == "" {
		return domain.ErrUnauthorized
	}

	status, data, err := c.roundTrip(ctx, method, path, body, access)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if err := c.refresh(ctx); err != nil {
			_ = c.clear()
			return domain.ErrUnauthorized
		}
		status, data, err = c.roundTrip(ctx, method, path, body, c.accessToken())
		if err != nil {
			return err
		}
	}

	if status >= 400 {
		return apiError(status, data)
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*Session, error) {
	status, data, err := c.roundTrip(ctx, http.MethodPost, path, body, "")
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, data)
	}

	var payload authPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	s := &Session{
		User:         payload.User,
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
	}
	if err := c.save(s); err != nil {
		return nil, err
	}
	return s, nil
}

// refresh exchanges the held refresh token for a new pair.
func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	refreshToken := ""
	if c.current != nil {
		refreshToken = c.current.RefreshToken
	}
	c.mu.Unlock()

	if refreshToken == "" {
		return domain.ErrUnauthorized
	}

	status, data, err := c.roundTrip(ctx, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": refreshToken,
	}, "")
	if err != nil {
		return err
	}
	if status >= 400 {
		return apiError(status, data)
	}

	var payload authPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	return c.save(&Session{
		User:         payload.User,
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
	})
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, bearer string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return ""
	}
	return c.current.AccessToken
}

func (c *Client) save(s *Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Save(s); err != nil {
		return err
	}
	c.current = s
	return nil
}

func (c *Client) clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.current = nil
	return nil
}

// apiError maps the server's error envelope back onto the domain sentinels
// the server classified the failure with.
func apiError(status int, data []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &envelope)

	switch {
	case status == http.StatusUnauthorized && envelope.Error == "invalid credentials":
		return domain.ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusConflict && envelope.Error == "user already exists":
		return domain.ErrUserExists
	}
	if envelope.Error == "" {
		return fmt.Errorf("api error: status %d", status)
	}
	return fmt.Errorf("api error: %s", envelope.Error)
}
