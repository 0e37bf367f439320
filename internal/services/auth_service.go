package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"serviciosmarket/core/internal/auth"
	"serviciosmarket/core/internal/config"
	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/seed"
)

// ErrInvalidCredentials is returned on any email/password mismatch,
// unknown email included.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult bundles the authenticated user with its issued token.
type LoginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, userID string) error
	SwitchUser(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// authService implements IAuthService over the static demo user list.
type authService struct {
	users    []models.User
	sessions ISessionStore
	cfg      *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(sessions ISessionStore, cfg *config.Config) IAuthService {
	return &authService{
		users:    seed.Users(),
		sessions: sessions,
		cfg:      cfg,
	}
}

// Login matches credentials against the user list and issues a token. A
// fixed artificial delay runs before the lookup regardless of outcome.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	select {
	case <-time.After(s.cfg.LoginDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	var user *models.User
	for i := range s.users {
		if strings.ToLower(s.users[i].Email) == normalized {
			user = &s.users[i]
			break
		}
	}
	if user == nil || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.ID, user.Role, s.cfg.JwtSecret, s.cfg.JwtTTL)
	if err != nil {
		return nil, err
	}

	sess := Session{UserID: user.ID, Role: string(user.Role), IssuedAt: time.Now().UTC()}
	if err := s.sessions.Put(ctx, sess, s.cfg.JwtTTL); err != nil {
		return nil, err
	}

	return &LoginResult{User: *user, Token: token}, nil
}

// Logout drops the session record. Tokens expire on their own.
func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// SwitchUser ends the current session so another user can log in. Same
// server-side effect as Logout; kept separate for the API surface.
func (s *authService) SwitchUser(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// CurrentUser resolves the user behind an active session.
func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	if _, err := s.sessions.Get(ctx, userID); err != nil {
		return nil, err
	}
	for i := range s.users {
		if s.users[i].ID == userID {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrSessionNotFound
}
