package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrUserNotFound       = errors.New("user_not_found")
)

// dummyPassword satisfies the policy; its hash only exists to be compared
// against when the email is unknown.
const dummyPassword = "Dummy-Passw0rd!"

// LoginResult is a signed-in user and their fresh tokens.
type LoginResult struct {
	User   domain.User
	Tokens domain.TokenPair
}

type UserService struct {
	Store  store.Store
	Hasher domain.PasswordHasher
	Tokens *TokenService

	dummyOnce sync.Once
	dummyHash string
	dummyErr  error
}

// WarmUp derives the hash that unknown-email logins are checked against, so
// the first such login costs one bcrypt like every other.
func (s *UserService) WarmUp() error {
	_, err := s.dummy()
	return err
}

// Register creates a member account and returns its id. Policy violations
// come back as *cryptox.PolicyError before the store is consulted.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if res := cryptox.ValidatePassword(password); !res.Valid {
		return "", &cryptox.PolicyError{Reasons: res.Errors}
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	u, err := domain.NewUser(s.Hasher, name, email, password, domain.RoleMember)
	if err != nil {
		return "", err
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", u.ID()))
	return u.ID(), nil
}

// Login checks the credentials and issues a token pair. An unknown email and
// a wrong password are indistinguishable, in result and in time spent.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		dummy, derr := s.dummy()
		if derr != nil {
			return LoginResult{}, derr
		}
		_ = s.Hasher.Verify(password, dummy)
		l.Info("login failed", slog.String("reason", "unknown_email"))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !u.VerifyPassword(s.Hasher, password) {
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", u.ID()))
		return LoginResult{}, ErrInvalidCredentials
	}

	tokens, err := s.Tokens.Issue(u.Principal(), u.TokenVersion())
	if err != nil {
		return LoginResult{}, err
	}

	l.Info("login succeeded", slog.String("user_id", u.ID()))
	return LoginResult{User: u, Tokens: tokens}, nil
}

// Me loads the caller's own account.
func (s *UserService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// Refresh trades a refresh token for a new pair. The token's version must
// match the user's stored counter.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (LoginResult, error) {
	grant, err := s.Tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return LoginResult{}, err
	}

	u, err := s.Store.Users().GetUserByID(ctx, grant.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, fmt.Errorf("%w: user %s no longer exists", ErrInvalidToken, grant.UserID)
	}
	if err != nil {
		return LoginResult{}, err
	}

	if grant.TokenVersion != u.TokenVersion() {
		return LoginResult{}, fmt.Errorf("%w: user %s token version %d, stored %d",
			ErrInvalidToken, u.ID(), grant.TokenVersion, u.TokenVersion())
	}

	tokens, err := s.Tokens.Issue(u.Principal(), u.TokenVersion())
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: u, Tokens: tokens}, nil
}

func (s *UserService) dummy() (string, error) {
	s.dummyOnce.Do(func() {
		s.dummyHash, s.dummyErr = s.Hasher.Hash(dummyPassword)
		if s.dummyErr != nil {
			s.dummyErr = fmt.Errorf("derive dummy password hash: %w", s.dummyErr)
		}
	})
	return s.dummyHash, s.dummyErr
}
