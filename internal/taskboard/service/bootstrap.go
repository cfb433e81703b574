package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap disabled")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
)

// BootstrapService creates the first admin. It is the only way an admin
// account comes into existence.
type BootstrapService struct {
	Store  store.Store
	Hasher domain.PasswordHasher
	Token  string // empty disables bootstrap
}

func (s *BootstrapService) Enabled() bool { return s.Token != "" }

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap checks token and, when no account exists yet, creates an admin.
func (s *BootstrapService) Bootstrap(ctx context.Context, token, name, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	if !s.Enabled() {
		return "", ErrBootstrapDisabled
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt",
			slog.String("token_fingerprint", cryptox.FingerprintToken(token)),
		)
		return "", ErrBootstrapUnauthorized
	}

	u, err := domain.NewUser(s.Hasher, name, email, password, domain.RoleAdmin)
	if err != nil {
		return "", err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.LockUsers(ctx); err != nil {
			return err
		}
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, u)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		err = ErrBootstrapAlready
	}
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
		}
		return "", err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", u.ID()))
	return u.ID(), nil
}
