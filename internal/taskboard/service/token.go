package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// ErrInvalidToken covers every way a token can fail verification. The wrapped
// cause is for operator logs; clients only ever see the one message.
var ErrInvalidToken = errors.New("invalid_token")

// TokenService mints and checks the access/refresh pair. The two keys must
// hold different secrets.
type TokenService struct {
	AccessKey  *jwtx.HMACKey
	RefreshKey *jwtx.HMACKey
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now is used in tests; nil means time.Now.
	Now func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// TTLs reports the access and refresh lifetimes in effect.
func (s *TokenService) TTLs() (access, refresh time.Duration) {
	access, refresh = s.AccessTTL, s.RefreshTTL
	if access <= 0 {
		access = jwtx.DefaultAccessTokenTTL
	}
	if refresh <= 0 {
		refresh = jwtx.DefaultRefreshTokenTTL
	}
	return access, refresh
}

// Issue signs a new pair for p. The refresh token carries tokenVersion so a
// bump of the stored counter invalidates it.
func (s *TokenService) Issue(p domain.Principal, tokenVersion int) (domain.TokenPair, error) {
	now := s.now()
	accessTTL, refreshTTL := s.TTLs()

	access := jwtx.AccessClaims{
		RegisteredClaims: jwtx.NewRegisteredClaims(s.AccessKey.Issuer(), p.UserID, accessTTL, now),
		UserID:           p.UserID,
		Email:            p.Email,
		Role:             p.Role.String(),
	}
	accessToken, err := s.AccessKey.Sign(access)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh := jwtx.RefreshClaims{
		RegisteredClaims: jwtx.NewRegisteredClaims(s.RefreshKey.Issuer(), p.UserID, refreshTTL, now),
		UserID:           p.UserID,
		TokenVersion:     tokenVersion,
	}
	refreshToken, err := s.RefreshKey.Sign(refresh)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  access.ExpiresAt.Time,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refresh.ExpiresAt.Time,
	}, nil
}

// VerifyAccess rebuilds the principal from an access token.
func (s *TokenService) VerifyAccess(_ context.Context, token string) (domain.Principal, error) {
	var claims jwtx.AccessClaims
	if err := s.AccessKey.Verify(token, &claims); err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return domain.Principal{UserID: claims.UserID, Email: claims.Email, Role: role}, nil
}

func (s *TokenService) VerifyRefresh(_ context.Context, token string) (domain.RefreshGrant, error) {
	var claims jwtx.RefreshClaims
	if err := s.RefreshKey.Verify(token, &claims); err != nil {
		return domain.RefreshGrant{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return domain.RefreshGrant{UserID: claims.UserID, TokenVersion: claims.TokenVersion}, nil
}
