package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// initTokens builds the two HMAC keys. Access and refresh tokens use separate
// secrets so neither kind verifies as the other.
func initTokens(cfg Config) (*service.TokenService, error) {
	access, err := jwtx.NewHMACKey(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("access key: %w", err)
	}
	refresh, err := jwtx.NewHMACKey(cfg.JWTRefreshSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("refresh key: %w", err)
	}

	return &service.TokenService{
		AccessKey:  access,
		RefreshKey: refresh,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, nil
}

// initHasher loads the pepper, if one is configured, and returns the
// password hasher.
func initHasher(cfg Config, logger *slog.Logger) (*cryptox.Hasher, error) {
	pepper, err := cryptox.LoadOrCreatePepper(cfg.PasswordPepperFile)
	if err != nil {
		return nil, err
	}
	if pepper == nil {
		logger.Warn("no password pepper configured")
	}

	return cryptox.NewHasher(cfg.PasswordHashCost, pepper)
}
