package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessSecret  = "access-secret-access-secret-access-secret"
	testRefreshSecret = "refresh-secret-refresh-secret-refresh-secret"
	strongPassword    = "StrongPassword123!"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestHasher(t *testing.T) *cryptox.Hasher {
	t.Helper()

	h, err := cryptox.NewHasher(bcrypt.MinCost, []byte("pepper"))
	require.NoError(t, err)
	return h
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()

	access, err := jwtx.NewHMACKey(testAccessSecret, "taskboard")
	require.NoError(t, err)
	refresh, err := jwtx.NewHMACKey(testRefreshSecret, "taskboard")
	require.NoError(t, err)

	return &TokenService{
		AccessKey:  access,
		RefreshKey: refresh,
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}
}

func newTestUserService(t *testing.T) *UserService {
	t.Helper()

	return &UserService{
		Store:  newTestStore(t),
		Hasher: newTestHasher(t),
		Tokens: newTestTokens(t),
	}
}

func registerUser(t *testing.T, s *UserService, email string) string {
	t.Helper()

	id, err := s.Register(context.Background(), "Test User", email, strongPassword)
	require.NoError(t, err)
	return id
}
