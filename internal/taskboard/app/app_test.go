package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	return Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		DatabaseDriver:      DriverSQLite,
		DatabaseURL:         ":memory:",
		JWTSecret:           accessSecret,
		JWTRefreshSecret:    refreshSecret,
		JWTIssuer:           "taskboard",
		AccessTokenTTL:      30 * time.Minute,
		RefreshTokenTTL:     30 * 24 * time.Hour,
		PasswordHashCost:    bcrypt.MinCost,
		PasswordPepperFile:  filepath.Join(t.TempDir(), "pepper"),
		ShutdownGracePeriod: time.Second,
		RateLimits:          httpx.DefaultRateLimits(),
	}
}

func TestNewServesProbes(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	for _, path := range []string{"/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	require.FileExists(t, application.cfg.PasswordPepperFile)
}

func TestNewRejectsBadCost(t *testing.T) {
	cfg := testConfig(t)
	cfg.PasswordHashCost = 99

	_, err := New(cfg)
	require.ErrorContains(t, err, "password hasher")
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := openStore(t.Context(), Config{DatabaseDriver: "mysql"})
	require.Error(t, err)
}
