package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = strings.Repeat("a", MinSecretLength)
	refreshSecret = strings.Repeat("r", MinSecretLength)
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", accessSecret)
	t.Setenv("JWT_REFRESH_SECRET", refreshSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	setSecrets(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "file:./local.db", cfg.DatabaseURL)
	require.Equal(t, "taskboard", cfg.JWTIssuer)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, 12, cfg.PasswordHashCost)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.False(t, cfg.SecureCookies())
}

func TestLoadConfigOverrides(t *testing.T) {
	setSecrets(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/board")
	t.Setenv("ACCESS_TOKEN_TTL", "15")
	t.Setenv("REFRESH_TOKEN_TTL", "168h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.True(t, cfg.SecureCookies())
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 2, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing secrets",
			env:  map[string]string{"JWT_SECRET": "", "JWT_REFRESH_SECRET": ""},
			want: "JWT_SECRET is required",
		},
		{
			name: "short secret",
			env:  map[string]string{"JWT_SECRET": "short"},
			want: "JWT_SECRET must be at least 32 characters",
		},
		{
			name: "equal secrets",
			env:  map[string]string{"JWT_REFRESH_SECRET": accessSecret},
			want: "must differ",
		},
		{
			name: "unknown env",
			env:  map[string]string{"ENV": "staging"},
			want: "ENV must be one of",
		},
		{
			name: "unknown driver",
			env:  map[string]string{"DATABASE_DRIVER": "mysql"},
			want: "DATABASE_DRIVER must be one of",
		},
		{
			name: "unknown log format",
			env:  map[string]string{"LOG_FORMAT": "xml"},
			want: "LOG_FORMAT must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setSecrets(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			require.ErrorContains(t, err, tt.want)
		})
	}
}
