package app

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// MinSecretLength is the shortest JWT secret accepted, in characters.
const MinSecretLength = 32

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	validEnvs       = []string{"dev", "test", "production"}
	validDrivers    = []string{DriverSQLite, DriverPostgres}
	validLogFormats = []string{"json", "text"}
)

type Config struct {
	Env       string // dev, test, production (default: dev)
	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // json, text (default: json)
	Port      int    // HTTP listen port (default: 3000)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseURL    string // sqlite DSN or postgres URL (default: file:./local.db)

	JWTSecret        string        // Required: access token secret
	JWTRefreshSecret string        // Required: refresh token secret, distinct from JWTSecret
	JWTIssuer        string        // iss claim (default: taskboard)
	AccessTokenTTL   time.Duration // default: 30m
	RefreshTokenTTL  time.Duration // default: 30 days

	PasswordHashCost   int    // bcrypt cost (default: 12)
	PasswordPepperFile string // Optional: created on first start when missing

	BootstrapToken      string   // Optional: enables POST /bootstrap
	CORSAllowedOrigins  []string // default: http://localhost:3000
	ShutdownGracePeriod time.Duration
	RateLimits          httpx.RateLimitProfiles
}

// SecureCookies reports whether session cookies carry the Secure flag.
func (c Config) SecureCookies() bool { return c.Env == "production" }

// LoadConfig reads the environment. Any error is fatal: the server must not
// start with weak or missing secrets.
func LoadConfig() (Config, error) {
	cfg := Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 3000),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", "file:./local.db"),

		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		JWTIssuer:        getEnvOrDefault("JWT_ISSUER", "taskboard"),
		AccessTokenTTL:   getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:  getEnvDurationOrDefault("REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),

		PasswordHashCost:   getEnvIntOrDefault("PASSWORD_HASH_COST", cryptox.DefaultCost),
		PasswordPepperFile: os.Getenv("PASSWORD_PEPPER_FILE"),

		BootstrapToken:      os.Getenv("BOOTSTRAP_TOKEN"),
		CORSAllowedOrigins:  splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RateLimits:          httpx.RateLimitsFromEnv(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if !slices.Contains(validEnvs, c.Env) {
		errs = append(errs, fmt.Errorf("ENV must be one of %v, got %q", validEnvs, c.Env))
	}
	if !slices.Contains(validDrivers, c.DatabaseDriver) {
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be one of %v, got %q", validDrivers, c.DatabaseDriver))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of %v, got %q", validLogFormats, c.LogFormat))
	}

	errs = append(errs, checkSecret("JWT_SECRET", c.JWTSecret), checkSecret("JWT_REFRESH_SECRET", c.JWTRefreshSecret))
	if c.JWTSecret != "" && c.JWTSecret == c.JWTRefreshSecret {
		errs = append(errs, errors.New("JWT_SECRET and JWT_REFRESH_SECRET must differ"))
	}

	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token TTLs must be positive"))
	}

	return errors.Join(errs...)
}

func checkSecret(name, v string) error {
	switch {
	case v == "":
		return fmt.Errorf("%s is required", name)
	case utf8.RuneCountInString(v) < MinSecretLength:
		return fmt.Errorf("%s must be at least %d characters", name, MinSecretLength)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
