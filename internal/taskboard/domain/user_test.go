package domain_test

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "StrongPassword123!"

func newHasher(t *testing.T) *cryptox.Hasher {
	t.Helper()
	h, err := cryptox.NewHasher(bcrypt.MinCost, []byte("pepper"))
	require.NoError(t, err)
	return h
}

func TestNewUser(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	u, err := domain.NewUser(h, "  Test User ", "Test@Example.com", strongPassword, domain.RoleMember)
	require.NoError(t, err)

	_, err = ulid.ParseStrict(u.ID())
	require.NoError(t, err)
	require.Equal(t, "Test User", u.Name())
	require.Equal(t, "Test@Example.com", u.Email(), "email is stored verbatim")
	require.Equal(t, domain.RoleMember, u.Role())
	require.Equal(t, domain.DefaultTokenVersion, u.TokenVersion())
	require.Equal(t, u.CreatedAt(), u.UpdatedAt())
	require.NotEqual(t, strongPassword, u.Password().Hash())

	require.True(t, u.VerifyPassword(h, strongPassword))
	require.False(t, u.VerifyPassword(h, strongPassword+"x"))
	require.False(t, u.VerifyPassword(h, ""))

	require.Equal(t, domain.Principal{UserID: u.ID(), Email: u.Email(), Role: domain.RoleMember}, u.Principal())
}

func TestNewUserRejects(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	_, err := domain.NewUser(h, " ", "a@example.com", strongPassword, domain.RoleMember)
	require.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = domain.NewUser(h, "n", "a@example.com", strongPassword, domain.Role("owner"))
	require.ErrorIs(t, err, domain.ErrUnknownRole)

	_, err = domain.NewUser(h, "n", "a@example.com", "weak", domain.RoleMember)
	var policyErr *cryptox.PolicyError
	require.ErrorAs(t, err, &policyErr)
	require.Contains(t, policyErr.Reasons, cryptox.MsgPasswordTooShort)
}

func TestDerivePasswordSalts(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	a, err := domain.DerivePassword(h, strongPassword)
	require.NoError(t, err)
	b, err := domain.DerivePassword(h, strongPassword)
	require.NoError(t, err)

	require.False(t, a.Equal(b))
	require.True(t, a.Equal(domain.RestorePassword(a.Hash())))
	require.True(t, a.Verify(h, strongPassword))
	require.True(t, b.Verify(h, strongPassword))
}

func TestRestoreUserBehavesLikeCreated(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	created, err := domain.NewUser(h, "Test User", "test@example.com", strongPassword, domain.RoleAdmin)
	require.NoError(t, err)

	restored := domain.RestoreUser(
		created.ID(), created.Name(), created.Email(), created.Password().Hash(),
		created.Role(), created.TokenVersion(), created.CreatedAt(), created.UpdatedAt(),
	)
	require.Equal(t, created, restored)

	for _, p := range []string{strongPassword, "StrongPassword123?", ""} {
		require.Equal(t, created.VerifyPassword(h, p), restored.VerifyPassword(h, p), p)
	}
}

func TestRestoreSkipsPolicy(t *testing.T) {
	t.Parallel()

	// Restoring never runs the password policy or touches the hash.
	legacy, err := bcrypt.GenerateFromPassword([]byte("ignored"), bcrypt.MinCost)
	require.NoError(t, err)

	u := domain.RestoreUser("id", "Old", "old@example.com", string(legacy), domain.RoleMember, 1, time.Now(), time.Now())
	require.Equal(t, string(legacy), u.Password().Hash())
	require.True(t, u.VerifyPassword(newHasher(t), "ignored"))
	require.False(t, u.VerifyPassword(newHasher(t), "ignored2"))

	broken := domain.RestoreUser("id", "Old", "old@example.com", "not-a-hash", domain.RoleMember, 1, time.Now(), time.Now())
	require.False(t, broken.VerifyPassword(newHasher(t), "anything"))
}

func TestPasswordNeverPrinted(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	pw, err := domain.DerivePassword(h, strongPassword)
	require.NoError(t, err)

	require.Equal(t, "[REDACTED]", fmt.Sprint(pw))

	var buf strings.Builder
	slog.New(slog.NewTextHandler(&buf, nil)).Info("user", "password", pw)
	require.NotContains(t, buf.String(), pw.Hash())
	require.Contains(t, buf.String(), "[REDACTED]")
}
