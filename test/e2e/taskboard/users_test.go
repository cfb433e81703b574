package taskboard_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginMe walks the member lifecycle end to end.
func TestRegisterLoginMe(t *testing.T) {
	client := startServer(t, nil)
	ctx := t.Context()

	reg, err := client.Register(ctx, boardsdk.RegisterRequest{Name: "Test User", Email: "test@example.com", Password: strongPassword})
	require.NoError(t, err)
	require.NotEmpty(t, reg.UserID)

	_, err = client.Register(ctx, boardsdk.RegisterRequest{Name: "Again", Email: "test@example.com", Password: strongPassword})
	requireAPIError(t, err, http.StatusBadRequest, "User with this email already exists")

	login, err := client.Login(ctx, boardsdk.LoginRequest{Email: "test@example.com", Password: strongPassword})
	require.NoError(t, err)
	require.Equal(t, reg.UserID, login.User.ID)
	require.Equal(t, "member", login.User.Role)
	require.NotEmpty(t, client.Cookie(boardsdk.AccessTokenCookie))
	require.NotEmpty(t, client.Cookie(boardsdk.RefreshTokenCookie))

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "test@example.com", me.Email)

	refreshed, err := client.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, reg.UserID, refreshed.User.ID)

	_, err = client.Logout(ctx)
	require.NoError(t, err)
	require.Empty(t, client.Cookie(boardsdk.AccessTokenCookie))

	_, err = client.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, "Authentication required")
}

// TestLoginDoesNotRevealAccounts checks that a wrong password and an unknown
// email are indistinguishable.
func TestLoginDoesNotRevealAccounts(t *testing.T) {
	client := startServer(t, nil)
	registerAndLogin(t, client, "known@example.com")

	_, wrongPassword := client.Login(t.Context(), boardsdk.LoginRequest{Email: "known@example.com", Password: "WrongPassword1!"})
	_, unknownEmail := client.Login(t.Context(), boardsdk.LoginRequest{Email: "nobody@example.com", Password: strongPassword})

	requireAPIError(t, wrongPassword, http.StatusUnauthorized, "Invalid email or password")
	require.Equal(t, wrongPassword, unknownEmail)
}

func TestRegisterWeakPassword(t *testing.T) {
	client := startServer(t, nil)

	_, err := client.Register(t.Context(), boardsdk.RegisterRequest{Name: "Weak", Email: "weak@example.com", Password: "password"})
	requireAPIError(t, err, http.StatusBadRequest,
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
		"Password must contain at least one special character",
	)
}
