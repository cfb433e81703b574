/*
Package boardsdk is the Go client for the taskboard API.

The server uses the same request and response types, so the wire format is
defined once here.

# Sessions

The API keeps its session in two HttpOnly cookies, accessToken and
refreshToken. SDKClient carries a cookie jar, so a successful Login makes every
later call on the same client authenticated:

	client := boardsdk.NewSDKClient("http://localhost:3000")

	if _, err := client.Register(ctx, boardsdk.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "StrongPassword123!",
	}); err != nil {
		return err
	}

	login, err := client.Login(ctx, boardsdk.LoginRequest{
		Email:    "test@example.com",
		Password: "StrongPassword123!",
	})

	me, err := client.Me(ctx)
	page, err := client.ListProjects(ctx, 1, 10)

When the access token runs out call Refresh, which swaps both cookies for a new
pair. Logout clears them.

# Errors

Every non-2xx response is returned as *APIError carrying the status code and
the messages from the {"errors": [...]} body. The predefined values compare
with errors.Is:

	_, err := client.CreateProject(ctx, boardsdk.CreateProjectRequest{Name: "x"})
	if errors.Is(err, boardsdk.ErrAdminRequired) {
		// logged in as a member
	}

# First admin

Accounts created through Register are members. The first admin comes from the
one-shot bootstrap endpoint, enabled by setting BOOTSTRAP_TOKEN on the server:

	res, err := client.Bootstrap(ctx, token, boardsdk.BootstrapRequest{...})
*/
package boardsdk
