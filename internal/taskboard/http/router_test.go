package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	strongPassword = "StrongPassword123!"
	bootstrapToken = "bootstrap-token-for-tests"
)

type testServer struct {
	router *Router
	store  *sqlite.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher, err := cryptox.NewHasher(bcrypt.MinCost, nil)
	require.NoError(t, err)
	access, err := jwtx.NewHMACKey(strings.Repeat("a", 32), "taskboard")
	require.NoError(t, err)
	refresh, err := jwtx.NewHMACKey(strings.Repeat("r", 32), "taskboard")
	require.NoError(t, err)

	tokens := &service.TokenService{AccessKey: access, RefreshKey: refresh}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter("test", st, logger, httpx.NewMetrics(metricsNamespace), Options{
		CORSOrigins: []string{"http://localhost:3000"},
		RateLimits:  httpx.DefaultRateLimits(),
	})
	r.TokenService = tokens
	r.UserService = &service.UserService{Store: st, Hasher: hasher, Tokens: tokens}
	require.NoError(t, r.UserService.WarmUp())
	r.ProjectService = &service.ProjectService{Store: st}
	r.TaskService = &service.TaskService{Store: st}
	r.BootstrapService = &service.BootstrapService{Store: st, Hasher: hasher, Token: bootstrapToken}
	r.ApplyRoutes()

	return &testServer{router: r, store: st}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies []*http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, rd)
	req.RemoteAddr = "192.0.2.10:4000"
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/users/register", boardsdk.RegisterRequest{
		Name: "Test User", Email: email, Password: strongPassword,
	}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out boardsdk.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.UserID
}

func (s *testServer) login(t *testing.T, email string) []*http.Cookie {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/users/login", boardsdk.LoginRequest{Email: email, Password: strongPassword}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

func (s *testServer) bootstrapAdmin(t *testing.T) []*http.Cookie {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/bootstrap", boardsdk.BootstrapRequest{
		Name: "Admin", Email: "admin@example.com", Password: strongPassword,
	}, nil, map[string]string{boardsdk.BootstrapTokenHeader: bootstrapToken})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return s.login(t, "admin@example.com")
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegisterAndLoginScenario(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	id := s.register(t, "test@example.com")
	require.NotEmpty(t, id)

	rec := s.do(t, http.MethodPost, "/users/register", boardsdk.RegisterRequest{
		Name: "Test User", Email: "test@example.com", Password: strongPassword,
	}, nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, []string{"User with this email already exists"}, decodeErrors(t, rec))

	rec = s.do(t, http.MethodPost, "/users/login", boardsdk.LoginRequest{Email: "test@example.com", Password: strongPassword}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var login boardsdk.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.Equal(t, boardsdk.UserResponse{ID: id, Name: "Test User", Email: "test@example.com", Role: "member"}, login.User)

	access := cookieByName(rec.Result().Cookies(), boardsdk.AccessTokenCookie)
	refresh := cookieByName(rec.Result().Cookies(), boardsdk.RefreshTokenCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	require.True(t, access.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, access.SameSite)
	require.False(t, access.Secure)
	require.Equal(t, int((30 * time.Minute).Seconds()), access.MaxAge)
	require.Equal(t, int((30 * 24 * time.Hour).Seconds()), refresh.MaxAge)

	rec = s.do(t, http.MethodPost, "/users/login", boardsdk.LoginRequest{Email: "test@example.com", Password: "WrongPassword123!"}, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Invalid email or password"}, decodeErrors(t, rec))
	require.Empty(t, rec.Result().Cookies())

	unknown := s.do(t, http.MethodPost, "/users/login", boardsdk.LoginRequest{Email: "nobody@example.com", Password: strongPassword}, nil, nil)
	require.Equal(t, rec.Code, unknown.Code)
	require.Equal(t, rec.Body.String(), unknown.Body.String())

	rec = s.do(t, http.MethodPost, "/projects", boardsdk.CreateProjectRequest{Name: "Nope"}, []*http.Cookie{access}, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, []string{"Admin access required"}, decodeErrors(t, rec))

	require.Equal(t, 1.0, testutil.ToFloat64(s.router.auth.logins.WithLabelValues("success")))
	require.Equal(t, 2.0, testutil.ToFloat64(s.router.auth.logins.WithLabelValues("failure")))
	require.Equal(t, 1.0, testutil.ToFloat64(s.router.auth.rejections.WithLabelValues(reasonForbidden)))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	tests := []struct {
		name string
		body any
		want []string
	}{
		{
			name: "malformed json",
			body: `{"name":`,
			want: []string{"Invalid request body"},
		},
		{
			name: "missing name and bad email",
			body: boardsdk.RegisterRequest{Email: "nope", Password: strongPassword},
			want: []string{"Name is required", "Invalid email address"},
		},
		{
			name: "weak password lists every rule",
			body: boardsdk.RegisterRequest{Name: "A", Email: "a@example.com", Password: "abc"},
			want: []string{
				cryptox.MsgPasswordTooShort,
				cryptox.MsgPasswordUppercase,
				cryptox.MsgPasswordDigit,
				cryptox.MsgPasswordSpecial,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/users/register", tt.body, nil, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tt.want, decodeErrors(t, rec))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	id := s.register(t, "me@example.com")
	cookies := s.login(t, "me@example.com")

	tests := []struct {
		name    string
		cookies []*http.Cookie
		code    int
		errs    []string
	}{
		{"no cookie", nil, http.StatusUnauthorized, []string{"Authentication required"}},
		{"garbage token", []*http.Cookie{{Name: boardsdk.AccessTokenCookie, Value: "x.y.z"}}, http.StatusUnauthorized, []string{"Invalid or expired token"}},
		{"refresh token in access cookie", []*http.Cookie{{Name: boardsdk.AccessTokenCookie, Value: cookieByName(cookies, boardsdk.RefreshTokenCookie).Value}}, http.StatusUnauthorized, []string{"Invalid or expired token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/users/me", nil, tt.cookies, nil)
			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, tt.errs, decodeErrors(t, rec))
		})
	}

	t.Run("valid", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/users/me", nil, cookies, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me boardsdk.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		require.Equal(t, id, me.ID)
		require.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
	})
}

func TestMeUserGone(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	pair, err := s.router.TokenService.Issue(domain.Principal{UserID: "ghost", Email: "g@example.com", Role: domain.RoleMember}, 1)
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/users/me", nil, []*http.Cookie{{Name: boardsdk.AccessTokenCookie, Value: pair.AccessToken}}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"User not found"}, decodeErrors(t, rec))
}

func TestLogoutAndRefresh(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.register(t, "me@example.com")
	cookies := s.login(t, "me@example.com")

	t.Run("refresh", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/users/refresh", nil, []*http.Cookie{cookieByName(cookies, boardsdk.RefreshTokenCookie)}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, cookieByName(rec.Result().Cookies(), boardsdk.AccessTokenCookie))
	})

	t.Run("refresh without cookie", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/users/refresh", nil, nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh with access token", func(t *testing.T) {
		bad := &http.Cookie{Name: boardsdk.RefreshTokenCookie, Value: cookieByName(cookies, boardsdk.AccessTokenCookie).Value}
		rec := s.do(t, http.MethodPost, "/users/refresh", nil, []*http.Cookie{bad}, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, []string{"Invalid or expired token"}, decodeErrors(t, rec))
	})

	t.Run("logout clears cookies without a session", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/users/logout", nil, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var msg boardsdk.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		require.Equal(t, "Logged out successfully", msg.Message)

		for _, name := range []string{boardsdk.AccessTokenCookie, boardsdk.RefreshTokenCookie} {
			c := cookieByName(rec.Result().Cookies(), name)
			require.NotNil(t, c, name)
			require.Empty(t, c.Value)
			require.Negative(t, c.MaxAge)
		}
	})
}

func TestProjects(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	admin := s.bootstrapAdmin(t)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		rec := s.do(t, http.MethodPost, "/projects", boardsdk.CreateProjectRequest{Name: name}, admin, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("validation", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/projects", boardsdk.CreateProjectRequest{Name: "  "}, admin, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{"Project name is required"}, decodeErrors(t, rec))

		rec = s.do(t, http.MethodPost, "/projects", boardsdk.CreateProjectRequest{Name: strings.Repeat("x", 256)}, admin, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{"Project name must be 255 characters or less"}, decodeErrors(t, rec))
	})

	t.Run("list pages", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/projects?page=1&limit=2", nil, admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out boardsdk.ProjectListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Equal(t, boardsdk.Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, out.Pagination)
		require.Len(t, out.Projects, 2)
		require.Equal(t, "Gamma", out.Projects[0].Name)
	})

	t.Run("limit clamped", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/projects?page=0&limit=150", nil, admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out boardsdk.ProjectListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Equal(t, 1, out.Pagination.Page)
		require.Equal(t, 100, out.Pagination.Limit)
	})

	t.Run("bad query", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/projects?page=abc", nil, admin, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{"page and limit must be integers"}, decodeErrors(t, rec))
	})

	t.Run("member sees empty list", func(t *testing.T) {
		s.register(t, "member@example.com")
		member := s.login(t, "member@example.com")

		rec := s.do(t, http.MethodGet, "/projects", nil, member, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"projects":[],"pagination":{"page":1,"limit":10,"total":0,"totalPages":0}}`, rec.Body.String())
	})
}

func TestTasks(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.register(t, "me@example.com")
	cookies := s.login(t, "me@example.com")

	t.Run("create requires a session", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/tasks", boardsdk.CreateTaskRequest{Name: "Write docs"}, nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create validates name", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/tasks", boardsdk.CreateTaskRequest{Name: "  "}, cookies, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{boardsdk.MsgTaskNameRequired}, decodeErrors(t, rec))

		rec = s.do(t, http.MethodPost, "/tasks", boardsdk.CreateTaskRequest{Name: strings.Repeat("x", 256)}, cookies, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{boardsdk.MsgTaskNameTooLong}, decodeErrors(t, rec))
	})

	rec := s.do(t, http.MethodPost, "/tasks", boardsdk.CreateTaskRequest{Name: " Write docs "}, cookies, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created boardsdk.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Write docs", created.Name)
	require.NotEmpty(t, created.ID)

	t.Run("anonymous", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/tasks", nil, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out boardsdk.TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out.Items, 1)
		require.Equal(t, "Write docs", out.Items[0].Name)
	})

	t.Run("bad cookie is ignored", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/tasks", nil, []*http.Cookie{{Name: boardsdk.AccessTokenCookie, Value: "junk"}}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	body := boardsdk.BootstrapRequest{Name: "Admin", Email: "admin@example.com", Password: strongPassword}

	rec := s.do(t, http.MethodPost, "/bootstrap", body, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/bootstrap", body, nil, map[string]string{boardsdk.BootstrapTokenHeader: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Invalid bootstrap token"}, decodeErrors(t, rec))

	rec = s.do(t, http.MethodPost, "/bootstrap", body, nil, map[string]string{boardsdk.BootstrapTokenHeader: bootstrapToken})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/bootstrap", body, nil, map[string]string{boardsdk.BootstrapTokenHeader: bootstrapToken})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, []string{"System has already been bootstrapped"}, decodeErrors(t, rec))

	admin := s.login(t, "admin@example.com")
	rec = s.do(t, http.MethodGet, "/users/me", nil, admin, nil)
	require.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestBootstrapDisabled(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.router.BootstrapService.Token = ""

	rec := s.do(t, http.MethodPost, "/bootstrap", boardsdk.BootstrapRequest{}, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, []string{"Bootstrap is not enabled"}, decodeErrors(t, rec))
}

func TestSystemRoutes(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/livez", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/readyz", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health boardsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)

	rec = s.do(t, http.MethodGet, "/metrics", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `taskboard_http_requests_total{method="GET",route="GET /livez",status="200"} 1`)

	require.NoError(t, s.store.Close())
	rec = s.do(t, http.MethodGet, "/readyz", nil, nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := s.do(t, http.MethodOptions, "/users/login", nil, nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPost,
	})
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
