package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// AccessVerifier turns an access token into the caller's identity.
type AccessVerifier interface {
	VerifyAccess(ctx context.Context, token string) (domain.Principal, error)
}

// Authenticate requires a valid accessToken cookie. A missing cookie and a
// bad token are rejected with different messages, but an expired token looks
// the same as a forged one.
func Authenticate(v AccessVerifier, m *authMetrics) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(boardsdk.AccessTokenCookie)
			if err != nil || c.Value == "" {
				logAuthFailure(r, reasonMissingToken, http.ErrNoCookie)
				m.reject(reasonMissingToken)
				boardsdk.ErrAuthenticationRequired.WriteError(w)
				return
			}

			p, err := v.VerifyAccess(r.Context(), c.Value)
			if err != nil {
				logAuthFailure(r, reasonInvalidToken, err)
				m.reject(reasonInvalidToken)
				boardsdk.ErrInvalidToken.WriteError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), p)))
		})
	}
}

// OptionalAuthenticate attaches the caller when a valid cookie is present and
// lets every request through either way.
func OptionalAuthenticate(v AccessVerifier) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(boardsdk.AccessTokenCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := v.VerifyAccess(r.Context(), c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), p)))
		})
	}
}

// logAuthFailure records why a request was turned away. The client only ever
// sees the generic message; the cause is for operators.
func logAuthFailure(r *http.Request, reason string, cause error) {
	slogx.FromContext(r.Context()).Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("path", r.URL.Path),
		slog.Any("error", cause),
	)
}

func withCaller(ctx context.Context, p domain.Principal) context.Context {
	ctx = WithPrincipal(ctx, p)
	ctx = httpx.WithUserID(ctx, p.UserID)
	return slogx.WithContext(ctx, slogx.FromContext(ctx).With(slog.String("user_id", p.UserID)))
}
