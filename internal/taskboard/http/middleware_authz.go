package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// RequireRole lets the request through only when the caller holds role. It
// runs after Authenticate and never touches storage.
func RequireRole(role domain.Role, m *authMetrics) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				m.reject(reasonMissingToken)
				boardsdk.ErrAuthenticationRequired.WriteError(w)
				return
			}

			if !p.HasRole(role) {
				slogx.FromContext(r.Context()).Info("role check failed",
					"required", role.String(),
					"role", p.Role.String(),
				)
				m.reject(reasonForbidden)
				boardsdk.ErrAdminRequired.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
