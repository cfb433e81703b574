package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/taskboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options are the deployment dependent knobs of the router.
type Options struct {
	CORSOrigins   []string
	SecureCookies bool
	RateLimits    httpx.RateLimitProfiles
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	limits       httpx.RateLimitProfiles
	secure       bool
	metrics      *httpx.Metrics
	auth         *authMetrics

	TokenService     *service.TokenService
	UserService      *service.UserService
	ProjectService   *service.ProjectService
	TaskService      *service.TaskService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	metrics *httpx.Metrics,
	opts Options,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		limits:       opts.RateLimits,
		secure:       opts.SecureCookies,
		metrics:      metrics,
		auth:         newAuthMetrics(metrics.Registry()),
	}

	// Outermost first. Metrics must be last: it reads the pattern the mux
	// stores on the request it receives.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.CORSOrigins),
		metrics.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerProjects()
	r.registerTasks()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Taskboard API
//	@version					0.1.0
//	@description				Projects and tasks for small teams. Sessions are JWT cookies: a 30 minute accessToken and a 30 day refreshToken.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						accessToken
//	@description				HS256 access token set by /users/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) cookies() sessionCookies {
	access, refresh := r.TokenService.TTLs()
	return sessionCookies{Secure: r.secure, AccessTTL: access, RefreshTTL: refresh}
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService: r.UserService,
		cookies:     r.cookies(),
		metrics:     r.auth,
	}

	r.Mux.HandleFunc("POST /users/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /users/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /users/logout", h.HandleLogout)
	r.Mux.HandleFunc("POST /users/refresh", h.HandleRefresh)

	r.Mux.Handle("GET /users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			Authenticate(r.TokenService, r.auth),
		),
	)
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	// Reads are cheap, writes are admin-only and rarer.
	r.Mux.Handle("GET /projects",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			Authenticate(r.TokenService, r.auth),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
	)
	r.Mux.Handle("POST /projects",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			Authenticate(r.TokenService, r.auth),
			RequireRole(domain.RoleAdmin, r.auth),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
	)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	// Anonymous callers share a bucket per IP.
	r.Mux.Handle("GET /tasks",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			OptionalAuthenticate(r.TokenService),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
	)
	r.Mux.Handle("POST /tasks",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			Authenticate(r.TokenService, r.auth),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.Mux.Handle("POST /bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
}

func (r *Router) registerSystem() {
	// Probes may poll often.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
