package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/padualabs/userapi/internal/service"
	"github.com/padualabs/userapi/internal/store"
	"github.com/padualabs/userapi/pkg/httpx"
	"github.com/padualabs/userapi/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	RegistrationService *service.RegistrationService
	Sessions            service.SessionTerminator
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerLogout()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	// GET /api/users is gated; creation deliberately is not (there is no
	// account to authenticate with yet).
	current := httpx.Chain(&CurrentUserHandler{},
		AuthMiddleware(r.AuthService),
	)

	r.Mux.Handle("GET /api/users", current)
	r.Mux.Handle("POST /api/users", &CreateUserHandler{
		RegistrationService: r.RegistrationService,
	})
}

func (r *Router) registerLogout() {
	r.Mux.Handle("POST /api/logout", &LogoutHandler{Sessions: r.Sessions})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
