package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog lists and looks up projects.
type Catalog interface {
	Browse(ctx context.Context, req project.BrowseRequest) (*project.BrowseResult, error)
	List(ctx context.Context, order project.Order) ([]project.Project, error)
	GetBySlug(ctx context.Context, slug string) (*project.Project, error)
}

// Tracker starts and stops farming.
type Tracker interface {
	StartFarming(ctx context.Context, userID, slug string) (*tracking.Tracking, error)
	StopFarming(ctx context.Context, userID, slug string) error
	ListTracked(ctx context.Context, userID string) ([]tracking.TrackedProject, error)
	IsTracking(ctx context.Context, userID, projectID string) (bool, error)
}

// Accounts registers users and manages their sessions.
type Accounts interface {
	SessionProvider
	Register(ctx context.Context, email, password string) (*user.User, error)
	SignIn(ctx context.Context, email, password string) (*user.SignInResult, error)
	SignOut(ctx context.Context, token string) error
}

// ActivityFeed lists a user's recent activity.
type ActivityFeed interface {
	Recent(ctx context.Context, userID string, limit int) ([]activity.Entry, error)
}

// MarketData serves the market table.
type MarketData interface {
	Quotes(by market.Sort) []market.Quote
}

// Options wires the HTTP server.
type Options struct {
	Catalog  Catalog
	Tracker  Tracker
	Accounts Accounts
	Activity ActivityFeed
	Market   MarketData
	Logger   *slog.Logger

	// LoginLimiter throttles sign-in per client IP. Nil disables it.
	LoginLimiter *IPRateLimiter
	// MCPHandler is mounted at /mcp when set.
	MCPHandler http.Handler
	// Now overrides the clock used for relative times.
	Now func() time.Time
}

// Server holds the HTTP handlers.
type Server struct {
	opts Options
}

// NewServer creates an HTTP server router with middleware.
func NewServer(opts Options) *chi.Mux {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	srv := &Server{opts: opts}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(LoggingMiddleware(opts.Logger))
	r.Use(AuthMiddleware(opts.Accounts))

	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	if opts.MCPHandler != nil {
		r.Handle("/mcp", opts.MCPHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/airdrops", srv.handleListAirdrops)
		r.Get("/airdrops/{slug}", srv.handleGetAirdrop)
		r.With(RequireUser).Post("/airdrops/{slug}/tracking", srv.handleStartTracking)
		r.With(RequireUser).Delete("/airdrops/{slug}/tracking", srv.handleStopTracking)

		r.Get("/projects", srv.handleListProjects)
		r.Get("/projects/{slug}", srv.handleProjectRedirect)

		r.Post("/auth/register", srv.handleRegister)
		if opts.LoginLimiter != nil {
			r.With(opts.LoginLimiter.Middleware).Post("/auth/login", srv.handleLogin)
		} else {
			r.Post("/auth/login", srv.handleLogin)
		}
		r.With(RequireUser).Post("/auth/logout", srv.handleLogout)

		r.With(RequireUser).Get("/dashboard", srv.handleDashboard)
		r.With(RequireUser).Get("/profile", srv.handleProfile)

		r.Get("/market", srv.handleMarket)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
