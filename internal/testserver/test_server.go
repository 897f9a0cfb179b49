// Package testserver runs a fully wired CoinWave HTTP server for end-to-end tests.
package testserver

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
	"github.com/coinwave/coinwave/internal/mcp"
	"github.com/coinwave/coinwave/internal/sqlite"
	"github.com/coinwave/coinwave/internal/transport"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Projects *project.Service
	Tracker  *tracking.Service
	Accounts *user.Service
}

// Options tunes the server built by New.
type Options struct {
	// Seed loads project.DefaultCatalog before serving.
	Seed bool
	// LoginRate and LoginBurst enable the sign-in limiter when both are positive.
	LoginRate  int
	LoginBurst int
}

// New starts a server backed by an in-memory database with MCP mounted at /mcp.
func New(t *testing.T, opts Options) *TestServer {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	_, err = db.RunMigrations(ctx)
	require.NoError(t, err)

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	projectSvc := project.NewService(sqlite.NewProjectRepository(db), nil)
	trackingSvc := tracking.NewService(sqlite.NewTrackingRepository(db), projectSvc, activitySvc, nil)
	accountSvc := user.NewService(
		sqlite.NewUserRepository(db),
		user.NewTokenManager("test-secret", time.Hour),
		activitySvc,
		nil,
	)
	marketSvc := market.NewService()

	if opts.Seed {
		_, err := projectSvc.Seed(ctx, project.DefaultCatalog())
		require.NoError(t, err)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Catalog: projectSvc, Market: marketSvc},
		Version:  "test",
	})

	var limiter *transport.IPRateLimiter
	if opts.LoginRate > 0 && opts.LoginBurst > 0 {
		limiter = transport.NewIPRateLimiter(opts.LoginRate, opts.LoginBurst)
	}

	server := httptest.NewServer(transport.NewServer(transport.Options{
		Catalog:      projectSvc,
		Tracker:      trackingSvc,
		Accounts:     accountSvc,
		Activity:     activitySvc,
		Market:       marketSvc,
		LoginLimiter: limiter,
		MCPHandler:   mcp.NewHTTPHandler(mcpServer),
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:   server,
		DB:       db,
		Projects: projectSvc,
		Tracker:  trackingSvc,
		Accounts: accountSvc,
	}
}

// URL joins path onto the server's base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
