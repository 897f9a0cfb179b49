package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/mcp"
	"github.com/coinwave/coinwave/internal/sqlite"
	"github.com/coinwave/coinwave/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// seedOnStart loads the sample catalog before serving.
var seedOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server. When MCP is enabled the same tools served by
"coinwave mcp" are also available over streamable HTTP at /mcp.`,
	RunE: runServe,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve MCP tools over stdio",
	RunE:  runMCP,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample project catalog",
	Long: `Load the sample project catalog into the configured store.
Projects whose slug already exists are skipped.`,
	RunE: runSeed,
}

func init() {
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "load the sample catalog before serving")
	mcpCmd.Flags().BoolVar(&seedOnStart, "seed", false, "load the sample catalog before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, cleanup, err := setup(false)
	if err != nil {
		return err
	}
	defer cleanup()

	a, err := openApp(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return err
	}
	defer a.Close()

	if err := maybeSeed(cmd.Context(), a, logger); err != nil {
		return err
	}

	opts := transport.Options{
		Catalog:      a.projects,
		Tracker:      a.tracker,
		Accounts:     a.accounts,
		Activity:     a.activity,
		Market:       a.market,
		Logger:       logger,
		LoginLimiter: transport.NewIPRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst).
			TrustProxyHeaders(cfg.Auth.TrustProxyHeaders),
	}
	if cfg.MCP.Enabled {
		opts.MCPHandler = mcp.NewHTTPHandler(newMCPServer(a, logger))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport.NewServer(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("server listening", "addr", addr, "store", cfg.Store.Driver, "mcp", cfg.MCP.Enabled)
	if err := serveHTTP(ctx, logger, httpServer); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, logger, cleanup, err := setup(true)
	if err != nil {
		return err
	}
	defer cleanup()

	a, err := openApp(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return err
	}
	defer a.Close()

	if err := maybeSeed(cmd.Context(), a, logger); err != nil {
		return err
	}

	logger.Info("starting stdio transport")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run blocks until stdin closes or ctx is canceled.
	if err := newMCPServer(a, logger).Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		return err
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, cleanup, err := setup(false)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	applied, err := db.RunMigrations(cmd.Context())
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations up to date", "path", cfg.DB.Path, "applied", len(applied))
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, cleanup, err := setup(false)
	if err != nil {
		return err
	}
	defer cleanup()

	a, err := openApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	created, err := a.projects.Seed(cmd.Context(), project.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects into %s store\n", created, cfg.Store.Driver)
	return nil
}

func maybeSeed(ctx context.Context, a *app, logger *slog.Logger) error {
	if !seedOnStart {
		return nil
	}
	if _, err := a.projects.Seed(ctx, project.DefaultCatalog()); err != nil {
		logger.Error("failed to seed catalog", "error", err)
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func newMCPServer(a *app, logger *slog.Logger) *sdkmcp.Server {
	return mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Catalog: a.projects,
			Market:  a.market,
		},
		Version: version,
		Logger:  logger,
	})
}

// serveHTTP runs server until ctx is done, then shuts it down. A listen
// failure such as a port already in use is returned immediately.
func serveHTTP(ctx context.Context, logger *slog.Logger, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
