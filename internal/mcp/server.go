package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// CatalogService defines project operations needed by MCP.
type CatalogService interface {
	Browse(ctx context.Context, req project.BrowseRequest) (*project.BrowseResult, error)
	GetBySlug(ctx context.Context, slug string) (*project.Project, error)
}

// MarketService defines market operations needed by MCP.
type MarketService interface {
	Quotes(by market.Sort) []market.Quote
}

// Services contains all domain services needed by MCP.
type Services struct {
	Catalog CatalogService
	Market  MarketService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
	// Now overrides the clock used for relative times.
	Now func() time.Time
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "coinwave",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services, now)

	return server
}

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
}
