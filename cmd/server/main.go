// Package main runs the CoinWave airdrop tracker.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/coinwave/coinwave/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinwave",
	Short: "CoinWave airdrop tracker",
	Long: `coinwave serves the airdrop listing, tracking and account API.

Configuration comes from COINWAVE_CONFIG_PATH (YAML), an optional .env file
and COINWAVE_* environment variables.

Examples:
  # Run the HTTP server
  coinwave serve

  # Serve MCP tools over stdio
  coinwave mcp

  # Apply migrations and load the sample catalog
  coinwave migrate && coinwave seed`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// setup loads configuration and builds the process logger.
// In stdio mode logs go to stderr so stdout stays clean for JSON-RPC.
func setup(stdio bool) (config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("config error: %w", err)
	}

	logWriter := io.Writer(os.Stdout)
	if stdio {
		logWriter = os.Stderr
	}
	cleanup := func() {}
	if logPath := os.Getenv("COINWAVE_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			cleanup = func() { file.Close() }
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	if cfg.InsecureSecret() {
		logger.Warn("using the development JWT secret; set COINWAVE_JWT_SECRET", "db", cfg.DB.Path)
	}
	return cfg, logger, cleanup, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
