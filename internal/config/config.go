package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite    = "sqlite"
	StorePostgrest = "postgrest"
)

// DefaultJWTSecret is the development signing key. Deployments must override it.
const DefaultJWTSecret = "dev-secret-change-me"

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Store  StoreConfig  `yaml:"store"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
	MCP    MCPConfig    `yaml:"mcp"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

// StoreConfig selects where projects and tracking rows live.
type StoreConfig struct {
	Driver  string        `yaml:"driver"`
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	// LoginRate is sign-in attempts per minute per client IP.
	LoginRate  int `yaml:"login_rate"`
	LoginBurst int `yaml:"login_burst"`
	// TrustProxyHeaders keys the login limiter on X-Forwarded-For / X-Real-IP.
	// Enable only behind a reverse proxy that sets those headers.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "coinwave.db",
		},
		Store: StoreConfig{
			Driver:  StoreSQLite,
			Timeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:  DefaultJWTSecret,
			SessionTTL: 7 * 24 * time.Hour,
			LoginRate:  10,
			LoginBurst: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
		MCP: MCPConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from an optional YAML file, an optional .env file
// and environment variables, in that order of precedence (last wins).
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("COINWAVE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	envFile := os.Getenv("COINWAVE_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("COINWAVE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if err := envInt("COINWAVE_SERVER_PORT", &cfg.Server.Port); err != nil {
		return err
	}
	if dbPath := os.Getenv("COINWAVE_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if driver := os.Getenv("COINWAVE_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = strings.ToLower(driver)
	}
	if url := os.Getenv("COINWAVE_STORE_URL"); url != "" {
		cfg.Store.URL = url
	}
	if key := os.Getenv("COINWAVE_STORE_API_KEY"); key != "" {
		cfg.Store.APIKey = key
	}
	if err := envDuration("COINWAVE_STORE_TIMEOUT", &cfg.Store.Timeout); err != nil {
		return err
	}
	if secret := os.Getenv("COINWAVE_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if err := envDuration("COINWAVE_SESSION_TTL", &cfg.Auth.SessionTTL); err != nil {
		return err
	}
	if err := envInt("COINWAVE_LOGIN_RATE", &cfg.Auth.LoginRate); err != nil {
		return err
	}
	if err := envInt("COINWAVE_LOGIN_BURST", &cfg.Auth.LoginBurst); err != nil {
		return err
	}
	if err := envBool("COINWAVE_TRUST_PROXY_HEADERS", &cfg.Auth.TrustProxyHeaders); err != nil {
		return err
	}
	if level := os.Getenv("COINWAVE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	return envBool("COINWAVE_MCP_ENABLED", &cfg.MCP.Enabled)
}

// InsecureSecret reports whether the development JWT secret signs tokens for
// a persistent database.
func (c Config) InsecureSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret && c.DB.Path != ":memory:"
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Store.Driver {
	case StoreSQLite:
	case StorePostgrest:
		if c.Store.URL == "" {
			return errors.New("store url is required for the postgrest driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.Auth.LoginRate <= 0 || c.Auth.LoginBurst <= 0 {
		return errors.New("login rate and burst must be positive")
	}
	return nil
}

func envInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
