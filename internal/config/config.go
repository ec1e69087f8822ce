// Package config loads gateway configuration from files and the environment.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tidwall/jsonc"
)

// Config holds the runtime configuration of the gateway.
type Config struct {
	// Port the HTTP server listens on.
	Port int `json:"port"`
	// Hostname the HTTP server binds to.
	Hostname string `json:"hostname"`
	// BinaryPath, when set, is tried before the built-in candidate list.
	BinaryPath string `json:"binary_path"`
	// ExecTimeoutMS bounds each external invocation, in milliseconds.
	ExecTimeoutMS int `json:"exec_timeout_ms"`
	// APIToken, when set, is required in the x-api-token header on
	// protected routes.
	APIToken string `json:"api_token"`
	// LogLevel is DEBUG, INFO, WARN, ERROR or FATAL.
	LogLevel string `json:"log_level"`
	// PrettyLogs enables human-readable console logging.
	PrettyLogs bool `json:"pretty_logs"`
	// EnableCORS toggles permissive CORS headers.
	EnableCORS *bool `json:"enable_cors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:          8636,
		Hostname:      "0.0.0.0",
		ExecTimeoutMS: 30000,
		LogLevel:      "INFO",
	}
}

// ExecTimeout returns the per-invocation timeout as a duration.
func (c *Config) ExecTimeout() time.Duration {
	if c.ExecTimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.ExecTimeoutMS) * time.Millisecond
}

// CORSEnabled reports whether CORS middleware should be installed.
// CORS is on unless explicitly disabled, matching the original server's
// always-on Access-Control headers.
func (c *Config) CORSEnabled() bool {
	return c.EnableCORS == nil || *c.EnableCORS
}

// Load builds configuration from, in priority order:
//  1. built-in defaults
//  2. global config (~/.tdz-gateway/gateway.jsonc or .json)
//  3. project config (<dir>/tdz-gateway.jsonc or .json)
//  4. TDZ_GATEWAY_CONFIG file override
//  5. TDZ_GATEWAY_* environment variables
func Load(directory string) (*Config, error) {
	cfg := Default()

	loaded := make(map[string]bool)
	loadOnce := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil || loaded[abs] {
			return
		}
		if loadFile(path, cfg) == nil {
			loaded[abs] = true
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		globalDir := filepath.Join(home, ".tdz-gateway")
		loadOnce(filepath.Join(globalDir, "gateway.jsonc"))
		loadOnce(filepath.Join(globalDir, "gateway.json"))
	}

	if directory != "" {
		loadOnce(filepath.Join(directory, "tdz-gateway.jsonc"))
		loadOnce(filepath.Join(directory, "tdz-gateway.json"))
	}

	if path := os.Getenv("TDZ_GATEWAY_CONFIG"); path != "" {
		loadOnce(path)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadFile merges a single jsonc config file into cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonc.ToJSON(data), cfg)
}

// applyEnvOverrides applies TDZ_GATEWAY_* variables, the highest
// priority source.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TDZ_GATEWAY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("TDZ_GATEWAY_HOSTNAME"); v != "" {
		cfg.Hostname = v
	}
	if v := os.Getenv("TDZ_GATEWAY_BINARY"); v != "" {
		cfg.BinaryPath = v
	}
	if v := os.Getenv("TDZ_GATEWAY_EXEC_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.ExecTimeoutMS = ms
		}
	}
	if v := os.Getenv("TDZ_GATEWAY_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("TDZ_GATEWAY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
