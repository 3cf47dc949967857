// Package config loads gudang settings from a .env file, the environment,
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gudang/internal/remote"
	"gudang/internal/telemetry"
)

const (
	// EndpointEnv is the remote store URL (required).
	EndpointEnv = "GUDANG_ENDPOINT"
	// TimeoutEnv bounds each remote request, e.g. "30s"; "0" disables.
	TimeoutEnv = "GUDANG_TIMEOUT"
	// LogFileEnv enables debug logging to a file while the TUI runs.
	LogFileEnv = "GUDANG_LOG_FILE"
	// ExportFileEnv is the default path offered for CSV export.
	ExportFileEnv = "GUDANG_EXPORT_FILE"
	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
	// DefaultExportFile matches the download name used by the web client.
	DefaultExportFile = "inventory_export.csv"
)

// ErrNoEndpoint is returned by Validate when no remote endpoint is set.
var ErrNoEndpoint = errors.New("remote endpoint not configured (set " + EndpointEnv + " or -endpoint)")

// Config holds the resolved settings for one run.
type Config struct {
	Endpoint   string
	Timeout    time.Duration
	LogFile    string
	ExportFile string
	Telemetry  telemetry.Config
}

// LoadEnv reads the .env file into the process environment. A missing file
// is not an error; existing variables are not overridden.
func LoadEnv(path string) error {
	if path == "" {
		path = DotEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from environment variables with defaults.
// An unparsable timeout falls back to remote.DefaultTimeout.
func FromEnv() Config {
	cfg := Config{
		Endpoint:   strings.TrimSpace(os.Getenv(EndpointEnv)),
		Timeout:    remote.DefaultTimeout,
		LogFile:    os.Getenv(LogFileEnv),
		ExportFile: os.Getenv(ExportFileEnv),
		Telemetry:  telemetry.ConfigFromEnv(),
	}
	if s := strings.TrimSpace(os.Getenv(TimeoutEnv)); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= 0 {
			cfg.Timeout = d
		} else {
			log.Printf("config.FromEnv: ignoring %s=%q: not a duration", TimeoutEnv, s)
		}
	}
	if cfg.ExportFile == "" {
		cfg.ExportFile = DefaultExportFile
	}
	return cfg
}

// RegisterFlags binds flags that override cfg onto fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Endpoint, "endpoint", c.Endpoint, "remote store URL (env "+EndpointEnv+")")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "per-request timeout, 0 for none (env "+TimeoutEnv+")")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write debug log to this file (env "+LogFileEnv+")")
}

// Validate checks that the configuration can reach a remote store.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return ErrNoEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", c.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint %q: must be an http(s) URL", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %s: must not be negative", c.Timeout)
	}
	return nil
}
