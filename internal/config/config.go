package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for drive-sync.
type Config struct {
	// Remote drive API (required).
	APIURL string `env:"DRIVE_API_URL"`
	Token  string `env:"DRIVE_TOKEN"`

	// Root of the virtual drive on disk. Defaults to ~/.drive-sync/root.
	SyncDir string `env:"SYNC_DIR"`

	// bbolt database holding the folder index, offline records, the
	// rename event log, and captured error reports. Defaults to
	// ~/.drive-sync/state.db.
	StatePath string `env:"STATE_PATH"`

	// Device name this client identifies as. Defaults to system hostname.
	DeviceName string `env:"DEVICE_NAME"`

	// Environment controls log format, LogLevel overrides its default level.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`

	// Sync-engine IPC endpoint consumed by the presentation layer.
	IPCListenAddr string `env:"IPC_LISTEN_ADDR" envDefault:"127.0.0.1:8091"`
	IPCQueueSize  int    `env:"IPC_QUEUE_SIZE" envDefault:"64"`
	// Bearer token required by the IPC server. Mandatory when the
	// listen address is not loopback.
	IPCToken string `env:"IPC_TOKEN"`

	// Concurrency bounds for driver callbacks and offline reconciliation.
	DispatchWorkers  int `env:"DISPATCH_WORKERS" envDefault:"4"`
	ReconcileWorkers int `env:"RECONCILE_WORKERS" envDefault:"4"`

	// Per-request timeout for backend calls.
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT" envDefault:"30s"`

	// Gitignore-syntax file, relative to SyncDir, listing paths the
	// watcher never reports.
	IgnoreFile string `env:"IGNORE_FILE" envDefault:".syncignore"`
}

// warnInsecureEnvFile checks whether the .env file (if present) has
// overly permissive permissions. On Unix systems, group or world
// readable files risk exposing the drive token to other users.
func warnInsecureEnvFile() {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(".env")
	if err != nil {
		return // file does not exist, nothing to check
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		log.Printf("WARNING: .env file has insecure permissions %04o; recommended 0600", mode)
	}
}

// Load reads configuration from environment variables.
// It first attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	warnInsecureEnvFile()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DeviceName == "" {
		hostname, err := os.Hostname()
		if err != nil || hostname == "" {
			hostname = "drive-sync"
		}

		cfg.DeviceName = hostname
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.SyncDir == "" || cfg.StatePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}

		if cfg.SyncDir == "" {
			cfg.SyncDir = filepath.Join(home, ".drive-sync", "root")
		}

		if cfg.StatePath == "" {
			cfg.StatePath = filepath.Join(home, ".drive-sync", "state.db")
		}
	}

	// The watcher and hydrator compare paths by prefix against SyncDir,
	// which only works with absolute paths.
	absDir, err := filepath.Abs(cfg.SyncDir)
	if err != nil {
		return nil, fmt.Errorf("resolving sync dir to absolute path: %w", err)
	}

	cfg.SyncDir = absDir

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("DRIVE_API_URL is required")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("DRIVE_API_URL must be an absolute URL")
	}

	if c.Token == "" {
		return fmt.Errorf("DRIVE_TOKEN is required")
	}

	host, _, err := net.SplitHostPort(c.IPCListenAddr)
	if err != nil {
		return fmt.Errorf("IPC_LISTEN_ADDR must be host:port: %w", err)
	}

	if c.IPCToken == "" && !isLoopback(host) {
		return fmt.Errorf("IPC_TOKEN is required when IPC_LISTEN_ADDR is not loopback")
	}

	if c.IPCQueueSize <= 0 {
		return fmt.Errorf("IPC_QUEUE_SIZE must be positive")
	}

	if c.DispatchWorkers <= 0 {
		return fmt.Errorf("DISPATCH_WORKERS must be positive")
	}

	if c.ReconcileWorkers <= 0 {
		return fmt.Errorf("RECONCILE_WORKERS must be positive")
	}

	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("REMOTE_TIMEOUT must be positive")
	}

	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}

// IgnorePath returns the absolute path of the watcher ignore file.
func (c *Config) IgnorePath() string {
	if filepath.IsAbs(c.IgnoreFile) {
		return c.IgnoreFile
	}

	return filepath.Join(c.SyncDir, c.IgnoreFile)
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
