// Package config handles configuration: paths, flags and the backend address.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "tdo"

	// TokenFile is the stored bearer token filename.
	TokenFile = "token"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BackendURL is the base address of the todo backend.
	BackendURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tdo or $HOME/.config/tdo.
// Environment variables from a .env file in the working directory are
// loaded first so BACKEND_URL can be set per project.
func New(configDir string) (*Config, error) {
	_ = godotenv.Load()

	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, BackendURL: ResolveBackendURL()}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ResolveBackendURL returns the backend base address: the BACKEND_URL
// environment variable when set, otherwise a platform default. On
// Android the development host cannot be reached as localhost; 10.0.2.2
// is the emulator's alias for the host loopback.
func ResolveBackendURL() string {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		return v
	}
	if runtime.GOOS == "android" {
		return "http://10.0.2.2:8000"
	}
	return "http://localhost:8000"
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
