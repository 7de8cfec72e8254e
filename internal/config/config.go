// ABOUTME: lifeos configuration: data directory selection and store factory.
// ABOUTME: JSON config file with .env / environment overrides via godotenv.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lifeos/internal/store"
	"github.com/joho/godotenv"
)

// EnvDataDir overrides the data directory when set.
const EnvDataDir = "LIFEOS_DATA_DIR"

// Config stores lifeos tool configuration.
type Config struct {
	// DataDir is the root directory holding the CSV tables.
	// Supports ~ expansion. Defaults to ~/.local/share/lifeos.
	DataDir string `json:"data_dir,omitempty"`
}

// DefaultDataDir returns the default data directory following XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lifeos")
}

// GetDataDir returns the configured data directory with overrides applied:
// LIFEOS_DATA_DIR beats the config file, which beats the XDG default.
func (c *Config) GetDataDir() string {
	if env := os.Getenv(EnvDataDir); env != "" {
		return ExpandPath(env)
	}
	if c.DataDir != "" {
		return ExpandPath(c.DataDir)
	}
	return DefaultDataDir()
}

// OpenStore opens the CSV store at the configured data directory.
func (c *Config) OpenStore() (*store.Store, error) {
	return store.Open(c.GetDataDir())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lifeos", "config.json")
}

// Load reads config from disk, after best-effort loading a .env file so
// environment overrides work without exporting variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
