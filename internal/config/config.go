package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the assignment tracker application
type Config struct {
	Database      DatabaseConfig     `toml:"database"`
	Notifications NotificationConfig `toml:"notifications"`
	Application   ApplicationConfig  `toml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string `toml:"dir" env:"AT_DB_DIR"`
	Filename       string `toml:"filename" env:"AT_DB_FILENAME"`
	DirPermissions uint32 `toml:"dir_permissions" env:"AT_DB_DIR_PERMISSIONS"`
}

// NotificationConfig holds reminder notification configuration
type NotificationConfig struct {
	Enabled  bool          `toml:"enabled" env:"AT_NOTIFY_ENABLED"`
	AppName  string        `toml:"app_name" env:"AT_NOTIFY_APP_NAME"`
	LeadTime time.Duration `toml:"lead_time" env:"AT_NOTIFY_LEAD_TIME"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"AT_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"AT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".at")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "at.db",
			DirPermissions: 0755,
		},
		Notifications: NotificationConfig{
			Enabled:  true,
			AppName:  "Assignment Tracker",
			LeadTime: 60 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetConfigFilePath returns the path to the optional TOML config file
func (c *Config) GetConfigFilePath() string {
	return filepath.Join(c.Database.Dir, "config.toml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("AT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("AT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv("AT_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Notification configuration
	if enabled := os.Getenv("AT_NOTIFY_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.Notifications.Enabled = b
		}
	}
	if appName := os.Getenv("AT_NOTIFY_APP_NAME"); appName != "" {
		c.Notifications.AppName = appName
	}
	if lead := os.Getenv("AT_NOTIFY_LEAD_TIME"); lead != "" {
		if d, err := time.ParseDuration(lead); err == nil {
			c.Notifications.LeadTime = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("AT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("AT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Notifications.AppName == "" {
		return &ConfigError{Field: "notifications.app_name", Message: "notification app name cannot be empty"}
	}
	if c.Notifications.LeadTime < 0 {
		return &ConfigError{Field: "notifications.lead_time", Message: "notification lead time cannot be negative"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
