package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DirName is the name of the per-project configuration directory.
const DirName = ".showcase"

// Config represents the showcase configuration
type Config struct {
	// UI preferences
	Theme string `json:"theme"`

	// Logging. The TUI owns the terminal, so logs go to a file.
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Dialogs
	StrictHost         bool    `json:"strict_host"`
	LoadingDurationMS  int     `json:"loading_duration_ms"`
	LoadingSettleMS    int     `json:"loading_settle_ms"`
	LoadingSuccessRate float64 `json:"loading_success_rate"`

	// Users API
	APIAddr  string `json:"api_addr"`
	PageSize int    `json:"page_size"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:              "showcase",
		LogLevel:           "info",
		LogFile:            "showcase.log",
		StrictHost:         false,
		LoadingDurationMS:  3000,
		LoadingSettleMS:    1500,
		LoadingSuccessRate: 0.7,
		APIAddr:            ":4000",
		PageSize:           10,
	}
}

// LoadingDuration returns how long the loading dialog works before settling.
func (c *Config) LoadingDuration() time.Duration {
	return time.Duration(c.LoadingDurationMS) * time.Millisecond
}

// SettleDelay returns how long the loading dialog shows its outcome.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.LoadingSettleMS) * time.Millisecond
}

// Validate reports every out-of-range value.
func (c *Config) Validate() error {
	var errs []error
	if c.LoadingDurationMS < 0 {
		errs = append(errs, fmt.Errorf("loading_duration_ms must not be negative, got %d", c.LoadingDurationMS))
	}
	if c.LoadingSettleMS < 0 {
		errs = append(errs, fmt.Errorf("loading_settle_ms must not be negative, got %d", c.LoadingSettleMS))
	}
	if c.LoadingSuccessRate < 0 || c.LoadingSuccessRate > 1 {
		errs = append(errs, fmt.Errorf("loading_success_rate must be within [0, 1], got %g", c.LoadingSuccessRate))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	return errors.Join(errs...)
}

// Manager handles configuration loading and saving
type Manager struct {
	dir        string
	configPath string
	config     *Config
}

// NewManager creates a configuration manager rooted at dir, usually a
// project's .showcase directory.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:        dir,
		configPath: filepath.Join(dir, "config.json"),
		config:     DefaultConfig(),
	}
}

// Dir returns the configuration directory
func (m *Manager) Dir() string {
	return m.dir
}

// Path returns the config file path
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", m.dir, err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Missing keys keep their defaults
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(config)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Keys lists the keys accepted by Set
func Keys() []string {
	keys := []string{
		"theme", "log_level", "log_file", "strict_host",
		"loading_duration_ms", "loading_settle_ms", "loading_success_rate",
		"api_addr", "page_size",
	}
	sort.Strings(keys)
	return keys
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	next := *m.config

	switch key {
	case "theme":
		next.Theme = value
	case "log_level":
		next.LogLevel = value
	case "log_file":
		next.LogFile = value
	case "strict_host":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		next.StrictHost = b
	case "loading_duration_ms", "loading_settle_ms", "page_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		switch key {
		case "loading_duration_ms":
			next.LoadingDurationMS = n
		case "loading_settle_ms":
			next.LoadingSettleMS = n
		default:
			next.PageSize = n
		}
	case "loading_success_rate":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		next.LoadingSuccessRate = f
	case "api_addr":
		next.APIAddr = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	m.config = &next
	return m.Save()
}

// ensureGitignore creates a .gitignore in the config directory with smart
// defaults
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(m.dir, ".gitignore")

	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil // Already exists
	}

	gitignoreContent := `# showcase data directory .gitignore
#
# Config is committed, logs and temporary files are not

*.log
*.tmp
.DS_Store
Thumbs.db

!config.json
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

// expandEnvVars expands environment variables in string config values
func (m *Manager) expandEnvVars(config *Config) {
	config.Theme = expandString(config.Theme)
	config.LogLevel = expandString(config.LogLevel)
	config.LogFile = expandString(config.LogFile)
	config.APIAddr = expandString(config.APIAddr)
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func expandString(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
