package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
)

// EnvPrefix is prepended to environment overrides, e.g. VITRINE_API_LIMIT
const EnvPrefix = "VITRINE"

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Browser BrowserConfig `mapstructure:"browser"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds collection API settings
type APIConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Limit        int           `mapstructure:"limit"`   // 1-100, the API caps pages at 100
	Timeout      time.Duration `mapstructure:"timeout"` // per request
	UserAgent    string        `mapstructure:"user_agent"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView    string `mapstructure:"default_view"` // "gallery" or "list"
	Language       string `mapstructure:"language"`     // collation language, BCP 47
	GalleryColumns int    `mapstructure:"gallery_columns"`
}

// BrowserConfig selects the program used to open images and web pages
type BrowserConfig struct {
	Command string   `mapstructure:"command"` // empty for system default
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:      artic.DefaultBaseURL,
			ImageBaseURL: artic.DefaultImageBaseURL,
			Limit:        artic.DefaultLimit,
			Timeout:      30 * time.Second,
			UserAgent:    "vitrine",
		},
		UI: UIConfig{
			DefaultView:    "gallery",
			Language:       "en",
			GalleryColumns: 4,
		},
		Browser: BrowserConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vitrine", "vitrine.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vitrine", "vitrine.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vitrine")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vitrine")
	}
}

// setDefaults registers every key so that environment overrides apply
// even when no config file mentions them
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.image_base_url", cfg.API.ImageBaseURL)
	v.SetDefault("api.limit", cfg.API.Limit)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.user_agent", cfg.API.UserAgent)

	v.SetDefault("ui.default_view", cfg.UI.DefaultView)
	v.SetDefault("ui.language", cfg.UI.Language)
	v.SetDefault("ui.gallery_columns", cfg.UI.GalleryColumns)

	v.SetDefault("browser.command", cfg.Browser.Command)
	v.SetDefault("browser.args", cfg.Browser.Args)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise the default locations are searched
// and a missing file means defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"api.base_url":       c.API.BaseURL,
		"api.image_base_url": c.API.ImageBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid %s %q: want an http(s) URL", name, raw)
		}
	}
	if c.API.Limit < 1 || c.API.Limit > artic.DefaultLimit {
		return fmt.Errorf("invalid api.limit %d: want 1-%d", c.API.Limit, artic.DefaultLimit)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid api.timeout %s: must be positive", c.API.Timeout)
	}
	switch strings.ToLower(c.UI.DefaultView) {
	case "gallery", "list":
	default:
		return fmt.Errorf("invalid ui.default_view %q: want gallery or list", c.UI.DefaultView)
	}
	if c.UI.GalleryColumns < 1 {
		return fmt.Errorf("invalid ui.gallery_columns %d: must be at least 1", c.UI.GalleryColumns)
	}
	return nil
}

// SaveConfig writes cfg as YAML to path, creating its directory
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.image_base_url", cfg.API.ImageBaseURL)
	v.Set("api.limit", cfg.API.Limit)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.user_agent", cfg.API.UserAgent)

	v.Set("ui.default_view", cfg.UI.DefaultView)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.gallery_columns", cfg.UI.GalleryColumns)

	v.Set("browser.command", cfg.Browser.Command)
	v.Set("browser.args", cfg.Browser.Args)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
