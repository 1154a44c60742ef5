// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, recipe API and logging settings loaded through viper

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Recipes contains recipe API configuration
	Recipes RecipesConfig

	// Logging contains logger configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// StylesheetURL is linked from the search page; "none" disables it
	StylesheetURL string
}

// RecipesConfig holds recipe API configuration
type RecipesConfig struct {
	// APIBaseURL is the root of the recipe API; filter.php is appended
	APIBaseURL string

	// DetailBaseURL is the root of recipe detail pages; the recipe ID is appended
	DetailBaseURL string

	// Timeout bounds a single search request
	Timeout time.Duration
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File is an optional rotated log file path
	File string
}

const (
	keyPort          = "port"
	keyStylesheetURL = "page_stylesheet_url"
	keyAPIBaseURL    = "recipes_api_base_url"
	keyDetailBaseURL = "recipes_detail_base_url"
	keyTimeout       = "recipes_timeout"
	keyLogLevel      = "log_level"
	keyLogFormat     = "log_format"
	keyLogFile       = "log_file"
)

// Defaults
const (
	DefaultPort          = "8000"
	DefaultStylesheetURL = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	DefaultAPIBaseURL    = "https://www.themealdb.com/api/json/v1/1"
	DefaultDetailBaseURL = "https://www.themealdb.com/meal"
	DefaultTimeout       = 30 * time.Second
)

// LoadFromEnv loads configuration from environment variables.
// Keys are the upper-cased setting names, e.g. PORT or RECIPES_TIMEOUT.
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, DefaultPort)
	v.SetDefault(keyStylesheetURL, DefaultStylesheetURL)
	v.SetDefault(keyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(keyDetailBaseURL, DefaultDetailBaseURL)
	v.SetDefault(keyTimeout, DefaultTimeout.String())
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyLogFile, "")
	v.AutomaticEnv()

	timeout, err := parseDuration(v.GetString(keyTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid RECIPES_TIMEOUT: %w", err)
	}

	stylesheet := v.GetString(keyStylesheetURL)
	if strings.EqualFold(stylesheet, "none") {
		stylesheet = ""
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          v.GetString(keyPort),
			StylesheetURL: stylesheet,
		},
		Recipes: RecipesConfig{
			APIBaseURL:    v.GetString(keyAPIBaseURL),
			DetailBaseURL: v.GetString(keyDetailBaseURL),
			Timeout:       timeout,
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString(keyLogLevel)),
			Format: strings.ToLower(v.GetString(keyLogFormat)),
			File:   v.GetString(keyLogFile),
		},
	}

	return cfg, nil
}

// parseDuration accepts Go durations ("30s") or whole seconds ("30")
func parseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var seconds int
	if _, err := fmt.Sscanf(s, "%d", &seconds); err != nil || fmt.Sprint(seconds) != s {
		return 0, fmt.Errorf("%q is not a duration", s)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if err := validateAbsoluteURL("recipe API base URL", c.Recipes.APIBaseURL); err != nil {
		return err
	}

	if err := validateAbsoluteURL("recipe detail base URL", c.Recipes.DetailBaseURL); err != nil {
		return err
	}

	if c.Recipes.Timeout <= 0 {
		return errors.New("recipe API timeout must be positive")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}

func validateAbsoluteURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", name)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", name)
	}
	return nil
}
