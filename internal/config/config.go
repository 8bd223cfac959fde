package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"trailview/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		URL     string        `yaml:"url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`
	Logs struct {
		Limit    int      `yaml:"limit"`
		Dir      string   `yaml:"dir"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"logs"`
	Search struct {
		Debounce time.Duration `yaml:"debounce"`
	} `yaml:"search"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Sentry struct {
		DSN string `yaml:"dsn"`
	} `yaml:"sentry"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Server.URL = DefaultServerURL
	cfg.Server.Timeout = DefaultFetchTimeout

	cfg.Logs.Limit = DefaultFetchLimit
	cfg.Logs.Patterns = []string{DefaultLogPattern}

	cfg.Search.Debounce = DefaultSearchDebounce

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load loads the configuration from trailview.yaml and the environment.
// A missing config file yields defaults; the .env file is read first so
// the server api key can live next to the backend's own .env.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	_ = godotenv.Load(EnvFileName)

	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, cfg.Validate()
		}

		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	// decode through the yaml tags; the default tag name would drop
	// underscore keys like api_key
	if err := v.Unmarshal(cfg, yamlTagDecoding); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// yamlTagDecoding makes viper resolve struct fields by their yaml tags
func yamlTagDecoding(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
}

// applyEnv overlays environment variables onto the configuration.
// API_KEY matches the variable the backend itself stores in its .env.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TRAILVIEW_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}

	if v := os.Getenv("API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}

	if v := os.Getenv("TRAILVIEW_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Sentry.DSN = v
	}
}

// WriteDefault writes the default configuration to the given path
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogs(); err != nil {
		return err
	}

	if err := c.validateSearch(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return nil
}

// validateServer validates server settings
func (c *Config) validateServer() error {
	if c.Server.URL == "" {
		return errors.ErrServerURLRequired
	}

	if _, err := url.Parse(c.Server.URL); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	if c.Server.Timeout <= 0 {
		return errors.ErrInvalidFetchTimeout
	}

	return nil
}

// validateLogs validates log retrieval settings
func (c *Config) validateLogs() error {
	if c.Logs.Limit <= 0 {
		return errors.ErrInvalidFetchLimit
	}

	return nil
}

// validateSearch validates search settings
func (c *Config) validateSearch() error {
	if c.Search.Debounce <= 0 {
		return errors.ErrInvalidDebounce
	}

	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	}

	return fmt.Errorf("%w: %q", errors.ErrInvalidLogFormat, c.Logging.Format)
}
