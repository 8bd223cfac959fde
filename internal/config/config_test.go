package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailview/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, DefaultFetchTimeout, cfg.Server.Timeout)
	assert.Equal(t, DefaultFetchLimit, cfg.Logs.Limit)
	assert.Equal(t, []string{DefaultLogPattern}, cfg.Logs.Patterns)
	assert.Equal(t, DefaultSearchDebounce, cfg.Search.Debounce)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:    "no config file found - uses default",
			content: "",
			check: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, DefaultServerURL, cfg.Server.URL)
			},
		},
		{
			name: "valid config file",
			content: `server:
  url: http://media-box:7889
  api_key: secret
  timeout: 5s
logs:
  limit: 250
search:
  debounce: 250ms
logging:
  level: debug
  format: json
`,
			check: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "http://media-box:7889", cfg.Server.URL)
				assert.Equal(t, "secret", cfg.Server.APIKey)
				assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
				assert.Equal(t, 250, cfg.Logs.Limit)
				assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "invalid yaml",
			content: `server: [not, a, mapping
`,
			check: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorIs(t, err, errors.ErrFailedToReadConfig)
			},
		},
		{
			name: "invalid values rejected",
			content: `logs:
  limit: -5
`,
			check: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorIs(t, err, errors.ErrInvalidConfig)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			if tt.content != "" {
				require.NoError(t, os.WriteFile(ConfigFileName, []byte(tt.content), 0o644))
			}

			cfg, err := Load()
			tt.check(t, cfg, err)
		})
	}
}

func Test_Load_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRAILVIEW_SERVER_URL", "http://other:9999")
	t.Setenv("API_KEY", "from-env")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://other:9999", cfg.Server.URL)
	assert.Equal(t, "from-env", cfg.Server.APIKey)
}

func Test_Load_DotEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())

	// godotenv never overrides variables already present in the environment
	t.Setenv("API_KEY", "placeholder")
	os.Unsetenv("API_KEY")

	require.NoError(t, os.WriteFile(EnvFileName, []byte("API_KEY=dotenv-key\n"), 0o644))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.Server.APIKey)
}

func Test_WriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	require.NoError(t, WriteDefault(path))

	t.Chdir(dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, DefaultFetchLimit, cfg.Logs.Limit)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		error  error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *Config) {},
			error:  nil,
		},
		{
			name:   "missing server url",
			mutate: func(cfg *Config) { cfg.Server.URL = "" },
			error:  errors.ErrServerURLRequired,
		},
		{
			name:   "non-positive timeout",
			mutate: func(cfg *Config) { cfg.Server.Timeout = 0 },
			error:  errors.ErrInvalidFetchTimeout,
		},
		{
			name:   "non-positive limit",
			mutate: func(cfg *Config) { cfg.Logs.Limit = 0 },
			error:  errors.ErrInvalidFetchLimit,
		},
		{
			name:   "non-positive debounce",
			mutate: func(cfg *Config) { cfg.Search.Debounce = -time.Second },
			error:  errors.ErrInvalidDebounce,
		},
		{
			name:   "unknown log format",
			mutate: func(cfg *Config) { cfg.Logging.Format = "xml" },
			error:  errors.ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.error == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.error)
			}
		})
	}
}
