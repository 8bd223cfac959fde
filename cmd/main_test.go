package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailview/internal/config"
	"trailview/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, config.DefaultServerURL, cfg.Server.URL)
}

func Test_IsInteractive(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "No arguments", args: []string{}, expected: true},
		{name: "View command", args: []string{"view"}, expected: true},
		{name: "View with local flag", args: []string{"view", "--local"}, expected: true},
		{name: "Tail command", args: []string{"tail"}, expected: false},
		{name: "Tail with query", args: []string{"tail", "-q", "error"}, expected: false},
		{name: "Settings command", args: []string{"settings"}, expected: false},
		{name: "Stats command", args: []string{"stats", "--json"}, expected: false},
		{name: "Init command", args: []string{"init"}, expected: false},
		{name: "Version command", args: []string{"version"}, expected: false},
		{name: "Help flag", args: []string{"--help"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isInteractive(tt.args))
		})
	}
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		interactive bool
	}{
		{name: "Info level with viewer", level: logger.InfoLevel, interactive: true},
		{name: "Debug level without viewer", level: logger.DebugLevel, interactive: false},
		{name: "Error level", level: logger.ErrorLevel, interactive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			application := createApp(cfg, tt.interactive)

			assert.NotNil(t, application)
			assert.NoError(t, application.Err())
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.DebugLevel

	assert.NotNil(t, createFxLogger(cfg)())

	cfg.Logging.Level = logger.InfoLevel

	assert.NotNil(t, createFxLogger(cfg)())
}
