package main

import (
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"trailview/internal/app"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}

	interactive := isInteractive(os.Args[1:])
	application := createApp(cfg, interactive)
	application.Run()
}

// isInteractive reports whether the args resolve to the full-screen viewer.
// Log output has to stay off the terminal while the viewer owns it.
func isInteractive(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "tail", "settings", "stats", "init", "version", "--help", "-h", "--version":
			return false
		}
	}

	return true
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, interactive bool) *fx.App {
	var logOutput io.Writer
	if interactive {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
