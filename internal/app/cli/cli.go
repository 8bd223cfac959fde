package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"trailview/internal/app/client"
	"trailview/internal/app/logs"
	"trailview/internal/app/report"
	"trailview/internal/app/settings"
	"trailview/internal/app/source"
	"trailview/internal/app/ui"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// commandLine implements the CLI interface
type commandLine struct {
	cfg      *config.Config
	api      client.Client
	local    *source.LocalSource
	runner   ui.Runner
	reporter report.Reporter
	log      logger.Logger
	args     []string
	stdout   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(
	cfg *config.Config,
	api client.Client,
	local *source.LocalSource,
	runner ui.Runner,
	reporter report.Reporter,
	log logger.Logger,
) CLI {
	return &commandLine{
		cfg:      cfg,
		api:      api,
		local:    local,
		runner:   runner,
		reporter: reporter,
		log:      log.WithComponent("CLI"),
		args:     os.Args[1:],
		stdout:   os.Stdout,
	}
}

// Execute parses arguments and runs the selected command
func (c *commandLine) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1, err
	}

	if err := c.run(opts); err != nil {
		c.reporter.CaptureError(err)
		c.reporter.Flush()

		fmt.Fprintln(os.Stderr, err)

		return 1, err
	}

	return 0, nil
}

// run dispatches a parsed command
func (c *commandLine) run(opts *Options) error {
	ctx := context.Background()

	switch opts.Type {
	case CommandView:
		return c.runView(ctx, opts)
	case CommandTail:
		return c.runTail(ctx, opts)
	case CommandSettings:
		return c.runSettings(ctx, opts)
	case CommandStats:
		return c.runStats(ctx, opts)
	case CommandInit:
		return c.runInit()
	case CommandVersion:
		fmt.Fprintf(c.stdout, "%s %s\n", config.AppName, config.Version)
		return nil
	}

	return nil
}

// runView opens the interactive viewer
func (c *commandLine) runView(ctx context.Context, opts *Options) error {
	src, watcher := c.selectSource(opts)

	return c.runner.Run(ctx, src, watcher)
}

// runTail prints the current logs and exits
func (c *commandLine) runTail(ctx context.Context, opts *Options) error {
	src, _ := c.selectSource(opts)

	records, err := src.GetLogs(ctx)
	if err != nil {
		return err
	}

	if opts.Query != "" {
		records = logs.NewFilter().Apply(records, opts.Query)
	}

	printer := NewPrinter()

	if opts.JSON {
		return printer.PrintJSON(c.stdout, records)
	}

	printer.PrintRecords(c.stdout, records)

	return nil
}

// runSettings prints the server settings
func (c *commandLine) runSettings(ctx context.Context, opts *Options) error {
	s, err := c.api.GetSettings(ctx)
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(c.stdout, s)
	}

	fmt.Fprint(c.stdout, settings.RenderFields(s.Fields()))

	return nil
}

// runStats prints the server statistics
func (c *commandLine) runStats(ctx context.Context, opts *Options) error {
	s, err := c.api.GetStats(ctx)
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(c.stdout, s)
	}

	fmt.Fprint(c.stdout, settings.RenderFields(s.Fields()))

	return nil
}

// runInit writes a default config file unless one already exists
func (c *commandLine) runInit() error {
	if _, err := os.Stat(config.ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists", config.ConfigFileName)
	}

	if err := config.WriteDefault(config.ConfigFileName); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Wrote %s\n", config.ConfigFileName)

	return nil
}

// selectSource picks the remote or local log source for a command
func (c *commandLine) selectSource(opts *Options) (logs.Source, source.Watcher) {
	if !opts.Local {
		return c.api, nil
	}

	watcher, err := source.NewWatcher(c.cfg, c.local, c.log)
	if err != nil {
		c.log.Warn().Err(err).Msg("Log directory watch unavailable")

		return c.local, nil
	}

	return c.local, watcher
}

// printJSON writes a value as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
