package cli

import (
	"github.com/spf13/cobra"

	"trailview/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandView CommandType = iota
	CommandTail
	CommandSettings
	CommandStats
	CommandInit
	CommandVersion
)

// Options contains the parsed command-line arguments
type Options struct {
	Type  CommandType
	Query string
	Local bool
	JSON  bool
}

const (
	appDesc     = "terminal log viewer for a Trailarr media server"
	viewDesc    = "Open the interactive log viewer (default)"
	tailDesc    = "Print the current server logs and exit"
	settingsD   = "Print the server settings"
	statsDesc   = "Print the server statistics"
	initDesc    = "Write a default " + config.ConfigFileName + " to the current directory"
	versionDesc = "Show version information"
)

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandView}

	root := buildRootCommand(result)
	root.AddCommand(
		buildViewCommand(result),
		buildTailCommand(result),
		buildSettingsCommand(result),
		buildStatsCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return result, nil
}

// buildRootCommand creates the root command, defaulting to the viewer
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         appDesc,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandView
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&result.Local, "local", false, "read logs from the local log directory instead of the server")

	return cmd
}

func buildViewCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: viewDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandView
			return nil
		},
	}
}

func buildTailCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail",
		Short: tailDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandTail
			return nil
		},
	}

	cmd.Flags().StringVarP(&result.Query, "query", "q", "", "filter entries containing this text")
	cmd.Flags().BoolVar(&result.JSON, "json", false, "emit records as JSON")

	return cmd
}

func buildSettingsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: settingsD,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandSettings
			return nil
		},
	}

	cmd.Flags().BoolVar(&result.JSON, "json", false, "emit settings as JSON")

	return cmd
}

func buildStatsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: statsDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandStats
			return nil
		},
	}

	cmd.Flags().BoolVar(&result.JSON, "json", false, "emit stats as JSON")

	return cmd
}

func buildInitCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: initDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandInit
			return nil
		},
	}
}

func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: versionDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			result.Type = CommandVersion
			return nil
		},
	}
}
