package cli

import (
	"github.com/grovetools/restart-controller/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandOptions holds the options shared by every restart-controller command
type CommandOptions struct {
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		// Errors are rendered by ErrorHandler, not by cobra.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	addStandardFlags(cmd.PersistentFlags())

	// Apply styled help
	SetStyledHelp(cmd)

	return cmd
}

func addStandardFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Enable verbose logging")
	fs.Bool("json", false, "Output in JSON format")
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// ConfigureLogging applies the command's flags to every component logger.
func ConfigureLogging(cmd *cobra.Command) {
	opts := GetOptions(cmd)

	cfg := logging.Config{}
	if opts.Verbose {
		cfg.Level = logrus.DebugLevel.String()
	}
	if opts.JSONOutput {
		cfg.Format.Preset = "json"
	}
	logging.Configure(cfg)
}
