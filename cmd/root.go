package cmd

import (
	"context"

	"github.com/grovetools/restart-controller/cli"
	"github.com/grovetools/restart-controller/config"
	rcerrors "github.com/grovetools/restart-controller/errors"
	"github.com/grovetools/restart-controller/logging"
	"github.com/grovetools/restart-controller/runner"
	"github.com/grovetools/restart-controller/version"
	"github.com/spf13/cobra"
)

const componentName = "restart-controller"

// Overridden in tests; the run itself has no path flag or environment override.
var (
	configPath    = config.DefaultPath
	newDispatcher = func() dispatcher { return runner.NewDefault() }
)

type dispatcher interface {
	Run(ctx context.Context, entries []config.Entry)
}

// NewRootCmd builds the restart-controller command tree. Running the root
// command executes every entry in the configuration file.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		componentName,
		"Start tmux sessions and one-shot processes listed in "+config.DefaultPath,
	)
	rootCmd.Long = `Reads the entry list from ` + config.DefaultPath + ` and executes each entry once, in order.

A session entry creates a detached tmux session, sends each command followed by Enter
(waiting "delay" milliseconds before every command and once more at the end) and detaches.
A process entry runs its command and waits for it to exit.

Failures while running entries are ignored. The exit status is non-zero only when the
configuration file cannot be read or parsed.`
	rootCmd.Example = `# Run every entry
restart-controller

# Show what would run, without running it
restart-controller validate`
	rootCmd.Args = cobra.NoArgs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.ConfigureLogging(cmd)
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runEntries(cmd.Context(), configPath)
	}
	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(cli.NewVersionCommand(componentName))

	return rootCmd
}

// runEntries loads every entry before any of them runs; a configuration error
// means nothing is spawned.
func runEntries(ctx context.Context, path string) error {
	log := logging.NewLogger("run")

	entries, err := config.Load(path)
	if err != nil {
		return err
	}
	log.WithField("entries", len(entries)).WithField("path", path).Debug("configuration loaded")

	if ctx == nil {
		ctx = context.Background()
	}
	newDispatcher().Run(ctx, entries)
	return nil
}

// Execute runs the command tree with os.Args and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd(), nil)
}

func execute(rootCmd *cobra.Command, args []string) int {
	if args != nil {
		rootCmd.SetArgs(args)
	}

	executed, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	if executed == nil {
		executed = rootCmd
	}

	if _, ok := rcerrors.As(err); ok {
		handler := cli.NewErrorHandler(cli.GetOptions(executed).Verbose)
		handler.Out = executed.ErrOrStderr()
		handler.Handle(err)
	} else {
		cli.PrintError(executed, err)
	}
	return 1
}
