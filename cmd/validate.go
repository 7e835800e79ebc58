package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/restart-controller/cli"
	"github.com/grovetools/restart-controller/config"
	"github.com/grovetools/restart-controller/logging"
	"github.com/spf13/cobra"
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse the configuration and list its entries without running them",
		Long: `Loads the configuration exactly as a run would and prints every entry.
Nothing is spawned. With no argument the default configuration file is checked;
a file argument may be JSON, YAML (.yml, .yaml) or TOML (.toml, entries under [[entry]]).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) == 1 {
				path = args[0]
			}

			entries, err := config.Load(path)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal entries to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Path("Config", path)
			pretty.Field("Entries", len(entries))
			for i, entry := range entries {
				pretty.InfoPretty(fmt.Sprintf("%d. %s", i+1, entry))
				switch entry.Kind {
				case config.KindSession:
					if len(entry.Session.Commands) > 0 {
						pretty.Code(strings.Join(entry.Session.Commands, "\n"))
					}
				case config.KindProcess:
					if len(entry.Process.Argv()) == 0 {
						pretty.WarnPretty("blank command; this entry will be skipped")
					}
				}
			}
			pretty.Success("configuration is valid")
			return nil
		},
	}
	return cmd
}
