package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "sitebrief",
		Short:         "Pick website components and turn them into an AI prompt and starter code",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd.ErrOrStderr(), flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the builder when attached to a terminal.
			if len(args) == 0 && isTerminal(cmd.OutOrStdout()) {
				return runBuild(cmd, app, &buildOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newPromptCmd(app))
	cmd.AddCommand(newCodeCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newSelectionCmd(app))
	cmd.AddCommand(newBuildCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
