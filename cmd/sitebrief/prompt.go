package main

import (
	"github.com/spf13/cobra"
)

type promptOptions struct {
	selection selectionFlags
	output    outputFlags
}

func newPromptCmd(app *AppContext) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Compile the selection into an AI website prompt",
		Example: `  sitebrief prompt --preset "Personal Portfolio"
  sitebrief prompt -f site.yaml --out website-prompt.txt
  sitebrief prompt --select basic/Header=Classic --select "basic/Hero Section"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, app, opts)
		},
	}

	opts.selection.register(cmd)
	opts.output.register(cmd)

	return cmd
}

func runPrompt(cmd *cobra.Command, app *AppContext, opts *promptOptions) error {
	log := app.CommandLogger("prompt")

	session, _, err := opts.selection.load("compile prompt", log)
	if err != nil {
		return err
	}

	return emitArtifact(cmd, "compile prompt", opts.output, session.GeneratePrompt(), log)
}
