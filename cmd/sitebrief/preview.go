package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/preview"
)

type previewOptions struct {
	selection selectionFlags
	viewport  string
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw a text mockup of the selected page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, opts)
		},
	}

	opts.selection.register(cmd)
	cmd.Flags().StringVar(&opts.viewport, "viewport", string(preview.Desktop), "Viewport: desktop, tablet or mobile")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, opts *previewOptions) error {
	log := app.CommandLogger("preview")

	viewport, err := preview.ParseViewport(opts.viewport)
	if err != nil {
		return newCommandError("render preview", "choosing viewport", err, "Use desktop, tablet or mobile.")
	}

	session, _, err := opts.selection.load("render preview", log)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), preview.Render(session.Store().Flatten(), viewport))
	return nil
}
