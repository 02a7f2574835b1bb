package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/config"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
)

type selectionOptions struct {
	selection selectionFlags
	output    outputFlags
	target    string
}

func newSelectionCmd(app *AppContext) *cobra.Command {
	opts := &selectionOptions{}

	cmd := &cobra.Command{
		Use:   "selection",
		Short: "Print the resolved selection as a YAML document",
		Long: `Resolve the document, preset and --select flags into one explicit
selection document. Presets are expanded into their components so the
output can be edited and passed back with -f.`,
		Example: `  sitebrief selection --preset "Personal Portfolio" --select basic/Header=Classic -o site.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd, app, opts)
		},
	}

	opts.selection.register(cmd)
	opts.output.register(cmd)
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Target to record in the document")

	return cmd
}

func runSelection(cmd *cobra.Command, app *AppContext, opts *selectionOptions) error {
	log := app.CommandLogger("selection")

	session, doc, err := opts.selection.load("export selection", log)
	if err != nil {
		return err
	}

	target := doc.DefaultTarget()
	if opts.target != "" {
		target, err = codegen.ParseTarget(opts.target)
		if err != nil {
			return newCommandError("export selection", "choosing target", err,
				"Use one of: html, react, vue, angular, svelte.")
		}
	}

	data, err := config.Marshal(config.FromStore(session.Store(), target))
	if err != nil {
		return newCommandError("export selection", "encoding document", err, "Report this as a bug.")
	}

	return emitArtifact(cmd, "export selection", opts.output, string(data), log)
}

func saveSelection(cmd *cobra.Command, path string, store *selection.Store, target codegen.Target) error {
	data, err := config.Marshal(config.FromStore(store, target))
	if err != nil {
		return newCommandError("save selection", "encoding document", err, "Report this as a bug.")
	}

	saver := export.DirSaver{Dir: filepath.Dir(path)}
	if err := saver.Save(filepath.Base(path), string(data)); err != nil {
		return newCommandError("save selection", fmt.Sprintf("writing %s", path), err, "Check that the directory is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved selection to %s\n", path)
	return nil
}
