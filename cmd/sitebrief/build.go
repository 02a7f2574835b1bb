package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
	"github.com/alexisbeaulieu97/sitebrief/internal/preview"
	tuibuilder "github.com/alexisbeaulieu97/sitebrief/internal/tui/builder"
)

type buildOptions struct {
	selection selectionFlags
	target    string
	viewport  string
	outDir    string
	save      string
}

func newBuildCmd(app *AppContext) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Launch the interactive website builder",
		Long: `Launch the interactive builder to pick components, tune their parameters
and generate the prompt and starter code.

Saved artifacts land in --out-dir. With --save, the final selection is
written as a YAML document that the prompt and code commands accept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, app, opts)
		},
	}

	opts.selection.register(cmd)
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Initial code target")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "Initial preview viewport")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", ".", "Directory for saved prompts, code and projects")
	cmd.Flags().StringVar(&opts.save, "save", "", "Write the final selection to this YAML file on exit")

	return cmd
}

func runBuild(cmd *cobra.Command, app *AppContext, opts *buildOptions) error {
	log := app.CommandLogger("build")

	session, doc, err := opts.selection.load("launch builder", log)
	if err != nil {
		return err
	}

	target := doc.DefaultTarget()
	if opts.target != "" {
		target, err = codegen.ParseTarget(opts.target)
		if err != nil {
			return newCommandError("launch builder", "choosing target", err,
				"Use one of: html, react, vue, angular, svelte.")
		}
	}

	viewport := preview.Desktop
	if opts.viewport != "" {
		viewport, err = preview.ParseViewport(opts.viewport)
		if err != nil {
			return newCommandError("launch builder", "choosing viewport", err, "Use desktop, tablet or mobile.")
		}
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = "."
	}
	exporter := export.NewExporter(
		export.NewOSC52Clipboard(cmd.ErrOrStderr()),
		export.DirSaver{Dir: outDir},
		log,
	)

	log.WithFields(map[string]any{"session": session.ID(), "components": session.Store().Count()}).Info("launching builder")

	model := tuibuilder.NewModel(session, exporter, tuibuilder.Options{Target: target, Viewport: viewport})
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Error(err, "builder execution failed")
		return fmt.Errorf("failed to run builder: %w", err)
	}

	log.With("session", session.ID()).Info("builder closed")

	if opts.save == "" {
		return nil
	}

	finalTarget := target
	if m, ok := final.(tuibuilder.Model); ok {
		finalTarget = m.Target()
	}
	return saveSelection(cmd, opts.save, session.Store(), finalTarget)
}
