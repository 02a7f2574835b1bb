package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
)

type codeOptions struct {
	selection  selectionFlags
	output     outputFlags
	target     string
	project    bool
	projectDir string
	gitInit    bool
}

func newCodeCmd(app *AppContext) *cobra.Command {
	opts := &codeOptions{}

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate boilerplate code for the selection",
		Long: `Generate boilerplate code for the selection.

The target defaults to the document's target, or html when neither the
document nor --target names one. --project prints the whole project bundle
(package.json, README.md, prompt and source) and --project-dir writes it as
separate files, optionally committed to a new git repository.`,
		Example: `  sitebrief code --preset "E-commerce Store" --target react
  sitebrief code -f site.yaml --project-dir ./site --git-init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCode(cmd, app, opts)
		},
	}

	opts.selection.register(cmd)
	opts.output.register(cmd)
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Framework: html, react, vue, angular or svelte")
	cmd.Flags().BoolVar(&opts.project, "project", false, "Emit the full project bundle instead of the source file")
	cmd.Flags().StringVar(&opts.projectDir, "project-dir", "", "Write the project files into this directory")
	cmd.Flags().BoolVar(&opts.gitInit, "git-init", false, "Initialise a git repository in --project-dir and commit the files")

	return cmd
}

func runCode(cmd *cobra.Command, app *AppContext, opts *codeOptions) error {
	log := app.CommandLogger("code")

	if opts.gitInit && opts.projectDir == "" {
		return newCommandError("generate code", "validating flags",
			fmt.Errorf("--git-init needs --project-dir"),
			"Pass --project-dir with the directory to initialise.")
	}

	session, doc, err := opts.selection.load("generate code", log)
	if err != nil {
		return err
	}

	target := doc.DefaultTarget()
	if opts.target != "" {
		target, err = codegen.ParseTarget(opts.target)
		if err != nil {
			return newCommandError("generate code", "choosing target", err,
				"Use one of: html, react, vue, angular, svelte.")
		}
	}
	log = log.With("target", string(target))

	code := session.GenerateCode(target)

	if opts.projectDir != "" {
		session.GeneratePrompt()
		result, err := export.WriteProjectDir(context.Background(), opts.projectDir, session.Project(), export.GitOptions{Init: opts.gitInit})
		if err != nil {
			return newCommandError("generate code", fmt.Sprintf("writing project to %s", opts.projectDir), err,
				"Check that the directory is writable and not already a git repository.")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Wrote %d files to %s\n", len(result.Files), result.Dir)
		for _, name := range result.Files {
			fmt.Fprintf(out, "  %s\n", name)
		}
		if result.Commit != "" {
			fmt.Fprintf(out, "Committed %s\n", shortHash(result.Commit))
		}
		log.WithFields(map[string]any{"dir": result.Dir, "files": len(result.Files), "commit": result.Commit}).Info("project written")
		return nil
	}

	if opts.project {
		session.GeneratePrompt()
		return emitArtifact(cmd, "generate code", opts.output, session.Project().Bundle(), log)
	}

	return emitArtifact(cmd, "generate code", opts.output, code, log)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
