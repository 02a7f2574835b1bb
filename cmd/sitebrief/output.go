package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/export"
	"github.com/alexisbeaulieu97/sitebrief/internal/logger"
	"github.com/alexisbeaulieu97/sitebrief/pkg/diff"
)

type outputFlags struct {
	out  string
	diff bool
	copy bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "Show a unified diff against the --out file without writing it")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the result to the clipboard (OSC 52)")
}

// emitArtifact prints, writes, diffs and/or copies a generated artifact.
func emitArtifact(cmd *cobra.Command, operation string, flags outputFlags, content string, log *logger.Logger) error {
	stdout := cmd.OutOrStdout()

	if flags.diff {
		if flags.out == "" {
			return newCommandError(operation, "preparing diff", errors.New("--diff needs a file to compare against"), "Pass --out with the file to compare.")
		}
		previous, err := os.ReadFile(flags.out)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return newCommandError(operation, fmt.Sprintf("reading %s", flags.out), err, "Check the file permissions.")
		}
		unified := diff.GenerateUnifiedDiff(previous, []byte(content), flags.out, flags.out+" (generated)")
		if unified == "" {
			fmt.Fprintln(stdout, "No changes")
		} else {
			fmt.Fprint(stdout, unified)
		}
		return nil
	}

	if flags.out != "" {
		saver := export.DirSaver{Dir: filepath.Dir(flags.out)}
		if err := saver.Save(filepath.Base(flags.out), content); err != nil {
			return newCommandError(operation, fmt.Sprintf("writing %s", flags.out), err, "Check that the directory is writable.")
		}
		log.WithFields(map[string]any{"path": flags.out, "bytes": len(content)}).Info("artifact written")
	} else {
		fmt.Fprint(stdout, content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(stdout)
		}
	}

	if flags.copy {
		exporter := export.NewExporter(export.NewOSC52Clipboard(cmd.ErrOrStderr()), nil, log)
		exporter.CopyText(content)
	}

	return nil
}
