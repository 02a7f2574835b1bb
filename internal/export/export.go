// Package export hands generated artifacts to the outside world: the
// terminal clipboard and the filesystem.
//
// Exporter is best effort. Failures are logged and reported as false, never
// retried, and never fed back into the selection or the compilers.
package export

import (
	"errors"

	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/logger"
	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// Default artifact file names.
const (
	PromptFilename  = "website-prompt.txt"
	ProjectFilename = "generated-project.txt"
)

var errNoAdapter = errors.New("no adapter configured")

// Clipboard copies text somewhere the user can paste it from.
type Clipboard interface {
	Copy(text string) error
}

// Saver persists a named artifact.
type Saver interface {
	Save(filename, content string) error
}

// CodeFilename returns the download name for code generated for a target.
func CodeFilename(target codegen.Target) string {
	return "generated-code." + target.Extension()
}

// Exporter routes artifacts to a clipboard and a saver.
type Exporter struct {
	clipboard Clipboard
	saver     Saver
	log       *logger.Logger
}

// NewExporter wires an exporter. Any collaborator may be nil; a nil
// clipboard or saver makes the matching operation fail softly.
func NewExporter(clipboard Clipboard, saver Saver, log *logger.Logger) *Exporter {
	if log == nil {
		log = logger.Nop()
	}
	return &Exporter{clipboard: clipboard, saver: saver, log: log}
}

// CopyText copies text to the clipboard.
func (e *Exporter) CopyText(text string) bool {
	err := errNoAdapter
	if e.clipboard != nil {
		err = e.clipboard.Copy(text)
	}
	if err != nil {
		e.log.With("bytes", len(text)).Error(sitebrieferrors.NewExportError("copy", "", err), "copy to clipboard failed")
		return false
	}
	e.log.With("bytes", len(text)).Debug("copied to clipboard")
	return true
}

// SavePrompt saves the prompt as website-prompt.txt.
func (e *Exporter) SavePrompt(prompt string) bool {
	return e.save(PromptFilename, prompt)
}

// SaveCode saves code as generated-code.<ext> for its target.
func (e *Exporter) SaveCode(code string, target codegen.Target) bool {
	return e.save(CodeFilename(target), code)
}

// SaveProject saves the bundled project as generated-project.txt.
func (e *Exporter) SaveProject(project Project) bool {
	return e.save(ProjectFilename, project.Bundle())
}

func (e *Exporter) save(filename, content string) bool {
	err := errNoAdapter
	if e.saver != nil {
		err = e.saver.Save(filename, content)
	}
	if err != nil {
		e.log.With("file", filename).Error(sitebrieferrors.NewExportError("save", filename, err), "save failed")
		return false
	}
	e.log.WithFields(map[string]any{"file": filename, "bytes": len(content)}).Info("artifact saved")
	return true
}
