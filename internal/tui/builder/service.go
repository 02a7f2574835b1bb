package builder

import (
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
)

// ExportService exposes the copy and save operations the builder offers.
// Failures are reported as false; details go to the log.
type ExportService interface {
	CopyText(text string) bool
	SavePrompt(prompt string) bool
	SaveCode(code string, target codegen.Target) bool
	SaveProject(project export.Project) bool
}
