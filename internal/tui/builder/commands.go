package builder

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
)

// copyCmd copies text to the clipboard.
func copyCmd(svc ExportService, label, text string) tea.Cmd {
	return func() tea.Msg {
		return ExportDoneMsg{
			Operation: "copy " + label,
			Target:    "clipboard",
			OK:        svc.CopyText(text),
		}
	}
}

// savePromptCmd saves the prompt under its fixed file name.
func savePromptCmd(svc ExportService, prompt string) tea.Cmd {
	return func() tea.Msg {
		return ExportDoneMsg{
			Operation: "save prompt",
			Target:    export.PromptFilename,
			OK:        svc.SavePrompt(prompt),
		}
	}
}

// saveCodeCmd saves generated code with the target's extension.
func saveCodeCmd(svc ExportService, code string, target codegen.Target) tea.Cmd {
	return func() tea.Msg {
		return ExportDoneMsg{
			Operation: "save code",
			Target:    export.CodeFilename(target),
			OK:        svc.SaveCode(code, target),
		}
	}
}

// saveProjectCmd saves the bundled project text.
func saveProjectCmd(svc ExportService, project export.Project) tea.Cmd {
	return func() tea.Msg {
		return ExportDoneMsg{
			Operation: "save project",
			Target:    export.ProjectFilename,
			OK:        svc.SaveProject(project),
		}
	}
}
