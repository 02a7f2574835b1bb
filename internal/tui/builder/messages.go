package builder

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewSelect ViewMode = iota
	ViewParams
	ViewPresets
	ViewPrompt
	ViewCode
	ViewPreview
	ViewHelp
	ViewConfirm
)

// ExportDoneMsg reports the outcome of a copy or save.
type ExportDoneMsg struct {
	Operation string // "copy prompt", "save code", ...
	Target    string // file name or "clipboard"
	OK        bool
}

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
