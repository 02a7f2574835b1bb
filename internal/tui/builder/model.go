// Package builder is the interactive component picker: category tabs, a
// checkbox list, a parameter editor and views of the generated artifacts.
package builder

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	builderapp "github.com/alexisbeaulieu97/sitebrief/internal/app/builder"
	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
	"github.com/alexisbeaulieu97/sitebrief/internal/preview"
)

// Options configures a new builder model.
type Options struct {
	Target   codegen.Target
	Viewport preview.Viewport
}

// Model is the main builder model
type Model struct {
	// Core data
	session  *builderapp.Session
	exporter ExportService

	// UI state
	viewMode   ViewMode
	returnMode ViewMode
	tab        int
	cursor     int
	scroll     int

	// Preset picker
	presetCursor int

	// Parameter editor
	paramCursor int
	editing     bool
	input       textinput.Model

	// Output settings
	target   codegen.Target
	viewport preview.Viewport

	// Banners
	showError bool
	errorMsg  string
	statusMsg string

	// Dimensions
	width  int
	height int
}

// NewModel creates a new builder model around a session.
func NewModel(session *builderapp.Session, exporter ExportService, opts Options) Model {
	if session == nil {
		session = builderapp.NewSession(nil)
	}
	target := opts.Target
	if !target.Valid() {
		target = codegen.TargetHTML
	}
	viewport := opts.Viewport
	if !viewport.Valid() {
		viewport = preview.Desktop
	}

	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 256

	return Model{
		session:  session,
		exporter: exporter,
		viewMode: ViewSelect,
		input:    input,
		target:   target,
		viewport: viewport,
		width:    80,
		height:   24,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Helper Methods

// Category returns the category of the active tab.
func (m *Model) Category() catalog.Category {
	return catalog.Categories()[m.tab]
}

// components lists the rows of the active tab.
func (m *Model) components() []string {
	return catalog.Components(m.Category())
}

// CurrentComponent returns the component under the cursor.
func (m *Model) CurrentComponent() (string, bool) {
	rows := m.components()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	rows := len(m.components())
	if rows == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = rows - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	rows := len(m.components())
	if rows == 0 {
		return
	}
	m.cursor++
	if m.cursor >= rows {
		m.cursor = 0
	}
}

// NextTab switches to the next category and resets the cursor.
func (m *Model) NextTab() {
	m.tab = (m.tab + 1) % len(catalog.Categories())
	m.cursor = 0
}

// PrevTab switches to the previous category and resets the cursor.
func (m *Model) PrevTab() {
	count := len(catalog.Categories())
	m.tab = (m.tab + count - 1) % count
	m.cursor = 0
}

// ToggleCurrent selects the component under the cursor with its first
// variant, or removes it when already selected.
func (m *Model) ToggleCurrent() {
	component, ok := m.CurrentComponent()
	if !ok {
		return
	}
	store := m.session.Store()
	category := m.Category()
	if store.Has(category, component) {
		store.Unset(category, component)
		return
	}
	if variant, ok := catalog.DefaultVariant(category, component); ok {
		store.Set(category, component, variant)
	}
}

// CycleVariant moves the component under the cursor to its next variant,
// selecting it first when needed.
func (m *Model) CycleVariant(step int) {
	component, ok := m.CurrentComponent()
	if !ok {
		return
	}
	store := m.session.Store()
	category := m.Category()
	variants := catalog.Variants(category, component)
	if len(variants) == 0 {
		return
	}
	current, selected := store.Variant(category, component)
	if !selected {
		store.Set(category, component, variants[0])
		return
	}
	index := 0
	for i, v := range variants {
		if v == current {
			index = i
			break
		}
	}
	index = (index + step + len(variants)) % len(variants)
	store.Set(category, component, variants[index])
}

// editorParameters returns the parameters being edited for the component
// under the cursor, creating defaults when none are stored yet.
func (m *Model) editorParameters() (params.Parameters, bool) {
	component, ok := m.CurrentComponent()
	if !ok {
		return nil, false
	}
	kind, ok := params.KindFor(component)
	if !ok {
		return nil, false
	}
	if p, ok := m.session.Store().Parameters(m.Category(), component); ok {
		return p, true
	}
	p, err := params.New(kind, "")
	if err != nil {
		return nil, false
	}
	return p, true
}

// commitParameters stores edited parameters for the component under the
// cursor.
func (m *Model) commitParameters(p params.Parameters) error {
	component, _ := m.CurrentComponent()
	return m.session.Store().SetParameters(m.Category(), component, p)
}

func (m *Model) presetNames() []string {
	return catalog.PresetNames()
}

// ApplyPresetAt applies the preset at the picker cursor.
func (m *Model) ApplyPresetAt(index int) bool {
	names := catalog.PresetNames()
	if index < 0 || index >= len(names) {
		return false
	}
	return m.session.ApplyPreset(names[index])
}

// NextTarget cycles the code target.
func (m *Model) NextTarget() {
	targets := codegen.Targets()
	for i, t := range targets {
		if t == m.target {
			m.target = targets[(i+1)%len(targets)]
			return
		}
	}
	m.target = targets[0]
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Session returns the underlying session.
func (m *Model) Session() *builderapp.Session {
	return m.session
}

// Target returns the code target.
func (m *Model) Target() codegen.Target {
	return m.target
}

// Viewport returns the preview viewport.
func (m *Model) Viewport() preview.Viewport {
	return m.viewport
}

// IsEditing reports whether a text field is being edited.
func (m *Model) IsEditing() bool {
	return m.editing
}

func (m *Model) setError(message string) {
	m.showError = true
	m.errorMsg = message
}

func (m *Model) clearBanners() {
	m.showError = false
	m.errorMsg = ""
	m.statusMsg = ""
}
