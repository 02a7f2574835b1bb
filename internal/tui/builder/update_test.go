package builder

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	builderapp "github.com/alexisbeaulieu97/sitebrief/internal/app/builder"
	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
	"github.com/alexisbeaulieu97/sitebrief/internal/preview"
)

type fakeExporter struct {
	ok       bool
	copied   []string
	prompts  []string
	code     map[codegen.Target]string
	projects []export.Project
}

func newFakeExporter(ok bool) *fakeExporter {
	return &fakeExporter{ok: ok, code: make(map[codegen.Target]string)}
}

func (f *fakeExporter) CopyText(text string) bool {
	f.copied = append(f.copied, text)
	return f.ok
}

func (f *fakeExporter) SavePrompt(prompt string) bool {
	f.prompts = append(f.prompts, prompt)
	return f.ok
}

func (f *fakeExporter) SaveCode(code string, target codegen.Target) bool {
	f.code[target] = code
	return f.ok
}

func (f *fakeExporter) SaveProject(project export.Project) bool {
	f.projects = append(f.projects, project)
	return f.ok
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

// run delivers the message produced by cmd back to the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func newTestModel(exporter ExportService) Model {
	return NewModel(builderapp.NewSession(nil), exporter, Options{})
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newTestModel(nil)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_TabsAndCursorWrap(t *testing.T) {
	m := newTestModel(nil)
	assert.Equal(t, catalog.General, m.Category())

	m = press(t, m, "tab")
	assert.Equal(t, catalog.Basic, m.Category())

	m = press(t, m, "left", "left")
	assert.Equal(t, catalog.Advanced, m.Category())

	m = press(t, m, "2", "up")
	component, ok := m.CurrentComponent()
	require.True(t, ok)
	assert.Equal(t, "Social Media Links", component)

	m = press(t, m, "down")
	component, _ = m.CurrentComponent()
	assert.Equal(t, "Logo", component)
}

func TestUpdate_ToggleAndCycleVariant(t *testing.T) {
	m := newTestModel(nil)
	store := m.Session().Store()

	m = press(t, m, "2", " ")
	variant, ok := store.Variant(catalog.Basic, "Logo")
	require.True(t, ok)
	assert.Equal(t, "Text-logo", variant)

	m = press(t, m, "v")
	variant, _ = store.Variant(catalog.Basic, "Logo")
	assert.Equal(t, "Image-logo", variant)

	m = press(t, m, "V", "V")
	variant, _ = store.Variant(catalog.Basic, "Logo")
	assert.Equal(t, "Combination logo (image + text)", variant)

	m = press(t, m, " ")
	assert.False(t, store.Has(catalog.Basic, "Logo"))

	// Cycling an unselected component selects its first variant.
	press(t, m, "down", "v")
	variant, _ = store.Variant(catalog.Basic, "Header")
	assert.Equal(t, "Classic", variant)
}

func TestUpdate_EditRequiresParametersAndSelection(t *testing.T) {
	m := newTestModel(nil)

	m = press(t, m, "2", "e")
	assert.Equal(t, ViewSelect, m.GetViewMode())
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "Select Logo")

	m = press(t, m, "x", "down", "down", "e")
	assert.Contains(t, m.errorMsg, "Search Bar has no parameters")
}

func TestUpdate_ParameterEditor(t *testing.T) {
	m := newTestModel(nil)
	store := m.Session().Store()

	// Basic tab, Hero Section is the fourth row.
	m = press(t, m, "2", "down", "down", "down", " ", "e")
	require.Equal(t, ViewParams, m.GetViewMode())

	m = press(t, m, "right")
	p, ok := store.Parameters(catalog.Basic, "Hero Section")
	require.True(t, ok)
	assert.Equal(t, "Full-Width Image Hero", p.Type())

	// Choice fields start from their displayed default.
	m = press(t, m, "down", "down", "down", "enter")
	p, _ = store.Parameters(catalog.Basic, "Hero Section")
	value, _ := p.Get("textAlignment")
	assert.Equal(t, "right", value)

	m = press(t, m, "up", "up", "enter")
	require.True(t, m.IsEditing())
	m = press(t, m, "https://cdn.example.com/hero.jpg", "enter")
	assert.False(t, m.IsEditing())

	p, _ = store.Parameters(catalog.Basic, "Hero Section")
	value, _ = p.Get("backgroundImage")
	assert.Equal(t, "https://cdn.example.com/hero.jpg", value)

	// Escape while editing discards the draft.
	m = press(t, m, "enter", "zzz", "esc")
	p, _ = store.Parameters(catalog.Basic, "Hero Section")
	value, _ = p.Get("backgroundImage")
	assert.Equal(t, "https://cdn.example.com/hero.jpg", value)

	// Switching type starts from an empty record.
	m = press(t, m, "up", "right")
	p, _ = store.Parameters(catalog.Basic, "Hero Section")
	assert.Equal(t, "Video Background Hero", p.Type())
	_, found := p.Get("backgroundImage")
	assert.False(t, found)

	m = press(t, m, "r")
	_, ok = store.Parameters(catalog.Basic, "Hero Section")
	assert.False(t, ok)

	m = press(t, m, "esc")
	assert.Equal(t, ViewSelect, m.GetViewMode())
}

func TestUpdate_PresetPicker(t *testing.T) {
	m := newTestModel(nil)

	m = press(t, m, "p")
	require.Equal(t, ViewPresets, m.GetViewMode())

	m = press(t, m, "down", "enter")
	assert.Equal(t, ViewSelect, m.GetViewMode())
	assert.Equal(t, "E-commerce Store", m.Session().Store().Preset())
	assert.Contains(t, m.statusMsg, "E-commerce Store")
}

func TestUpdate_PromptViewExports(t *testing.T) {
	exporter := newFakeExporter(true)
	m := newTestModel(exporter)
	m = press(t, m, "2", " ", "g")
	require.Equal(t, ViewPrompt, m.GetViewMode())

	next, cmd := m.Update(key("y"))
	m = run(t, next.(Model), cmd)
	require.Len(t, exporter.copied, 1)
	assert.Equal(t, m.Session().Prompt(), exporter.copied[0])
	assert.Equal(t, "✓ copy prompt: clipboard", m.statusMsg)

	next, cmd = m.Update(key("s"))
	m = run(t, next.(Model), cmd)
	require.Len(t, exporter.prompts, 1)
	assert.Contains(t, m.statusMsg, export.PromptFilename)
}

func TestUpdate_ExportFailureShowsError(t *testing.T) {
	m := newTestModel(newFakeExporter(false))
	m = press(t, m, "g")

	next, cmd := m.Update(key("y"))
	m = run(t, next.(Model), cmd)
	assert.True(t, m.showError)
	assert.Equal(t, "copy prompt failed, see log for details", m.errorMsg)
}

func TestUpdate_CodeViewTargets(t *testing.T) {
	exporter := newFakeExporter(true)
	m := newTestModel(exporter)
	m = press(t, m, "2", " ", "c")
	require.Equal(t, ViewCode, m.GetViewMode())
	assert.Equal(t, codegen.TargetHTML, m.Session().CodeTarget())

	m = press(t, m, "t")
	assert.Equal(t, codegen.TargetReact, m.Target())
	assert.Equal(t, codegen.TargetHTML, m.Session().CodeTarget())

	m = press(t, m, "g")
	assert.Equal(t, codegen.TargetReact, m.Session().CodeTarget())

	next, cmd := m.Update(key("s"))
	m = run(t, next.(Model), cmd)
	assert.Equal(t, m.Session().Code(), exporter.code[codegen.TargetReact])

	next, cmd = m.Update(key("S"))
	run(t, next.(Model), cmd)
	require.Len(t, exporter.projects, 1)
	assert.Equal(t, "index.jsx", exporter.projects[0].Files[2].Name)
}

func TestUpdate_PreviewCyclesViewport(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "w")
	require.Equal(t, ViewPreview, m.GetViewMode())

	m = press(t, m, "v")
	assert.Equal(t, preview.Tablet, m.Viewport())
	m = press(t, m, "v", "v")
	assert.Equal(t, preview.Desktop, m.Viewport())
}

func TestUpdate_ClearAllConfirmation(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "p", "enter")
	require.False(t, m.Session().Store().IsEmpty())

	m = press(t, m, "X", "n")
	assert.Equal(t, ViewSelect, m.GetViewMode())
	assert.False(t, m.Session().Store().IsEmpty())

	m = press(t, m, "X")
	require.Equal(t, ViewConfirm, m.GetViewMode())
	m = press(t, m, "y")
	assert.True(t, m.Session().Store().IsEmpty())
	assert.Equal(t, ViewSelect, m.GetViewMode())
}

func TestUpdate_ExportWithoutService(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "g")

	next, cmd := m.Update(key("y"))
	m = run(t, next.(Model), cmd)
	assert.True(t, m.showError)
	assert.Equal(t, "Clipboard is not available", m.errorMsg)
}

func TestUpdate_ParameterResetReportsStoreError(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "2", " ", "e")
	require.Equal(t, ViewParams, m.GetViewMode())

	m.Session().Store().Unset(catalog.Basic, "Logo")

	m = press(t, m, "r")
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "component is not selected")
	assert.Empty(t, m.statusMsg)
}
