package builder

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sitebrief/internal/params"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ExportDoneMsg:
		if msg.OK {
			m.showError = false
			m.statusMsg = fmt.Sprintf("✓ %s: %s", msg.Operation, msg.Target)
		} else {
			m.statusMsg = ""
			m.setError(fmt.Sprintf("%s failed, see log for details", msg.Operation))
		}
		return m, nil

	case ErrorMsg:
		m.setError(msg.Message)
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewSelect:
		return m.handleSelectKeys(msg)
	case ViewParams:
		return m.handleParamKeys(msg)
	case ViewPresets:
		return m.handlePresetKeys(msg)
	case ViewPrompt:
		return m.handlePromptKeys(msg)
	case ViewCode:
		return m.handleCodeKeys(msg)
	case ViewPreview:
		return m.handlePreviewKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	case ViewConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m, nil
	}
}

// handleSelectKeys handles keys in the component list
func (m Model) handleSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Dismiss banners
	case "x", "esc":
		m.clearBanners()
		return m, nil

	case "up", "k":
		m.MoveCursorUp()
	case "down", "j":
		m.MoveCursorDown()
	case "tab", "right", "l":
		m.NextTab()
	case "shift+tab", "left", "h":
		m.PrevTab()

	case "1", "2", "3":
		m.tab = int(msg.String()[0] - '1')
		m.cursor = 0

	case " ", "enter":
		m.ToggleCurrent()
	case "v":
		m.CycleVariant(1)
	case "V":
		m.CycleVariant(-1)

	case "e":
		component, _ := m.CurrentComponent()
		if _, ok := params.KindFor(component); !ok {
			m.setError(fmt.Sprintf("%s has no parameters", component))
			return m, nil
		}
		if !m.session.Store().Has(m.Category(), component) {
			m.setError(fmt.Sprintf("Select %s before editing its parameters", component))
			return m, nil
		}
		m.paramCursor = 0
		m.viewMode = ViewParams

	case "p":
		m.presetCursor = 0
		m.viewMode = ViewPresets

	case "g":
		m.session.GeneratePrompt()
		m.scroll = 0
		m.viewMode = ViewPrompt
	case "c":
		m.session.GenerateCode(m.target)
		m.scroll = 0
		m.viewMode = ViewCode
	case "w":
		m.viewMode = ViewPreview

	case "X":
		m.returnMode = ViewSelect
		m.viewMode = ViewConfirm

	case "?":
		m.returnMode = ViewSelect
		m.viewMode = ViewHelp
	}
	return m, nil
}

// handleParamKeys handles keys in the parameter editor
func (m Model) handleParamKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := m.editorParameters()
	if !ok {
		m.viewMode = ViewSelect
		return m, nil
	}

	if m.editing {
		return m.handleEditingKeys(msg, p)
	}

	fields := p.Fields()
	rows := len(fields) + 1

	switch msg.String() {
	case "q", "esc":
		m.viewMode = ViewSelect
		return m, nil

	case "up", "k":
		m.paramCursor = (m.paramCursor + rows - 1) % rows
		return m, nil
	case "down", "j":
		m.paramCursor = (m.paramCursor + 1) % rows
		return m, nil

	case "r":
		component, _ := m.CurrentComponent()
		if err := m.session.Store().SetParameters(m.Category(), component, nil); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.paramCursor = 0
		m.statusMsg = fmt.Sprintf("✓ %s parameters reset", component)
		return m, nil
	}

	if m.paramCursor == 0 {
		step := 0
		switch msg.String() {
		case "right", "l", "enter", " ":
			step = 1
		case "left", "h":
			step = -1
		}
		if step != 0 {
			m.cycleType(p, step)
		}
		return m, nil
	}

	if m.paramCursor > len(fields) {
		m.paramCursor = 0
		return m, nil
	}
	field := fields[m.paramCursor-1]

	switch msg.String() {
	case "enter", " ", "right", "l":
		if field.Input == params.InputChoice {
			m.cycleChoice(p, field, 1)
			return m, nil
		}
		if msg.String() == "enter" {
			value, _ := p.Get(field.Key)
			m.input.SetValue(value)
			m.input.Placeholder = field.Placeholder
			m.input.CursorEnd()
			m.editing = true
			return m, m.input.Focus()
		}
	case "left", "h":
		if field.Input == params.InputChoice {
			m.cycleChoice(p, field, -1)
		}
	case "d", "backspace":
		m.setField(p, field.Key, "")
	}
	return m, nil
}

// handleEditingKeys routes keys to the focused text input.
func (m Model) handleEditingKeys(msg tea.KeyMsg, p params.Parameters) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		fields := p.Fields()
		if m.paramCursor >= 1 && m.paramCursor <= len(fields) {
			m.setField(p, fields[m.paramCursor-1].Key, m.input.Value())
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) cycleType(p params.Parameters, step int) {
	names := p.TypeNames()
	if len(names) == 0 {
		return
	}
	index := 0
	for i, name := range names {
		if name == p.Type() {
			index = i
			break
		}
	}
	next := names[(index+step+len(names))%len(names)]
	if err := p.SetType(next); err != nil {
		m.setError(err.Error())
		return
	}
	if err := m.commitParameters(p); err != nil {
		m.setError(err.Error())
	}
}

func (m *Model) cycleChoice(p params.Parameters, field params.Field, step int) {
	if len(field.Choices) == 0 {
		return
	}
	current, _ := p.Get(field.Key)
	if current == "" {
		current = field.Default
	}
	index := -1
	for i, choice := range field.Choices {
		if choice == current {
			index = i
			break
		}
	}
	if index < 0 {
		index = 0
	} else {
		index = (index + step + len(field.Choices)) % len(field.Choices)
	}
	m.setField(p, field.Key, field.Choices[index])
}

func (m *Model) setField(p params.Parameters, key, value string) {
	if err := p.Set(key, value); err != nil {
		m.setError(err.Error())
		return
	}
	if err := m.commitParameters(p); err != nil {
		m.setError(err.Error())
	}
}

// handlePresetKeys handles keys in the preset picker
func (m Model) handlePresetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.presetNames())
	switch msg.String() {
	case "q", "esc":
		m.viewMode = ViewSelect
	case "up", "k":
		m.presetCursor = (m.presetCursor + count - 1) % count
	case "down", "j":
		m.presetCursor = (m.presetCursor + 1) % count
	case "enter", " ":
		name := m.presetNames()[m.presetCursor]
		if m.ApplyPresetAt(m.presetCursor) {
			m.statusMsg = fmt.Sprintf("✓ Applied preset %s", name)
		}
		m.viewMode = ViewSelect
	}
	return m, nil
}

// handlePromptKeys handles keys in the prompt view
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.viewMode = ViewSelect
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "g":
		m.session.GeneratePrompt()
		m.scroll = 0
	case "y":
		return m, m.exportCmd(copyCmd, "prompt", m.session.Prompt())
	case "s":
		if m.exporter == nil {
			m.setError("Saving is not available")
			return m, nil
		}
		return m, savePromptCmd(m.exporter, m.session.Prompt())
	}
	return m, nil
}

// handleCodeKeys handles keys in the code view
func (m Model) handleCodeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.viewMode = ViewSelect
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "t":
		m.NextTarget()
	case "g", "c":
		m.session.GenerateCode(m.target)
		m.scroll = 0
	case "y":
		return m, m.exportCmd(copyCmd, "code", m.session.Code())
	case "s":
		if m.exporter == nil {
			m.setError("Saving is not available")
			return m, nil
		}
		return m, saveCodeCmd(m.exporter, m.session.Code(), m.session.CodeTarget())
	case "S":
		if m.exporter == nil {
			m.setError("Saving is not available")
			return m, nil
		}
		return m, saveProjectCmd(m.exporter, m.session.Project())
	}
	return m, nil
}

// handlePreviewKeys handles keys in the preview view
func (m Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.viewMode = ViewSelect
	case "v", "tab":
		m.viewport = m.viewport.Next()
	}
	return m, nil
}

// handleHelpKeys handles keys in help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = m.returnMode
	}
	return m, nil
}

// handleConfirmKeys handles keys in the clear-all confirmation dialog
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.session.ClearAll()
		m.statusMsg = "✓ Selection cleared"
		m.viewMode = m.returnMode
	case "n", "N", "esc":
		m.viewMode = m.returnMode
	}
	return m, nil
}

func (m Model) exportCmd(build func(ExportService, string, string) tea.Cmd, label, text string) tea.Cmd {
	if m.exporter == nil {
		return func() tea.Msg { return ErrorMsg{Message: "Clipboard is not available"} }
	}
	return build(m.exporter, label, text)
}

func (m *Model) scrollBy(delta int) {
	m.scroll += delta
	if m.scroll < 0 {
		m.scroll = 0
	}
}
