package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
	"github.com/alexisbeaulieu97/sitebrief/internal/preview"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewSelect:
		return m.renderSelectView()
	case ViewParams:
		return m.renderParamsView()
	case ViewPresets:
		return m.renderPresetsView()
	case ViewPrompt:
		return m.renderPromptView()
	case ViewCode:
		return m.renderCodeView()
	case ViewPreview:
		return m.renderPreviewView()
	case ViewHelp:
		return m.renderHelpView()
	case ViewConfirm:
		return m.renderConfirmView()
	default:
		return m.renderSelectView()
	}
}

// renderSelectView renders the category tabs and component list
func (m Model) renderSelectView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(m.renderBanners())
	content.WriteString(m.renderTabs())
	content.WriteString("\n\n")
	content.WriteString(m.renderComponentList())
	content.WriteString("\n")

	content.WriteString(m.renderFooter(
		"↑/↓: navigate",
		"←/→: category",
		"space: toggle",
		"v: variant",
		"e: parameters",
		"p: presets",
		"g: prompt",
		"c: code",
		"w: preview",
		"X: clear",
		"?: help",
		"q: quit",
	))

	return content.String()
}

// renderHeader renders the title and selection summary
func (m Model) renderHeader() string {
	title := titleStyle.Render("Website Builder")

	summary := m.session.Summary()
	if preset := m.session.Store().Preset(); preset != "" {
		summary += fmt.Sprintf("  •  preset: %s", preset)
	}
	if !m.session.Store().IsEmpty() && m.session.Stale() {
		summary += "  •  " + staleStyle.Render("outputs out of date")
	}

	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, summary))
}

// renderBanners renders the error or status banner, if any
func (m Model) renderBanners() string {
	switch {
	case m.showError:
		return errorBannerStyle.Render(m.errorMsg) + "\n"
	case m.statusMsg != "":
		return infoBannerStyle.Render(m.statusMsg) + "\n"
	default:
		return ""
	}
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, category := range catalog.Categories() {
		label := fmt.Sprintf("%d %s (%d)", i+1, catalog.Title(category), len(m.session.Store().Components(category)))
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderComponentList renders the components of the active category
func (m Model) renderComponentList() string {
	store := m.session.Store()
	category := m.Category()
	rows := m.components()

	visible := m.height - 12
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	var items []string
	if start > 0 {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render("▲ More above"))
	}
	for i := start; i < end; i++ {
		component := rows[i]
		box := "[ ]"
		line := component
		if variant, ok := store.Variant(category, component); ok {
			box = checkedStyle.Render("[x]")
			line += " " + variantStyle.Render("("+variant+")")
		}
		if _, ok := store.Parameters(category, component); ok {
			line += " ⚙"
		}
		item := box + " " + line
		if i == m.cursor {
			items = append(items, selectedItemStyle.Render(item))
		} else {
			items = append(items, itemStyle.Render(item))
		}
	}
	if end < len(rows) {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter(hints ...string) string {
	if m.showError || m.statusMsg != "" {
		hints = append(hints, "x: dismiss")
	}
	return footerStyle.Render(strings.Join(hints, "  •  "))
}

// renderParamsView renders the parameter editor of the current component
func (m Model) renderParamsView() string {
	component, _ := m.CurrentComponent()
	p, ok := m.editorParameters()
	if !ok {
		return emptyStateStyle.Render(fmt.Sprintf("%s has no parameters", component))
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(component + " parameters"))
	content.WriteString("\n")
	content.WriteString(m.renderBanners())

	rows := []string{m.renderParamRow(0, "Type", p.Type(), "")}
	for i, field := range p.Fields() {
		value, _ := p.Get(field.Key)
		hint := field.Placeholder
		if field.Input == params.InputChoice {
			hint = field.Default
		}
		if m.editing && m.paramCursor == i+1 {
			rows = append(rows, selectedItemStyle.Render(fieldLabelStyle.Render(field.Label)+" "+m.input.View()))
			continue
		}
		rows = append(rows, m.renderParamRow(i+1, field.Label, value, hint))
	}
	content.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	content.WriteString("\n")

	if logo, ok := p.(*params.Logo); ok {
		content.WriteString("\n")
		content.WriteString(variantStyle.Render("Shown as: " + logo.DisplayName()))
		content.WriteString("\n")
	}

	if m.editing {
		content.WriteString(m.renderFooter("enter: save", "esc: cancel"))
	} else {
		content.WriteString(m.renderFooter(
			"↑/↓: field",
			"←/→: change type or choice",
			"enter: edit",
			"d: clear field",
			"r: reset",
			"esc: back",
		))
	}
	return content.String()
}

func (m Model) renderParamRow(index int, label, value, hint string) string {
	shown := fieldValueStyle.Render(value)
	if value == "" {
		shown = placeholderStyle.Render(hint)
	}
	if index == 0 {
		shown = "‹ " + shown + " ›"
	}
	row := fieldLabelStyle.Render(label) + " " + shown
	if index == m.paramCursor {
		return selectedItemStyle.Render(row)
	}
	return itemStyle.Render(row)
}

// renderPresetsView renders the preset picker
func (m Model) renderPresetsView() string {
	var items []string
	for i, name := range m.presetNames() {
		line := name
		if name == m.session.Store().Preset() {
			line += " " + checkedStyle.Render("✓")
		}
		if i == m.presetCursor {
			items = append(items, selectedItemStyle.Render(line))
		} else {
			items = append(items, itemStyle.Render(line))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Quick Start Presets"),
		lipgloss.JoinVertical(lipgloss.Left, items...),
		m.renderFooter("↑/↓: navigate", "enter: apply", "esc: back"),
	)
}

// renderPromptView renders the cached prompt
func (m Model) renderPromptView() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Generated Prompt"))
	content.WriteString("\n")
	content.WriteString(m.renderBanners())
	if m.session.PromptStale() {
		content.WriteString(staleStyle.Render("Selection changed since this prompt was generated. Press g to regenerate."))
		content.WriteString("\n")
	}
	content.WriteString(artifactStyle.Render(m.scrolled(m.session.Prompt())))
	content.WriteString("\n")
	content.WriteString(m.renderFooter("↑/↓: scroll", "g: regenerate", "y: copy", "s: save", "esc: back"))
	return content.String()
}

// renderCodeView renders the cached code
func (m Model) renderCodeView() string {
	var content strings.Builder
	title := fmt.Sprintf("Generated Code (%s)", m.session.CodeTarget().DisplayName())
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n")
	content.WriteString(m.renderBanners())
	if m.target != m.session.CodeTarget() {
		content.WriteString(staleStyle.Render(fmt.Sprintf("Target set to %s. Press g to regenerate.", m.target.DisplayName())))
		content.WriteString("\n")
	} else if m.session.CodeStale() {
		content.WriteString(staleStyle.Render("Selection changed since this code was generated. Press g to regenerate."))
		content.WriteString("\n")
	}
	content.WriteString(artifactStyle.Render(m.scrolled(m.session.Code())))
	content.WriteString("\n")
	content.WriteString(m.renderFooter("↑/↓: scroll", "t: target", "g: regenerate", "y: copy", "s: save", "S: save project", "esc: back"))
	return content.String()
}

// scrolled returns the window of text that fits below the header.
func (m Model) scrolled(text string) string {
	lines := strings.Split(text, "\n")
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	start := m.scroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

// renderPreviewView renders the wireframe preview
func (m Model) renderPreviewView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Visual Preview"),
		preview.Render(m.session.Store().Flatten(), m.viewport),
		m.renderFooter("v: "+string(m.viewport.Next())+" view", "esc: back"),
	)
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Components", [][2]string{
			{"↑/↓, j/k", "Move between components"},
			{"←/→, tab", "Switch category"},
			{"1-3", "Jump to category"},
			{"space", "Select or remove the component"},
			{"v / V", "Next / previous variant"},
			{"e", "Edit Logo, Header or Hero Section parameters"},
			{"p", "Apply a preset"},
			{"X", "Clear every selection"},
		}},
		{"Outputs", [][2]string{
			{"g", "Generate the prompt"},
			{"c", "Generate code for the current target"},
			{"t", "Change target (code view)"},
			{"w", "Visual preview"},
			{"y", "Copy to clipboard"},
			{"s / S", "Save output / project"},
		}},
	}

	var blocks []string
	for _, section := range sections {
		lines := []string{lipgloss.NewStyle().Bold(true).Render(section.title)}
		for _, key := range section.keys {
			lines = append(lines, "  "+helpKeyStyle.Render(key[0])+helpDescStyle.Render(key[1]))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Website Builder Help"),
		lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(blocks, "\n\n")),
		footerStyle.Render("Press ? or Esc to close"),
	)
}

// renderConfirmView renders the clear-all confirmation dialog
func (m Model) renderConfirmView() string {
	dialog := confirmBoxStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Center,
			fmt.Sprintf("Clear all %d selected components?", m.session.Store().Count()),
			"",
			lipgloss.NewStyle().Foreground(mutedColor).Render("y = Yes    n = No    Esc = Cancel"),
		),
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(dialog)
}
