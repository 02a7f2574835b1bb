// Package preview draws a terminal wireframe of the selected components,
// arranged in the order they usually appear on a page.
package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
)

// EmptyMessage is shown when nothing is selected.
const EmptyMessage = "Select components to see preview"

const unorderedPosition = 99

var pageOrder = map[string]int{
	"Logo":                  1,
	"Header":                2,
	"Navigation Bar":        3,
	"Hero Section":          4,
	"Search Bar":            5,
	"Breadcrumbs":           6,
	"Content Area":          7,
	"Slider":                8,
	"Feature/Product Cards": 9,
	"Blog Section":          10,
	"Forms":                 11,
	"Sidebar":               12,
	"Call to Action (CTA)":  13,
	"Social Media Links":    14,
	"Footer":                15,
}

// Order returns the page position of a component. Components without a
// known position sort last.
func Order(component string) int {
	if order, ok := pageOrder[component]; ok {
		return order
	}
	return unorderedPosition
}

// Block is one component placed on the wireframe.
type Block struct {
	Category  catalog.Category
	Component string
	Variant   string
	Order     int
}

// ID identifies a block the way the builder keys its rows.
func (b Block) ID() string {
	return string(b.Category) + "-" + b.Component
}

// Arrange orders entries by page position. Entries sharing a position keep
// their flattened order.
func Arrange(entries []selection.Entry) []Block {
	blocks := make([]Block, len(entries))
	for i, entry := range entries {
		blocks[i] = Block{
			Category:  entry.Category,
			Component: entry.Component,
			Variant:   entry.Variant,
			Order:     Order(entry.Component),
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Order < blocks[j].Order
	})
	return blocks
}

// Render draws the wireframe for a viewport. Unknown viewports render as
// desktop.
func Render(entries []selection.Entry, viewport Viewport) string {
	if !viewport.Valid() {
		viewport = Desktop
	}
	width := viewport.Width()
	inner := width - frameStyle.GetHorizontalFrameSize()

	blocks := Arrange(entries)
	if len(blocks) == 0 {
		empty := emptyStyle.Width(inner).Render(EmptyMessage)
		return frameStyle.Width(inner).Render(empty)
	}

	rendered := make([]string, len(blocks))
	for i, block := range blocks {
		rendered[i] = renderBlock(block, inner)
	}

	frame := frameStyle.Width(inner).Render(strings.Join(rendered, "\n"))
	footer := footerStyle.Width(width).Render(fmt.Sprintf("Preview shows %d components in %s view", len(blocks), viewport))
	return lipgloss.JoinVertical(lipgloss.Left, frame, footer)
}

func renderBlock(block Block, width int) string {
	contentWidth := width - blockStyle.GetHorizontalFrameSize()
	lines := mockup(block, contentWidth)

	badge := badgeStyle.Render(string(block.Category))
	lines[0] = strings.TrimRight(lines[0], " ")
	gap := contentWidth - lipgloss.Width(lines[0]) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	lines[0] = lines[0] + strings.Repeat(" ", gap) + badge

	return blockStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func mockup(block Block, width int) []string {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}
	bar := func(numerator, denominator int) string {
		n := width * numerator / denominator
		if n < 1 {
			n = 1
		}
		return mutedStyle.Render(strings.Repeat("▬", n))
	}

	switch block.Component {
	case "Logo":
		return []string{accentStyle.Render("■") + " " + labelStyle.Render("Logo")}
	case "Header":
		return []string{labelStyle.Render("Header"), mutedStyle.Render(block.Variant)}
	case "Navigation Bar":
		return []string{"Home  About  Services  Contact"}
	case "Hero Section":
		return []string{"", center(heroStyle.Render("Hero Section")), center(mutedStyle.Render(block.Variant)), ""}
	case "Search Bar":
		return []string{"[ Search...        ] " + accentStyle.Render("[Search]")}
	case "Content Area":
		return []string{bar(3, 4), bar(1, 2), bar(5, 6)}
	case "Slider":
		return []string{accentStyle.Render("[▓▓▓]") + " [░░░] [░░░]"}
	case "Feature/Product Cards":
		return []string{"┌─────┐ ┌─────┐ ┌─────┐", "│ ▬▬▬ │ │ ▬▬▬ │ │ ▬▬▬ │", "└─────┘ └─────┘ └─────┘"}
	case "Forms":
		return []string{"[______________]", "[______________]", accentStyle.Render("[    Submit    ]")}
	case "Sidebar":
		return []string{"│ " + bar(1, 3), "│ " + bar(1, 4), "│ " + bar(1, 6)}
	case "Call to Action (CTA)":
		return []string{center(ctaStyle.Render("[ Call to Action ]"))}
	case "Social Media Links":
		return []string{center("(f) (t) (in)")}
	default:
		return []string{labelStyle.Render(block.Component), mutedStyle.Render(block.Variant)}
	}
}
