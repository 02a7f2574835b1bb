// Package prompt compiles a selection into a natural-language build prompt.
package prompt

import (
	"strings"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
)

// EmptySelection is returned when nothing is selected.
const EmptySelection = "Please select at least one component and its type."

const (
	preamble   = "You are a full-stack web application developer. Create a modern, responsive single-page web application"
	connective = " that incorporates ALL of the following components into a complete, fully integrated app:\n\n"
	closing    = "The final application should be production-ready and demonstrate modern web development best practices."
)

var requirements = []string{
	"Use modern web technologies (HTML5, CSS3, JavaScript ES6+)",
	"Implement responsive design for mobile, tablet, and desktop",
	"Include meaningful test data and placeholder content",
	"Ensure accessibility compliance (WCAG 2.1 AA)",
	"Optimize for performance and SEO",
	"Use consistent styling and smooth interactions",
	"Provide a single, cohesive HTML file with embedded CSS and JavaScript",
	"Include hover effects, transitions, and micro-interactions",
	"Ensure cross-browser compatibility",
}

// Generate compiles the current contents of a store.
func Generate(store *selection.Store) string {
	return Compile(store.Flatten())
}

// Compile renders flattened entries into the prompt. The output depends only
// on the entries.
func Compile(entries []selection.Entry) string {
	if len(entries) == 0 {
		return EmptySelection
	}

	var b strings.Builder
	b.WriteString(preamble)
	for _, entry := range entries {
		if entry.Category == catalog.General {
			b.WriteString(" for ")
			b.WriteString(strings.ToLower(entry.Variant))
			break
		}
	}
	b.WriteString(connective)

	for _, entry := range entries {
		b.WriteString("• ")
		b.WriteString(entry.Component)
		b.WriteString(" with a ")
		b.WriteString(strings.ToLower(entry.Variant))
		b.WriteString(" implementation")
		writeDetails(&b, entry)
		b.WriteString("\n")
	}

	b.WriteString("\nRequirements:\n")
	for _, requirement := range requirements {
		b.WriteString("• ")
		b.WriteString(requirement)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(closing)

	return b.String()
}

// writeDetails adds the details block of the four parameterised
// components. Parameters on any other component are ignored.
func writeDetails(b *strings.Builder, entry selection.Entry) {
	if entry.Parameters == nil {
		return
	}
	kind, ok := params.KindFor(entry.Component)
	if !ok {
		return
	}

	switch p := entry.Parameters.(type) {
	case *params.Logo:
		if kind == params.KindLogo {
			writeLogo(b, p)
		}
	case *params.OptionSet:
		if kind == p.Kind() {
			writeOptions(b, entry.Component, p)
		}
	}
}

func writeLogo(b *strings.Builder, logo *params.Logo) {
	b.WriteString("\n  Logo specifications:")

	file := logo.ImageFile()
	switch logo.Type() {
	case params.LogoText:
		if logo.Text() != "" {
			b.WriteString("\n  - Text logo with the text: \"" + logo.Text() + "\"")
		}
	case params.LogoImage:
		if file != nil {
			b.WriteString("\n  - Image logo using uploaded file: " + file.Name)
		} else if logo.ImageURL() != "" {
			b.WriteString("\n  - Image logo from URL: " + logo.ImageURL())
		}
	case params.LogoCombination:
		if logo.Text() != "" {
			b.WriteString("\n  - Combination logo with text: \"" + logo.Text() + "\"")
		}
		if file != nil {
			b.WriteString("\n  - Combined with uploaded image: " + file.Name)
		} else if logo.ImageURL() != "" {
			b.WriteString("\n  - Combined with image from URL: " + logo.ImageURL())
		}
	}
}

func writeOptions(b *strings.Builder, component string, set *params.OptionSet) {
	b.WriteString("\n  " + component + " specifications:")
	b.WriteString("\n  - Type: " + set.Type())
	for _, option := range set.Entries() {
		b.WriteString("\n  - " + option.Key + ": " + option.Value)
	}
}
