// Package codegen renders a selection into skeletal boilerplate for one of the
// supported templating targets.
//
// Coverage differs per target: html and react emit fragments for a handful of
// component kinds while vue, angular and svelte only ever gate Header and
// Navigation Bar. Components without a fragment are skipped.
package codegen

import (
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
)

const (
	// NoComponents is returned for an empty component list, whatever the target.
	NoComponents = "// No components selected"
	// NotImplemented is returned for targets without a generator.
	NotImplemented = "// Framework not implemented yet"
)

// Component is the flattened form handed to the generators. Field order
// matters: it is the key order of the embedded JSON list.
type Component struct {
	Component string `json:"component"`
	Type      string `json:"type"`
	Category  string `json:"category"`
}

// FromEntries converts flattened selection entries, keeping their order.
func FromEntries(entries []selection.Entry) []Component {
	components := make([]Component, len(entries))
	for i, entry := range entries {
		components[i] = Component{
			Component: entry.Component,
			Type:      entry.Variant,
			Category:  string(entry.Category),
		}
	}
	return components
}

// Generate renders components for a target. It never fails.
func Generate(components []Component, target Target) string {
	if len(components) == 0 {
		return NoComponents
	}

	switch target {
	case TargetHTML:
		return generateHTML(components)
	case TargetReact:
		return generateReact(components)
	case TargetVue, TargetAngular, TargetSvelte:
		return generateBoilerplate(target, components)
	default:
		return NotImplemented
	}
}

// GenerateFromStore flattens a store and renders it.
func GenerateFromStore(store *selection.Store, target Target) string {
	return Generate(FromEntries(store.Flatten()), target)
}
