// Package selection holds the in-memory selection of components and the
// parameters attached to them.
package selection

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
)

var (
	// ErrNotSelected is returned when parameters target a component that is
	// not currently selected.
	ErrNotSelected = errors.New("component is not selected")
	// ErrKindMismatch is returned when parameters do not belong to the
	// component they are attached to.
	ErrKindMismatch = errors.New("parameters do not match component")
)

// Entry is one flattened selection: a component, its chosen variant and any
// parameters attached to it.
type Entry struct {
	Category   catalog.Category
	Component  string
	Variant    string
	Parameters params.Parameters
}

type section struct {
	order    []string
	variants map[string]string
	params   map[string]params.Parameters
}

func newSection() *section {
	return &section{
		variants: make(map[string]string),
		params:   make(map[string]params.Parameters),
	}
}

func (s *section) set(component, variant string) {
	if _, exists := s.variants[component]; !exists {
		s.order = append(s.order, component)
	}
	s.variants[component] = variant
}

func (s *section) unset(component string) bool {
	if _, exists := s.variants[component]; !exists {
		return false
	}
	delete(s.variants, component)
	delete(s.params, component)
	for i, name := range s.order {
		if name == component {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Store maps (category, component) to a variant, with parameters kept
// alongside. Components keep the order in which they were first selected.
//
// A Store has a single owner and is not safe for concurrent use.
type Store struct {
	sections map[catalog.Category]*section
	preset   string
	revision uint64
}

// New returns an empty store.
func New() *Store {
	store := &Store{}
	store.reset()
	return store
}

func (s *Store) reset() {
	s.sections = make(map[catalog.Category]*section, len(catalog.Categories()))
	for _, category := range catalog.Categories() {
		s.sections[category] = newSection()
	}
	s.preset = ""
}

func (s *Store) touch() {
	s.revision++
}

// Set selects a component with the given variant, overwriting any previous
// variant in place. Parameters are left alone. Categories outside the catalog
// are ignored.
func (s *Store) Set(category catalog.Category, component, variant string) {
	sec, ok := s.sections[category]
	if !ok {
		return
	}
	sec.set(component, variant)
	s.touch()
}

// Unset deselects a component and drops its parameters with it. It reports
// whether the component was selected.
func (s *Store) Unset(category catalog.Category, component string) bool {
	sec, ok := s.sections[category]
	if !ok || !sec.unset(component) {
		return false
	}
	s.touch()
	return true
}

// SetParameters attaches parameters to a selected component. A nil value
// removes them.
func (s *Store) SetParameters(category catalog.Category, component string, p params.Parameters) error {
	sec, ok := s.sections[category]
	if !ok {
		return fmt.Errorf("%s/%s: %w", category, component, ErrNotSelected)
	}
	if _, selected := sec.variants[component]; !selected {
		return fmt.Errorf("%s/%s: %w", category, component, ErrNotSelected)
	}
	if p == nil {
		delete(sec.params, component)
		s.touch()
		return nil
	}
	kind, ok := params.KindFor(component)
	if !ok || kind != p.Kind() {
		return fmt.Errorf("%s/%s: %s parameters: %w", category, component, p.Kind(), ErrKindMismatch)
	}
	sec.params[component] = p.Clone()
	s.touch()
	return nil
}

// Parameters returns a copy of the parameters attached to a component.
func (s *Store) Parameters(category catalog.Category, component string) (params.Parameters, bool) {
	sec, ok := s.sections[category]
	if !ok {
		return nil, false
	}
	p, ok := sec.params[component]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Variant returns the variant chosen for a component.
func (s *Store) Variant(category catalog.Category, component string) (string, bool) {
	sec, ok := s.sections[category]
	if !ok {
		return "", false
	}
	variant, ok := sec.variants[component]
	return variant, ok
}

// Has reports whether a component is selected.
func (s *Store) Has(category catalog.Category, component string) bool {
	_, ok := s.Variant(category, component)
	return ok
}

// Components lists the selected components of a category in insertion order.
func (s *Store) Components(category catalog.Category) []string {
	sec, ok := s.sections[category]
	if !ok {
		return nil
	}
	return append([]string(nil), sec.order...)
}

// Count returns the number of selected components across all categories.
func (s *Store) Count() int {
	total := 0
	for _, sec := range s.sections {
		total += len(sec.order)
	}
	return total
}

// IsEmpty reports whether nothing is selected.
func (s *Store) IsEmpty() bool {
	return s.Count() == 0
}

// Preset returns the name of the last applied preset.
func (s *Store) Preset() string {
	return s.preset
}

// Revision increases on every mutation.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Clear empties the selection, all parameters and the preset marker.
func (s *Store) Clear() {
	s.reset()
	s.touch()
}

// ApplyPreset applies a named preset. Unknown names leave the store unchanged
// and report false.
func (s *Store) ApplyPreset(name string) bool {
	preset, ok := catalog.LookupPreset(name)
	if !ok {
		return false
	}
	s.Apply(preset)
	return true
}

// Apply replaces the store contents with a preset. The general category is
// always rebuilt. Basic and advanced are rebuilt only when the preset defines
// them and are left untouched otherwise. Parameters survive only for
// components that are still selected afterwards.
func (s *Store) Apply(preset catalog.Preset) {
	for _, category := range catalog.Categories() {
		assignments, defined := preset.Section(category)
		if !defined && category != catalog.General {
			continue
		}

		previous := s.sections[category]
		next := newSection()
		for _, assignment := range assignments {
			next.set(assignment.Component, assignment.Variant)
		}
		for component, p := range previous.params {
			if _, kept := next.variants[component]; kept {
				next.params[component] = p
			}
		}
		s.sections[category] = next
	}

	s.preset = preset.Name
	s.touch()
}

// Flatten lists every selection with categories in catalog order and
// components in insertion order. Parameters are copies.
func (s *Store) Flatten() []Entry {
	entries := make([]Entry, 0, s.Count())
	for _, category := range catalog.Categories() {
		sec := s.sections[category]
		for _, component := range sec.order {
			entry := Entry{
				Category:  category,
				Component: component,
				Variant:   sec.variants[component],
			}
			if p, ok := sec.params[component]; ok {
				entry.Parameters = p.Clone()
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// Snapshot returns a deep copy of the store.
func (s *Store) Snapshot() *Store {
	out := &Store{
		sections: make(map[catalog.Category]*section, len(s.sections)),
		preset:   s.preset,
		revision: s.revision,
	}
	for category, sec := range s.sections {
		copied := newSection()
		copied.order = append([]string(nil), sec.order...)
		for component, variant := range sec.variants {
			copied.variants[component] = variant
		}
		for component, p := range sec.params {
			copied.params[component] = p.Clone()
		}
		out.sections[category] = copied
	}
	return out
}
