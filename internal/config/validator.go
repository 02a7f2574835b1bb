package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// ValidateDocument performs schema and catalog validation on a document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return sitebrieferrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i, sel := range doc.Selections {
		if _, err := resolveSelection(i, sel); err != nil {
			return err
		}
	}

	return nil
}

// resolved is a selection checked against the catalog with its parameters
// decoded.
type resolved struct {
	category   catalog.Category
	component  string
	variant    string
	parameters params.Parameters
}

func resolveSelection(index int, sel Selection) (resolved, error) {
	category, err := catalog.ParseCategory(sel.Category)
	if err != nil {
		return resolved{}, sitebrieferrors.NewValidationError(fieldForSelection(index, "category"), err.Error(), err)
	}

	if !catalog.HasComponent(category, sel.Component) {
		return resolved{}, sitebrieferrors.NewValidationError(
			fieldForSelection(index, "component"),
			fmt.Sprintf("unknown component %q in category %q", sel.Component, category),
			nil,
		)
	}

	if !catalog.HasVariant(category, sel.Component, sel.Variant) {
		return resolved{}, sitebrieferrors.NewValidationError(
			fieldForSelection(index, "variant"),
			fmt.Sprintf("unknown variant %q for %s", sel.Variant, sel.Component),
			nil,
		)
	}

	out := resolved{category: category, component: sel.Component, variant: sel.Variant}
	if !sel.HasParameters() {
		return out, nil
	}

	kind, ok := params.KindFor(sel.Component)
	if !ok {
		return resolved{}, sitebrieferrors.NewValidationError(
			fieldForSelection(index, "parameters"),
			fmt.Sprintf("component %q does not take parameters", sel.Component),
			nil,
		)
	}

	node := sel.Parameters
	decoded, err := params.Decode(kind, &node)
	if err != nil {
		return resolved{}, sitebrieferrors.NewValidationError(fieldForSelection(index, "parameters"), err.Error(), err)
	}
	out.parameters = decoded
	return out, nil
}

// ApplyTo applies the document to a store: the preset first, then every
// selection in order. Later selections of the same component overwrite
// earlier ones.
func (d *Document) ApplyTo(store *selection.Store) error {
	if err := ValidateDocument(d); err != nil {
		return err
	}

	if d.Preset != "" {
		store.ApplyPreset(d.Preset)
	}

	for i, sel := range d.Selections {
		r, err := resolveSelection(i, sel)
		if err != nil {
			return err
		}
		store.Set(r.category, r.component, r.variant)
		if r.parameters == nil {
			continue
		}
		if err := store.SetParameters(r.category, r.component, r.parameters); err != nil {
			return sitebrieferrors.NewValidationError(fieldForSelection(i, "parameters"), err.Error(), err)
		}
	}

	return nil
}

// Build validates a document and returns a fresh store holding its selection.
func Build(doc *Document) (*selection.Store, error) {
	store := selection.New()
	if err := doc.ApplyTo(store); err != nil {
		return nil, err
	}
	return store, nil
}

// DefaultTarget returns the document target, or html when none is set.
func (d *Document) DefaultTarget() codegen.Target {
	if d == nil || d.Target == "" {
		return codegen.TargetHTML
	}
	target, err := codegen.ParseTarget(d.Target)
	if err != nil {
		return codegen.TargetHTML
	}
	return target
}

// FromStore captures a store as a document. The preset marker is not kept:
// every selection is listed explicitly so reapplying the document reproduces
// the store even after components were removed from a preset.
func FromStore(store *selection.Store, target codegen.Target) Document {
	doc := Document{Target: string(target)}
	for _, entry := range store.Flatten() {
		sel := Selection{
			Category:  string(entry.Category),
			Component: entry.Component,
			Variant:   entry.Variant,
		}
		if entry.Parameters != nil {
			sel.Parameters = parametersNode(entry.Parameters)
		}
		doc.Selections = append(doc.Selections, sel)
	}
	return doc
}

func parametersNode(p params.Parameters) yaml.Node {
	node := yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	appendPair := func(key, value string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	appendPair("type", p.Type())
	for _, field := range p.Fields() {
		if value, ok := p.Get(field.Key); ok && value != "" {
			appendPair(field.Key, value)
		}
	}
	return node
}
