package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	builderapp "github.com/alexisbeaulieu97/sitebrief/internal/app/builder"
	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/config"
	"github.com/alexisbeaulieu97/sitebrief/internal/logger"
)

// selectionFlags describes where a command reads its selection from. They
// apply in order: document, preset, then each --select.
type selectionFlags struct {
	file    string
	preset  string
	selects []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Selection document (YAML)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Apply a named preset")
	cmd.Flags().StringArrayVar(&f.selects, "select", nil, "Select a component as category/Component[=Variant] (repeatable)")
}

// load builds a session from the flags. The returned document is nil when no
// file was given.
func (f *selectionFlags) load(operation string, log *logger.Logger) (*builderapp.Session, *config.Document, error) {
	session := builderapp.NewSession(log)

	var doc *config.Document
	if strings.TrimSpace(f.file) != "" {
		if err := validateInputPath(f.file); err != nil {
			return nil, nil, newCommandError(operation, "reading selection document", err, "Pass an existing YAML file with -f.")
		}
		parsed, err := config.ParseFile(f.file)
		if err != nil {
			return nil, nil, newCommandError(operation, fmt.Sprintf("loading %s", f.file), err, "Fix the reported field and try again.")
		}
		if err := parsed.ApplyTo(session.Store()); err != nil {
			return nil, nil, newCommandError(operation, fmt.Sprintf("applying %s", f.file), err, "Fix the reported field and try again.")
		}
		doc = parsed
	}

	if f.preset != "" && !session.ApplyPreset(f.preset) {
		return nil, nil, newCommandError(operation, "applying preset",
			fmt.Errorf("unknown preset %q", f.preset),
			"Run 'sitebrief presets' to list the available presets.")
	}

	for _, raw := range f.selects {
		category, component, variant, err := parseSelect(raw)
		if err != nil {
			return nil, nil, newCommandError(operation, fmt.Sprintf("parsing --select %q", raw), err,
				"Use category/Component=Variant, for example basic/Header=Classic.")
		}
		session.Store().Set(category, component, variant)
	}

	return session, doc, nil
}

// parseSelect reads "category/Component[=Variant]". Component names may
// contain slashes, so only the first one separates the category. A missing
// variant selects the component's first variant.
func parseSelect(raw string) (catalog.Category, string, string, error) {
	categoryName, rest, ok := strings.Cut(raw, "/")
	if !ok {
		return "", "", "", fmt.Errorf("missing category in %q", raw)
	}
	category, err := catalog.ParseCategory(categoryName)
	if err != nil {
		return "", "", "", err
	}

	component, variant, hasVariant := strings.Cut(rest, "=")
	component = strings.TrimSpace(component)
	variant = strings.TrimSpace(variant)
	if !catalog.HasComponent(category, component) {
		return "", "", "", fmt.Errorf("unknown component %q in category %q", component, category)
	}

	if !hasVariant || variant == "" {
		variant, _ = catalog.DefaultVariant(category, component)
		return category, component, variant, nil
	}
	if !catalog.HasVariant(category, component, variant) {
		return "", "", "", fmt.Errorf("unknown variant %q for %s", variant, component)
	}
	return category, component, variant, nil
}

func validateInputPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", abs)
	}
	return nil
}
