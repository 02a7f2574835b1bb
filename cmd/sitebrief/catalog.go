package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog [category [component]]",
		Short: "List component categories, components and variants",
		Example: `  sitebrief catalog
  sitebrief catalog basic
  sitebrief catalog basic "Hero Section" --json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string, opts *catalogOptions) error {
	if len(args) == 0 {
		return renderCategories(cmd, opts)
	}

	category, err := catalog.ParseCategory(args[0])
	if err != nil {
		return newCommandError("list catalog", "reading category", err, "Use general, basic or advanced.")
	}

	if len(args) == 1 {
		return renderComponents(cmd, category, opts)
	}

	component := args[1]
	if !catalog.HasComponent(category, component) {
		return newCommandError("list catalog", "reading component",
			fmt.Errorf("unknown component %q in category %q", component, category),
			fmt.Sprintf("Run 'sitebrief catalog %s' to list its components.", category))
	}
	return renderVariants(cmd, category, component, opts)
}

type catalogJSONCategory struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Components []string `json:"components"`
}

func renderCategories(cmd *cobra.Command, opts *catalogOptions) error {
	categories := catalog.Categories()

	if opts.jsonOutput {
		payload := make([]catalogJSONCategory, len(categories))
		for i, category := range categories {
			payload[i] = catalogJSONCategory{
				Name:       string(category),
				Title:      catalog.Title(category),
				Components: catalog.Components(category),
			}
		}
		return encodeJSON(cmd, payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CATEGORY\tTITLE\tCOMPONENTS")
	for _, category := range categories {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", category, catalog.Title(category), len(catalog.Components(category)))
	}
	return writer.Flush()
}

type catalogJSONComponent struct {
	Name       string   `json:"name"`
	Variants   []string `json:"variants"`
	Parameters bool     `json:"parameters"`
}

func renderComponents(cmd *cobra.Command, category catalog.Category, opts *catalogOptions) error {
	components := catalog.Components(category)

	if opts.jsonOutput {
		payload := make([]catalogJSONComponent, len(components))
		for i, component := range components {
			_, hasParams := params.KindFor(component)
			payload[i] = catalogJSONComponent{
				Name:       component,
				Variants:   catalog.Variants(category, component),
				Parameters: hasParams,
			}
		}
		return encodeJSON(cmd, payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "COMPONENT\tVARIANTS\tPARAMETERS")
	for _, component := range components {
		hasParams := "-"
		if _, ok := params.KindFor(component); ok {
			hasParams = "yes"
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\n", component, len(catalog.Variants(category, component)), hasParams)
	}
	return writer.Flush()
}

func renderVariants(cmd *cobra.Command, category catalog.Category, component string, opts *catalogOptions) error {
	variants := catalog.Variants(category, component)

	if opts.jsonOutput {
		_, hasParams := params.KindFor(component)
		return encodeJSON(cmd, catalogJSONComponent{Name: component, Variants: variants, Parameters: hasParams})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", component, catalog.Title(category))
	for i, variant := range variants {
		if i == 0 {
			fmt.Fprintf(out, "  - %s (default)\n", variant)
			continue
		}
		fmt.Fprintf(out, "  - %s\n", variant)
	}
	if _, ok := params.KindFor(component); ok {
		fmt.Fprintf(out, "\nRun 'sitebrief schema %q' to see its parameters.\n", component)
	}
	return nil
}

func encodeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
