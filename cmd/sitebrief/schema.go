package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/params"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <component> [type]",
		Short: "Show the parameter types of Logo, Header, Hero Section or Footer",
		Example: `  sitebrief schema Header
  sitebrief schema "Hero Section" "Split Layout Hero"
  sitebrief schema Logo combination`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, args)
		},
	}
}

// schemaType is the common shape of logo and option-set types.
type schemaType struct {
	Name   string
	Label  string
	Fields []params.Field
}

func runSchema(cmd *cobra.Command, args []string) error {
	kind, ok := params.KindFor(args[0])
	if !ok {
		return newCommandError("show schema", "looking up component",
			fmt.Errorf("component %q has no parameters", args[0]),
			"Only Logo, Header, Hero Section and Footer take parameters.")
	}

	types, defaultType := schemaTypes(kind)

	if len(args) == 1 {
		writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "TYPE\tFIELDS")
		for _, typ := range types {
			name := typ.Name
			if name == defaultType {
				name += " (default)"
			}
			keys := make([]string, len(typ.Fields))
			for i, field := range typ.Fields {
				keys[i] = field.Key
			}
			fmt.Fprintf(writer, "%s\t%s\n", name, strings.Join(keys, ", "))
		}
		return writer.Flush()
	}

	for _, typ := range types {
		if typ.Name != args[1] {
			continue
		}
		return renderSchemaFields(cmd, kind, typ)
	}

	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = typ.Name
	}
	return newCommandError("show schema", "looking up type",
		fmt.Errorf("unknown %s type %q", kind, args[1]),
		"Use one of: "+strings.Join(names, ", ")+".")
}

func schemaTypes(kind params.Kind) ([]schemaType, string) {
	if kind == params.KindLogo {
		logo := params.LogoSchema()
		out := make([]schemaType, len(logo))
		for i, typ := range logo {
			out[i] = schemaType{Name: typ.Name, Label: typ.Label, Fields: typ.Fields}
		}
		return out, params.LogoText
	}

	schema, _ := params.SchemaFor(kind)
	out := make([]schemaType, len(schema.Types))
	for i, typ := range schema.Types {
		out[i] = schemaType{Name: typ.Name, Fields: typ.Fields}
	}
	return out, schema.DefaultType
}

func renderSchemaFields(cmd *cobra.Command, kind params.Kind, typ schemaType) error {
	out := cmd.OutOrStdout()
	title := fmt.Sprintf("%s: %s", kind, typ.Name)
	if typ.Label != "" {
		title += " (" + typ.Label + ")"
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tLABEL\tINPUT\tDETAILS")
	for _, field := range typ.Fields {
		details := field.Placeholder
		if field.Input == params.InputChoice {
			details = strings.Join(field.Choices, " | ")
			if field.Default != "" {
				details += fmt.Sprintf(" (default %s)", field.Default)
			}
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", field.Key, field.Label, field.Input, details)
	}
	return writer.Flush()
}
