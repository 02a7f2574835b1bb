package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
)

type presetsOptions struct {
	jsonOutput bool
}

func newPresetsCmd() *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List quick-start presets or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type presetJSONAssignment struct {
	Category  string `json:"category"`
	Component string `json:"component"`
	Variant   string `json:"variant"`
}

type presetJSON struct {
	Name       string                 `json:"name"`
	Selections []presetJSONAssignment `json:"selections"`
}

func runPresets(cmd *cobra.Command, args []string, opts *presetsOptions) error {
	presets := catalog.Presets()
	if len(args) == 1 {
		preset, ok := catalog.LookupPreset(args[0])
		if !ok {
			return newCommandError("show preset", "looking up preset",
				fmt.Errorf("unknown preset %q", args[0]),
				"Run 'sitebrief presets' to list the available presets.")
		}
		presets = []catalog.Preset{preset}
	}

	if opts.jsonOutput {
		payload := make([]presetJSON, len(presets))
		for i, preset := range presets {
			payload[i] = presetJSON{Name: preset.Name, Selections: presetAssignments(preset)}
		}
		if len(args) == 1 {
			return encodeJSON(cmd, payload[0])
		}
		return encodeJSON(cmd, payload)
	}

	if len(args) == 1 {
		return renderPreset(cmd, presets[0])
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tCOMPONENTS\tSITE TYPE")
	for _, preset := range presets {
		siteType := "-"
		if preset.General != nil {
			siteType = preset.General.Component
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\n", preset.Name, len(presetAssignments(preset)), siteType)
	}
	return writer.Flush()
}

func renderPreset(cmd *cobra.Command, preset catalog.Preset) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "%s\n\n", preset.Name)
	fmt.Fprintln(writer, "CATEGORY\tCOMPONENT\tVARIANT")
	for _, assignment := range presetAssignments(preset) {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", assignment.Category, assignment.Component, assignment.Variant)
	}
	return writer.Flush()
}

func presetAssignments(preset catalog.Preset) []presetJSONAssignment {
	var out []presetJSONAssignment
	for _, category := range catalog.Categories() {
		section, ok := preset.Section(category)
		if !ok {
			continue
		}
		for _, assignment := range section {
			out = append(out, presetJSONAssignment{
				Category:  string(category),
				Component: assignment.Component,
				Variant:   assignment.Variant,
			})
		}
	}
	return out
}
