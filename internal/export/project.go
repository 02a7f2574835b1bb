package export

import (
	"encoding/json"
	"strings"

	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
)

// File is one named file of a generated project.
type File struct {
	Name    string
	Content string
}

// Project is an ordered set of files produced for one target.
type Project struct {
	Target codegen.Target
	Files  []File
}

type packageScripts struct {
	Start string `json:"start"`
	Build string `json:"build"`
}

type packageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Main         string            `json:"main"`
	Scripts      packageScripts    `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewProject assembles package.json, README.md and the index file for the
// generated code.
func NewProject(entries []selection.Entry, prompt, code string, target codegen.Target) Project {
	return Project{
		Target: target,
		Files: []File{
			{Name: "package.json", Content: manifest(target)},
			{Name: "README.md", Content: readme(entries, prompt)},
			{Name: "index." + target.Extension(), Content: code},
		},
	}
}

func manifest(target codegen.Target) string {
	deps := map[string]string{}
	if target == codegen.TargetReact {
		deps["react"] = "^18.0.0"
		deps["react-dom"] = "^18.0.0"
	}

	data, err := json.MarshalIndent(packageManifest{
		Name:        "generated-website",
		Version:     "1.0.0",
		Description: "Generated website from Website Prompt Builder",
		Main:        "index.html",
		Scripts: packageScripts{
			Start: "serve .",
			Build: `echo "Build complete"`,
		},
		Dependencies: deps,
	}, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func readme(entries []selection.Entry, prompt string) string {
	var b strings.Builder
	b.WriteString("# Generated Website\n\n")
	b.WriteString("This project was generated using the Website Prompt Builder.\n\n")
	b.WriteString("## Components Included:\n")
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = "- " + entry.Component + " (" + entry.Variant + ")"
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n## Getting Started:\n")
	b.WriteString("1. Install dependencies: `npm install`\n")
	b.WriteString("2. Start development server: `npm start`\n\n")
	b.WriteString("## Original Prompt:\n```\n")
	b.WriteString(prompt)
	b.WriteString("\n```\n")
	return b.String()
}

// Bundle concatenates files into the single-text project format.
func Bundle(files []File) string {
	var b strings.Builder
	for _, file := range files {
		b.WriteString("=== ")
		b.WriteString(file.Name)
		b.WriteString(" ===\n")
		b.WriteString(file.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Bundle concatenates the project files.
func (p Project) Bundle() string {
	return Bundle(p.Files)
}
