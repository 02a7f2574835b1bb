package codegen

import (
	"bytes"
	"embed"
	"encoding/json"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var boilerplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// jsonIndent is the indentation width of the embedded component list.
var jsonIndent = map[Target]int{
	TargetVue:     6,
	TargetAngular: 4,
	TargetSvelte:  4,
}

type boilerplateData struct {
	Components string
}

func generateBoilerplate(target Target, components []Component) string {
	data := boilerplateData{Components: componentsJSON(components, jsonIndent[target])}

	var buf bytes.Buffer
	if err := boilerplates.ExecuteTemplate(&buf, string(target)+".tmpl", data); err != nil {
		return NotImplemented
	}
	return buf.String()
}

// componentsJSON renders the list the way the generated code declares it:
// indented, with HTML characters left as is.
func componentsJSON(components []Component, indent int) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", indent))
	if err := encoder.Encode(components); err != nil {
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
