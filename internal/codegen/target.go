package codegen

import (
	"fmt"
	"strings"
)

// Target is an output templating flavour.
type Target string

const (
	TargetHTML    Target = "html"
	TargetReact   Target = "react"
	TargetVue     Target = "vue"
	TargetAngular Target = "angular"
	TargetSvelte  Target = "svelte"
)

type targetInfo struct {
	target    Target
	name      string
	extension string
}

var targetTable = []targetInfo{
	{target: TargetHTML, name: "HTML/CSS/JS", extension: "html"},
	{target: TargetReact, name: "React", extension: "jsx"},
	{target: TargetVue, name: "Vue.js", extension: "vue"},
	{target: TargetAngular, name: "Angular", extension: "ts"},
	{target: TargetSvelte, name: "Svelte", extension: "svelte"},
}

// Targets lists the supported targets in display order.
func Targets() []Target {
	out := make([]Target, len(targetTable))
	for i, info := range targetTable {
		out[i] = info.target
	}
	return out
}

// ParseTarget resolves a target name case-insensitively.
func ParseTarget(name string) (Target, error) {
	candidate := Target(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := lookupTarget(candidate); ok {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown target %q (expected one of html, react, vue, angular, svelte)", name)
}

// Valid reports whether the target is supported.
func (t Target) Valid() bool {
	_, ok := lookupTarget(t)
	return ok
}

// DisplayName returns the human readable target name.
func (t Target) DisplayName() string {
	info, ok := lookupTarget(t)
	if !ok {
		return string(t)
	}
	return info.name
}

// Extension returns the file extension used for generated code. Unknown
// targets fall back to svelte.
func (t Target) Extension() string {
	info, ok := lookupTarget(t)
	if !ok {
		return "svelte"
	}
	return info.extension
}

func lookupTarget(t Target) (targetInfo, bool) {
	for _, info := range targetTable {
		if info.target == t {
			return info, true
		}
	}
	return targetInfo{}, false
}
