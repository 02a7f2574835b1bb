package config

import (
	"gopkg.in/yaml.v3"
)

// Document is a saved component selection. The preset, when present, is
// applied first and the selections are then applied in order on top of it.
type Document struct {
	Preset     string      `yaml:"preset,omitempty" validate:"omitempty,preset"`
	Target     string      `yaml:"target,omitempty" validate:"omitempty,target"`
	Selections []Selection `yaml:"selections,omitempty" validate:"omitempty,dive"`
}

// Selection picks one variant of a component, optionally with parameters.
type Selection struct {
	Category   string    `yaml:"category" validate:"required,category"`
	Component  string    `yaml:"component" validate:"required"`
	Variant    string    `yaml:"variant" validate:"required"`
	Parameters yaml.Node `yaml:"parameters,omitempty" validate:"-"`
}

// HasParameters reports whether the selection carries a non-null parameters
// block.
func (s Selection) HasParameters() bool {
	switch s.Parameters.Kind {
	case 0:
		return false
	case yaml.ScalarNode:
		return s.Parameters.Tag != "!!null"
	default:
		return true
	}
}
