package params

import (
	"fmt"

	"gopkg.in/yaml.v3"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// Decode builds parameters of the given kind from a YAML mapping. The "type"
// key picks the record; every other key must be a field of that type.
//
//	type: Hero Header
//	overlayColor: rgba(0,0,0,0.5)
func Decode(kind Kind, node *yaml.Node) (Parameters, error) {
	if node == nil {
		return New(kind, "")
	}
	if node.Kind != yaml.MappingNode {
		return nil, sitebrieferrors.NewValidationError(
			string(kind),
			fmt.Sprintf("line %d: parameters must be a mapping", node.Line),
			nil,
		)
	}

	var raw map[string]string
	if err := node.Decode(&raw); err != nil {
		return nil, sitebrieferrors.NewValidationError(
			string(kind),
			fmt.Sprintf("line %d: parameter values must be scalars", node.Line),
			err,
		)
	}

	params, err := New(kind, raw["type"])
	if err != nil {
		return nil, err
	}

	// Keys are applied in document order so errors point at the first bad key.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == "type" {
			continue
		}
		if err := params.Set(key, raw[key]); err != nil {
			return nil, err
		}
	}

	return params, nil
}
