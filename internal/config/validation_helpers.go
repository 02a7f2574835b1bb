package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors
// keyed by the YAML field path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return sitebrieferrors.NewValidationError(field, msg, err)
	}

	return sitebrieferrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns "Document.Selections[0].Category" into
// "selections[0].category".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, len(parts))
	for i, part := range parts {
		lowered[i] = strings.ToLower(part)
	}
	return strings.Join(lowered, ".")
}

func fieldForSelection(index int, field string) string {
	return fmt.Sprintf("selections[%d].%s", index, field)
}
