package params

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// Options is the typed record carried by one option type. Concrete records
// are the *StandardHeader, *FullWidthImageHero, *NewsletterFooter, ... types.
type Options interface {
	TypeName() string
	slots() []*string
}

// TypeSchema lists the fields of one option type in display order.
type TypeSchema struct {
	Name   string
	Fields []Field
	build  func() Options
}

// Field returns the field with the given key.
func (t TypeSchema) Field(key string) (Field, int, bool) {
	for i, field := range t.Fields {
		if field.Key == key {
			return field, i, true
		}
	}
	return Field{}, -1, false
}

// Schema is the state machine of one option-set kind: its types and the
// fields each type exposes.
type Schema struct {
	Kind        Kind
	DefaultType string
	Types       []TypeSchema
}

// TypeNames lists the type names in display order.
func (s Schema) TypeNames() []string {
	names := make([]string, len(s.Types))
	for i, typ := range s.Types {
		names[i] = typ.Name
	}
	return names
}

// Lookup finds a type by name.
func (s Schema) Lookup(name string) (TypeSchema, bool) {
	for _, typ := range s.Types {
		if typ.Name == name {
			return typ, true
		}
	}
	return TypeSchema{}, false
}

// SchemaFor returns the option-set schema for Header, Hero Section or Footer.
// Logo has no option-set schema; see LogoSchema.
func SchemaFor(kind Kind) (Schema, bool) {
	switch kind {
	case KindHeader:
		return headerSchema, true
	case KindHeroSection:
		return heroSchema, true
	case KindFooter:
		return footerSchema, true
	default:
		return Schema{}, false
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("logo_type", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case LogoText, LogoImage, LogoCombination:
				return true
			default:
				return false
			}
		})

		validateInst = v
	})

	return validateInst
}

// validateChoice checks a choice value against the field's enumerated set.
// An empty value clears the field and is always accepted.
func validateChoice(kind Kind, field Field, value string) error {
	if field.Input != InputChoice || value == "" {
		return nil
	}
	if err := validatorInstance().Var(value, "oneof="+strings.Join(field.Choices, " ")); err != nil {
		return sitebrieferrors.NewValidationError(
			string(kind)+"."+field.Key,
			"must be one of "+strings.Join(field.Choices, ", "),
			err,
		)
	}
	return nil
}
