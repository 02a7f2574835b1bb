package params

import (
	"fmt"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// Entry is one populated option in field order.
type Entry struct {
	Key   string
	Value string
}

// OptionSet is the parameter bag of Header, Hero Section and Footer.
type OptionSet struct {
	kind    Kind
	typ     TypeSchema
	options Options
}

// NewOptionSet creates an option set of the given type. An empty type selects
// the kind's default type.
func NewOptionSet(kind Kind, typ string) (*OptionSet, error) {
	set := &OptionSet{kind: kind}
	if err := set.SetType(typ); err != nil {
		return nil, err
	}
	return set, nil
}

// Kind implements Parameters.
func (s *OptionSet) Kind() Kind { return s.kind }

// Type returns the current type name.
func (s *OptionSet) Type() string { return s.typ.Name }

// Options returns the typed record for the current type.
func (s *OptionSet) Options() Options { return s.options }

// TypeNames lists the types available to this kind.
func (s *OptionSet) TypeNames() []string {
	schema, _ := SchemaFor(s.kind)
	return schema.TypeNames()
}

// Fields lists the fields of the current type.
func (s *OptionSet) Fields() []Field {
	return append([]Field(nil), s.typ.Fields...)
}

// SetType switches to another type. The record is always rebuilt empty, even
// when the new type shares field keys with the old one.
func (s *OptionSet) SetType(typ string) error {
	schema, ok := SchemaFor(s.kind)
	if !ok {
		return sitebrieferrors.NewValidationError(string(s.kind), "component has no option types", nil)
	}
	if typ == "" {
		typ = schema.DefaultType
	}
	next, ok := schema.Lookup(typ)
	if !ok {
		return sitebrieferrors.NewValidationError(
			string(s.kind)+".type",
			fmt.Sprintf("unknown type %q", typ),
			nil,
		)
	}
	s.typ = next
	s.options = next.build()
	return nil
}

// Get returns the stored value of a field. Unset fields are empty.
func (s *OptionSet) Get(key string) (string, bool) {
	_, idx, ok := s.typ.Field(key)
	if !ok {
		return "", false
	}
	return *s.options.slots()[idx], true
}

// Set stores a field value. Free text is stored as given; choices must be one
// of the field's choices. An empty value clears the field.
func (s *OptionSet) Set(key, value string) error {
	field, idx, ok := s.typ.Field(key)
	if !ok {
		return sitebrieferrors.NewValidationError(
			string(s.kind)+".options",
			fmt.Sprintf("unknown option %q for type %q", key, s.typ.Name),
			nil,
		)
	}
	if err := validateChoice(s.kind, field, value); err != nil {
		return err
	}
	*s.options.slots()[idx] = value
	return nil
}

// Entries lists the non-empty options in field order.
func (s *OptionSet) Entries() []Entry {
	slots := s.options.slots()
	entries := make([]Entry, 0, len(slots))
	for i, field := range s.typ.Fields {
		if value := *slots[i]; value != "" {
			entries = append(entries, Entry{Key: field.Key, Value: value})
		}
	}
	return entries
}

// Clone implements Parameters.
func (s *OptionSet) Clone() Parameters {
	out := &OptionSet{kind: s.kind, typ: s.typ, options: s.typ.build()}
	src := s.options.slots()
	for i, slot := range out.options.slots() {
		*slot = *src[i]
	}
	return out
}
