// Package params defines the parameter forms attached to the Logo, Header,
// Hero Section and Footer components.
//
// Header, Hero Section and Footer carry an OptionSet: a type name plus a
// strongly typed record for that type. Logo carries independent text and image
// capabilities instead.
package params

// Kind identifies which parameter form a component uses.
type Kind string

const (
	KindLogo        Kind = "Logo"
	KindHeader      Kind = "Header"
	KindHeroSection Kind = "Hero Section"
	KindFooter      Kind = "Footer"
)

// Kinds lists every parameter kind.
func Kinds() []Kind {
	return []Kind{KindLogo, KindHeader, KindHeroSection, KindFooter}
}

// KindFor returns the parameter kind for a component name. Only the four
// special components have one.
func KindFor(component string) (Kind, bool) {
	for _, kind := range Kinds() {
		if string(kind) == component {
			return kind, true
		}
	}
	return "", false
}

// Parameters is the per-component configuration layered on top of a variant.
// Both *OptionSet and *Logo implement it.
type Parameters interface {
	Kind() Kind
	Type() string
	SetType(typ string) error
	TypeNames() []string
	Fields() []Field
	Get(key string) (string, bool)
	Set(key, value string) error
	Clone() Parameters
}

// New creates the parameters of a kind with the given type. An empty type
// selects the kind's default.
func New(kind Kind, typ string) (Parameters, error) {
	if kind == KindLogo {
		logo, err := NewLogo(typ)
		if err != nil {
			return nil, err
		}
		return logo, nil
	}
	set, err := NewOptionSet(kind, typ)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Input describes how a field is edited.
type Input int

const (
	InputText Input = iota
	InputChoice
)

func (i Input) String() string {
	switch i {
	case InputChoice:
		return "choice"
	default:
		return "text"
	}
}

// Field describes one editable option. Default is what a form displays for an
// unset choice; it is never written into the record.
type Field struct {
	Key         string
	Label       string
	Input       Input
	Placeholder string
	Default     string
	Choices     []string
}

func text(key, label, placeholder string) Field {
	return Field{Key: key, Label: label, Input: InputText, Placeholder: placeholder}
}

func choice(key, label, def string, choices ...string) Field {
	return Field{Key: key, Label: label, Input: InputChoice, Default: def, Choices: choices}
}
