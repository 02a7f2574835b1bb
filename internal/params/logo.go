package params

import (
	"fmt"
	"strings"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// Logo types.
const (
	LogoText        = "text"
	LogoImage       = "image"
	LogoCombination = "combination"
)

// ImageRef is an opaque handle to a user-chosen local image. Only its display
// name is ever read.
type ImageRef struct {
	Name string
}

// LogoTypeSchema describes one logo type for forms and the schema command.
type LogoTypeSchema struct {
	Name   string
	Label  string
	Fields []Field
}

var (
	logoTextField  = text("text", "Logo Text", "Enter your logo text (e.g., 'My Company')")
	logoURLField   = text("imageUrl", "Or enter image URL", "https://example.com/logo.png")
	logoFileField  = text("imageFile", "Upload from device", "logo.png")
	logoTypeSchema = []LogoTypeSchema{
		{Name: LogoText, Label: "Text Logo", Fields: []Field{logoTextField}},
		{Name: LogoImage, Label: "Image Logo", Fields: []Field{logoFileField, logoURLField}},
		{Name: LogoCombination, Label: "Combination (Text + Image)", Fields: []Field{logoTextField, logoFileField, logoURLField}},
	}
)

// LogoSchema lists the logo types in display order.
func LogoSchema() []LogoTypeSchema {
	out := make([]LogoTypeSchema, len(logoTypeSchema))
	for i, typ := range logoTypeSchema {
		out[i] = LogoTypeSchema{Name: typ.Name, Label: typ.Label, Fields: append([]Field(nil), typ.Fields...)}
	}
	return out
}

// Logo is the parameter bag of the Logo component. Switching type keeps the
// stored values; the type only decides which of them are shown.
type Logo struct {
	typ       string
	text      string
	imageURL  string
	imageFile *ImageRef
}

// NewLogo creates a logo of the given type. An empty type means text.
func NewLogo(typ string) (*Logo, error) {
	logo := &Logo{}
	if err := logo.SetType(typ); err != nil {
		return nil, err
	}
	return logo, nil
}

// Kind implements Parameters.
func (l *Logo) Kind() Kind { return KindLogo }

// Type returns the logo type.
func (l *Logo) Type() string { return l.typ }

// TypeNames lists the logo types.
func (l *Logo) TypeNames() []string {
	return []string{LogoText, LogoImage, LogoCombination}
}

// SetType switches between text, image and combination.
func (l *Logo) SetType(typ string) error {
	if typ == "" {
		typ = LogoText
	}
	if err := validatorInstance().Var(typ, "logo_type"); err != nil {
		return sitebrieferrors.NewValidationError(
			"Logo.type",
			fmt.Sprintf("unknown logo type %q (expected text, image or combination)", typ),
			err,
		)
	}
	l.typ = typ
	return nil
}

// Text returns the logo text.
func (l *Logo) Text() string { return l.text }

// SetText stores the logo text.
func (l *Logo) SetText(value string) { l.text = value }

// ImageURL returns the image URL. It is never validated.
func (l *Logo) ImageURL() string { return l.imageURL }

// SetImageURL stores the image URL.
func (l *Logo) SetImageURL(value string) { l.imageURL = value }

// ImageFile returns the chosen local image, if any.
func (l *Logo) ImageFile() *ImageRef {
	if l.imageFile == nil {
		return nil
	}
	ref := *l.imageFile
	return &ref
}

// SetImageFile stores a local image reference. nil clears it.
func (l *Logo) SetImageFile(ref *ImageRef) {
	if ref == nil {
		l.imageFile = nil
		return
	}
	copied := *ref
	l.imageFile = &copied
}

// ShowsText reports whether the text capability applies.
func (l *Logo) ShowsText() bool {
	return l.typ == LogoText || l.typ == LogoCombination
}

// ShowsImage reports whether the image capability applies.
func (l *Logo) ShowsImage() bool {
	return l.typ == LogoImage || l.typ == LogoCombination
}

// HasImage reports whether a file or URL is set.
func (l *Logo) HasImage() bool {
	return l.imageFile != nil || l.imageURL != ""
}

// ImageLabel names the image in use. A file wins over a URL, which is shown
// by its last path segment, possibly empty.
func (l *Logo) ImageLabel() string {
	if l.imageFile != nil {
		return l.imageFile.Name
	}
	if l.imageURL != "" {
		return lastPathSegment(l.imageURL)
	}
	return ""
}

// DisplayName summarises the logo for lists and previews.
func (l *Logo) DisplayName() string {
	switch l.typ {
	case LogoText:
		if l.text != "" {
			return `Text: "` + l.text + `"`
		}
		return "Text Logo"
	case LogoImage:
		if l.HasImage() {
			return "Image: " + l.ImageLabel()
		}
		return "Image Logo"
	case LogoCombination:
		var parts []string
		if l.text != "" {
			parts = append(parts, `Text: "`+l.text+`"`)
		}
		if l.HasImage() {
			parts = append(parts, "Image: "+l.ImageLabel())
		}
		if len(parts) == 0 {
			return "Combination Logo"
		}
		return strings.Join(parts, " + ")
	default:
		return "Logo"
	}
}

// Set stores a field by key, mirroring OptionSet.Set for generic editors.
func (l *Logo) Set(key, value string) error {
	switch key {
	case logoTextField.Key:
		l.text = value
	case logoURLField.Key:
		l.imageURL = value
	case logoFileField.Key:
		if value == "" {
			l.imageFile = nil
		} else {
			l.imageFile = &ImageRef{Name: value}
		}
	default:
		return sitebrieferrors.NewValidationError("Logo", fmt.Sprintf("unknown field %q", key), nil)
	}
	return nil
}

// Get returns a field by key.
func (l *Logo) Get(key string) (string, bool) {
	switch key {
	case logoTextField.Key:
		return l.text, true
	case logoURLField.Key:
		return l.imageURL, true
	case logoFileField.Key:
		if l.imageFile == nil {
			return "", true
		}
		return l.imageFile.Name, true
	default:
		return "", false
	}
}

// Fields lists the fields visible for the current type.
func (l *Logo) Fields() []Field {
	for _, typ := range logoTypeSchema {
		if typ.Name == l.typ {
			return append([]Field(nil), typ.Fields...)
		}
	}
	return nil
}

// Clone implements Parameters.
func (l *Logo) Clone() Parameters {
	out := &Logo{typ: l.typ, text: l.text, imageURL: l.imageURL}
	out.SetImageFile(l.imageFile)
	return out
}

func lastPathSegment(raw string) string {
	idx := strings.LastIndex(raw, "/")
	if idx < 0 {
		return raw
	}
	return raw[idx+1:]
}
