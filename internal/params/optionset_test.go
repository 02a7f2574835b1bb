package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

func TestKindFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		component string
		want      Kind
		ok        bool
	}{
		{component: "Logo", want: KindLogo, ok: true},
		{component: "Header", want: KindHeader, ok: true},
		{component: "Hero Section", want: KindHeroSection, ok: true},
		{component: "Footer", want: KindFooter, ok: true},
		{component: "Navigation Bar", ok: false},
		{component: "hero section", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.component, func(t *testing.T) {
			t.Parallel()

			got, ok := KindFor(tt.component)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewOptionSetDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindHeader, want: "Standard Header"},
		{kind: KindHeroSection, want: "Standard Hero"},
		{kind: KindFooter, want: "Standard Footer"},
	}

	for _, tt := range tests {
		set, err := NewOptionSet(tt.kind, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, set.Type())
		assert.Empty(t, set.Entries())
	}
}

func TestOptionSetTypeSwitchResetsOptions(t *testing.T) {
	t.Parallel()

	set, err := NewOptionSet(KindHeader, "Standard Header")
	require.NoError(t, err)
	require.NoError(t, set.Set("backgroundColor", "#fff"))
	require.Equal(t, []Entry{{Key: "backgroundColor", Value: "#fff"}}, set.Entries())

	require.NoError(t, set.SetType("Hero Header"))
	assert.Empty(t, set.Entries())
	_, ok := set.Get("backgroundColor")
	assert.False(t, ok)
	_, isHero := set.Options().(*HeroHeader)
	assert.True(t, isHero)

	// Shared keys do not carry over either.
	require.NoError(t, set.SetType("Sticky Header"))
	require.NoError(t, set.Set("backgroundColor", "#000"))
	require.NoError(t, set.SetType("Minimal Header"))
	value, ok := set.Get("backgroundColor")
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestOptionSetTypedRecord(t *testing.T) {
	t.Parallel()

	set, err := NewOptionSet(KindFooter, "Newsletter Footer")
	require.NoError(t, err)
	require.NoError(t, set.Set("buttonText", "Join"))
	require.NoError(t, set.Set("newsletterHeading", "Stay in touch"))

	record, ok := set.Options().(*NewsletterFooter)
	require.True(t, ok)
	assert.Equal(t, "Join", record.ButtonText)
	assert.Equal(t, "Stay in touch", record.NewsletterHeading)

	// Entries follow field order, not assignment order.
	assert.Equal(t, []Entry{
		{Key: "newsletterHeading", Value: "Stay in touch"},
		{Key: "buttonText", Value: "Join"},
	}, set.Entries())
}

func TestOptionSetChoiceValidation(t *testing.T) {
	t.Parallel()

	set, err := NewOptionSet(KindHeroSection, "Full-Width Image Hero")
	require.NoError(t, err)

	require.NoError(t, set.Set("textAlignment", "right"))
	err = set.Set("textAlignment", "justify")
	var validationErr *sitebrieferrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Hero Section.textAlignment", validationErr.Field)

	value, _ := set.Get("textAlignment")
	assert.Equal(t, "right", value)

	// Free text is stored as given, even when it is not valid CSS.
	require.NoError(t, set.Set("overlayOpacity", "very opaque"))
	// Clearing a choice is allowed.
	require.NoError(t, set.Set("textAlignment", ""))
}

func TestOptionSetRejectsUnknownTypeAndKey(t *testing.T) {
	t.Parallel()

	_, err := NewOptionSet(KindHeader, "Floating Header")
	require.ErrorContains(t, err, `unknown type "Floating Header"`)

	_, err = NewOptionSet(KindLogo, "")
	require.Error(t, err)

	set, err := NewOptionSet(KindFooter, "Sticky Footer")
	require.NoError(t, err)
	require.ErrorContains(t, set.Set("copyrightText", "x"), `unknown option "copyrightText"`)

	require.Error(t, set.SetType("Mega Footer"))
	assert.Equal(t, "Sticky Footer", set.Type())
}

func TestOptionSetChoiceDefaultsAreDisplayOnly(t *testing.T) {
	t.Parallel()

	set, err := NewOptionSet(KindFooter, "Multi-Column Footer")
	require.NoError(t, err)

	fields := set.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, InputChoice, fields[0].Input)
	assert.Equal(t, "3", fields[0].Default)
	assert.Equal(t, []string{"2", "3", "4", "5"}, fields[0].Choices)

	value, ok := set.Get("columnCount")
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestOptionSetCloneIsIndependent(t *testing.T) {
	t.Parallel()

	set, err := NewOptionSet(KindHeader, "")
	require.NoError(t, err)
	require.NoError(t, set.Set("height", "80px"))

	clone := set.Clone()
	require.NoError(t, clone.Set("height", "6rem"))

	value, _ := set.Get("height")
	assert.Equal(t, "80px", value)
	cloned, _ := clone.Get("height")
	assert.Equal(t, "6rem", cloned)
}

func TestSchemasAreComplete(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindHeader, KindHeroSection, KindFooter} {
		schema, ok := SchemaFor(kind)
		require.True(t, ok)
		require.Len(t, schema.Types, 5)
		assert.Equal(t, schema.DefaultType, schema.Types[0].Name)

		for _, typ := range schema.Types {
			record := typ.build()
			assert.Equal(t, typ.Name, record.TypeName())
			assert.Len(t, record.slots(), len(typ.Fields), typ.Name)
			for _, field := range typ.Fields {
				if field.Input == InputChoice {
					assert.Contains(t, field.Choices, field.Default, "%s.%s", typ.Name, field.Key)
				}
			}
		}
	}

	_, ok := SchemaFor(KindLogo)
	assert.False(t, ok)
}
