package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesDeclaredOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Category{General, Basic, Advanced}, Categories())
	assert.Equal(t, "General App/Webpage Setup", Title(General))
	assert.Equal(t, "Basic Components", Title(Basic))
	assert.Equal(t, "Advanced Features", Title(Advanced))
	assert.Empty(t, Title(Category("unknown")))
}

func TestComponentsAndVariants(t *testing.T) {
	t.Parallel()

	basic := Components(Basic)
	require.Len(t, basic, 13)
	assert.Equal(t, "Logo", basic[0])
	assert.Equal(t, "Social Media Links", basic[len(basic)-1])

	require.Len(t, Components(General), 5)
	require.Len(t, Components(Advanced), 12)

	assert.Equal(t,
		[]string{"Text-logo", "Image-logo", "Combination logo (image + text)"},
		Variants(Basic, "Logo"),
	)
	assert.Equal(t, []string{"Google Analytics/Tag Manager", "Heatmaps"}, Variants(Advanced, "Analytics and Tracking Scripts"))
}

func TestUnknownLookupsAreEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Components(Category("premium")))
	assert.Nil(t, Variants(Basic, "Footer"))
	assert.Nil(t, Variants(Category("premium"), "Logo"))
	assert.False(t, HasComponent(Basic, "Footer"))
	assert.False(t, HasVariant(Basic, "Logo", "Neon-logo"))

	_, ok := DefaultVariant(Advanced, "Logo")
	assert.False(t, ok)
}

func TestVariantsReturnsCopy(t *testing.T) {
	t.Parallel()

	variants := Variants(Basic, "Header")
	variants[0] = "mutated"

	assert.Equal(t, "Classic", Variants(Basic, "Header")[0])
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "lowercase", input: "basic", want: Basic},
		{name: "mixed case with spaces", input: "  Advanced ", want: Advanced},
		{name: "unknown", input: "premium", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindComponentAndDefaultVariant(t *testing.T) {
	t.Parallel()

	category, ok := FindComponent("SEO Markup")
	require.True(t, ok)
	assert.Equal(t, Advanced, category)

	_, ok = FindComponent("Footer")
	assert.False(t, ok)

	variant, ok := DefaultVariant(General, "Media & Content")
	require.True(t, ok)
	assert.Equal(t, "Blog website with categories and posts", variant)

	assert.True(t, HasVariant(General, "Personal Use", "Personal portfolio website"))
}
