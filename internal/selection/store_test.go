package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/params"
)

func mustLogo(t *testing.T, text string) *params.Logo {
	t.Helper()

	logo, err := params.NewLogo(params.LogoText)
	require.NoError(t, err)
	logo.SetText(text)
	return logo
}

func components(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Component
	}
	return out
}

func TestStoreInsertionOrder(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Advanced, "SEO Markup", "Meta tags")
	store.Set(catalog.Basic, "Header", "Classic")
	store.Set(catalog.Basic, "Logo", "Text-logo")
	store.Set(catalog.General, "Personal Use", "Personal portfolio website")

	assert.Equal(t, []string{"Personal Use", "Header", "Logo", "SEO Markup"}, components(store.Flatten()))

	// Overwrite keeps position.
	store.Set(catalog.Basic, "Header", "Sticky/fixed")
	assert.Equal(t, []string{"Header", "Logo"}, store.Components(catalog.Basic))
	variant, ok := store.Variant(catalog.Basic, "Header")
	require.True(t, ok)
	assert.Equal(t, "Sticky/fixed", variant)

	// Delete then re-add moves to the end.
	require.True(t, store.Unset(catalog.Basic, "Header"))
	store.Set(catalog.Basic, "Header", "Classic")
	assert.Equal(t, []string{"Logo", "Header"}, store.Components(catalog.Basic))
	assert.Equal(t, 4, store.Count())
}

func TestStoreIgnoresUnknownCategory(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Category("premium"), "Logo", "Text-logo")

	assert.True(t, store.IsEmpty())
	assert.False(t, store.Unset(catalog.Category("premium"), "Logo"))
	assert.Nil(t, store.Components(catalog.Category("premium")))
}

func TestStoreUnsetCascadesParameters(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Basic, "Logo", "Text-logo")
	require.NoError(t, store.SetParameters(catalog.Basic, "Logo", mustLogo(t, "Old Co")))

	require.True(t, store.Unset(catalog.Basic, "Logo"))
	_, ok := store.Parameters(catalog.Basic, "Logo")
	assert.False(t, ok)

	// Parameters cannot be attached to a deselected component.
	err := store.SetParameters(catalog.Basic, "Logo", mustLogo(t, "New Co"))
	require.ErrorIs(t, err, ErrNotSelected)

	// Re-selecting does not resurrect the old bag.
	store.Set(catalog.Basic, "Logo", "Text-logo")
	_, ok = store.Parameters(catalog.Basic, "Logo")
	assert.False(t, ok)
	assert.Nil(t, store.Flatten()[0].Parameters)
}

func TestStoreSetParametersChecksKind(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Basic, "Header", "Classic")
	store.Set(catalog.Basic, "Slider", "Image slider")

	err := store.SetParameters(catalog.Basic, "Header", mustLogo(t, "Acme"))
	require.ErrorIs(t, err, ErrKindMismatch)

	err = store.SetParameters(catalog.Basic, "Slider", mustLogo(t, "Acme"))
	require.ErrorIs(t, err, ErrKindMismatch)

	header, err := params.NewOptionSet(params.KindHeader, "")
	require.NoError(t, err)
	require.NoError(t, store.SetParameters(catalog.Basic, "Header", header))

	require.NoError(t, store.SetParameters(catalog.Basic, "Header", nil))
	_, ok := store.Parameters(catalog.Basic, "Header")
	assert.False(t, ok)
}

func TestStoreParametersAreCopied(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Basic, "Logo", "Text-logo")
	logo := mustLogo(t, "Acme")
	require.NoError(t, store.SetParameters(catalog.Basic, "Logo", logo))

	logo.SetText("Changed outside")
	got, ok := store.Parameters(catalog.Basic, "Logo")
	require.True(t, ok)
	assert.Equal(t, "Acme", got.(*params.Logo).Text())

	entries := store.Flatten()
	entries[0].Parameters.(*params.Logo).SetText("Changed via entry")
	got, _ = store.Parameters(catalog.Basic, "Logo")
	assert.Equal(t, "Acme", got.(*params.Logo).Text())
}

func TestApplyPresetReplacesDefinedSections(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.General, "Media & Content", "Blog website with categories and posts")
	store.Set(catalog.Basic, "Forms", "Contact form")

	require.True(t, store.ApplyPreset("Personal Portfolio"))
	assert.Equal(t, "Personal Portfolio", store.Preset())

	entries := store.Flatten()
	require.Len(t, entries, 8)
	assert.Equal(t, Entry{Category: catalog.General, Component: "Personal Use", Variant: "Personal portfolio website"}, entries[0])
	assert.Equal(t,
		[]string{"Logo", "Header", "Hero Section", "Navigation Bar", "Social Media Links"},
		store.Components(catalog.Basic),
	)
	assert.False(t, store.Has(catalog.Basic, "Forms"))
}

func TestApplyPresetIsReproducible(t *testing.T) {
	t.Parallel()

	store := New()
	require.True(t, store.ApplyPreset("Startup Landing Page"))
	first := store.Flatten()

	store.Set(catalog.Advanced, "Heatmaps", "Heatmaps")
	store.Set(catalog.Basic, "Forms", "Contact form")
	require.True(t, store.ApplyPreset("Startup Landing Page"))

	assert.Equal(t, first, store.Flatten())
}

func TestApplyLeavesUndefinedSectionsUntouched(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.General, "Personal Use", "Personal portfolio website")
	store.Set(catalog.Basic, "Forms", "Contact form")
	store.Set(catalog.Advanced, "SEO Markup", "Meta tags")

	store.Apply(catalog.Preset{
		Name:  "basic only",
		Basic: &catalog.Section{{Component: "Slider", Variant: "Image slider"}},
	})

	// General is always rebuilt, even when the preset leaves it out.
	assert.Empty(t, store.Components(catalog.General))
	assert.Equal(t, []string{"Slider"}, store.Components(catalog.Basic))
	assert.Equal(t, []string{"SEO Markup"}, store.Components(catalog.Advanced))

	// An explicitly empty section empties the category.
	store.Apply(catalog.Preset{Name: "empty advanced", Advanced: &catalog.Section{}})
	assert.Empty(t, store.Components(catalog.Advanced))
	assert.Equal(t, []string{"Slider"}, store.Components(catalog.Basic))
}

func TestApplyPresetKeepsParametersOfRetainedComponents(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Basic, "Logo", "Image-logo")
	require.NoError(t, store.SetParameters(catalog.Basic, "Logo", mustLogo(t, "Acme")))
	store.Set(catalog.Basic, "Footer", "Standard")
	footer, err := params.NewOptionSet(params.KindFooter, "")
	require.NoError(t, err)
	require.NoError(t, store.SetParameters(catalog.Basic, "Footer", footer))

	require.True(t, store.ApplyPreset("E-commerce Store"))

	logo, ok := store.Parameters(catalog.Basic, "Logo")
	require.True(t, ok)
	assert.Equal(t, "Acme", logo.(*params.Logo).Text())
	_, ok = store.Parameters(catalog.Basic, "Footer")
	assert.False(t, ok)

	// Removing and re-adding Footer must not bring its dropped bag back.
	store.Set(catalog.Basic, "Footer", "Standard")
	_, ok = store.Parameters(catalog.Basic, "Footer")
	assert.False(t, ok)
}

func TestApplyUnknownPresetIsNoop(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Basic, "Logo", "Text-logo")
	revision := store.Revision()

	assert.False(t, store.ApplyPreset("Space Station"))
	assert.Equal(t, revision, store.Revision())
	assert.Equal(t, []string{"Logo"}, store.Components(catalog.Basic))
	assert.Empty(t, store.Preset())
}

func TestClearResetsEverything(t *testing.T) {
	t.Parallel()

	store := New()
	require.True(t, store.ApplyPreset("Personal Portfolio"))
	require.NoError(t, store.SetParameters(catalog.Basic, "Logo", mustLogo(t, "Acme")))

	store.Clear()

	assert.True(t, store.IsEmpty())
	assert.Empty(t, store.Preset())
	assert.Empty(t, store.Flatten())
	_, ok := store.Parameters(catalog.Basic, "Logo")
	assert.False(t, ok)
}

func TestSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	store := New()
	store.Set(catalog.Basic, "Logo", "Text-logo")
	require.NoError(t, store.SetParameters(catalog.Basic, "Logo", mustLogo(t, "Acme")))

	snapshot := store.Snapshot()
	store.Unset(catalog.Basic, "Logo")
	store.Set(catalog.Basic, "Header", "Classic")

	assert.Equal(t, []string{"Logo"}, snapshot.Components(catalog.Basic))
	logo, ok := snapshot.Parameters(catalog.Basic, "Logo")
	require.True(t, ok)
	assert.Equal(t, "Acme", logo.(*params.Logo).Text())
}

func TestRevisionTracksMutations(t *testing.T) {
	t.Parallel()

	store := New()
	start := store.Revision()

	store.Set(catalog.Basic, "Logo", "Text-logo")
	afterSet := store.Revision()
	assert.Greater(t, afterSet, start)

	assert.False(t, store.Unset(catalog.Basic, "Header"))
	assert.Equal(t, afterSet, store.Revision())
}
