package builder

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/prompt"
)

func TestNewSessionHasULID(t *testing.T) {
	t.Parallel()

	first := NewSession(nil)
	second := NewSession(nil)

	_, err := ulid.Parse(first.ID())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.True(t, first.Store().IsEmpty())
	assert.True(t, first.Stale())
}

func TestSessionCachesAreExplicit(t *testing.T) {
	t.Parallel()

	session := NewSession(nil)
	session.Store().Set(catalog.Basic, "Header", "Classic")

	generated := session.GeneratePrompt()
	assert.Equal(t, generated, session.Prompt())
	assert.False(t, session.PromptStale())

	// Mutations never refresh the cached prompt.
	session.Store().Set(catalog.Basic, "Slider", "Image slider")
	assert.Equal(t, generated, session.Prompt())
	assert.NotContains(t, session.Prompt(), "Slider")
	assert.True(t, session.PromptStale())

	assert.Contains(t, session.GeneratePrompt(), "• Slider with a image slider implementation")
	assert.False(t, session.PromptStale())
}

func TestSessionCodeStalenessIsIndependent(t *testing.T) {
	t.Parallel()

	session := NewSession(nil)
	session.Store().Set(catalog.Basic, "Header", "Classic")

	session.GeneratePrompt()
	assert.True(t, session.CodeStale())

	code := session.GenerateCode(codegen.TargetVue)
	assert.Equal(t, code, session.Code())
	assert.Equal(t, codegen.TargetVue, session.CodeTarget())
	assert.False(t, session.CodeStale())
	assert.False(t, session.Stale())

	session.Store().Unset(catalog.Basic, "Header")
	assert.True(t, session.CodeStale())
	assert.Equal(t, code, session.Code())
}

func TestSessionEmptyGenerators(t *testing.T) {
	t.Parallel()

	session := NewSession(nil)
	assert.Equal(t, prompt.EmptySelection, session.GeneratePrompt())
	assert.Equal(t, codegen.NoComponents, session.GenerateCode(codegen.TargetReact))
}

func TestSessionClearAll(t *testing.T) {
	t.Parallel()

	session := NewSession(nil)
	require.True(t, session.ApplyPreset("E-commerce Store"))
	session.GeneratePrompt()
	session.GenerateCode(codegen.TargetHTML)

	session.ClearAll()

	assert.True(t, session.Store().IsEmpty())
	assert.Empty(t, session.Store().Preset())
	assert.Empty(t, session.Prompt())
	assert.Empty(t, session.Code())
	assert.Empty(t, session.CodeTarget())
	assert.True(t, session.Stale())
}

func TestSessionApplyUnknownPreset(t *testing.T) {
	t.Parallel()

	session := NewSession(nil)
	session.Store().Set(catalog.Basic, "Forms", "Contact form")

	assert.False(t, session.ApplyPreset("Unknown"))
	assert.True(t, session.Store().Has(catalog.Basic, "Forms"))
}

func TestSessionProjectAndSummary(t *testing.T) {
	t.Parallel()

	session := NewSession(nil)
	require.True(t, session.ApplyPreset("Personal Portfolio"))
	assert.Equal(t, "8 components selected", session.Summary())

	byCategory := session.SelectedByCategory()
	assert.Equal(t, []string{"Personal Use (Personal portfolio website)"}, byCategory[catalog.General])
	assert.Len(t, byCategory[catalog.Advanced], 2)

	session.GeneratePrompt()
	session.GenerateCode(codegen.TargetReact)
	project := session.Project()
	require.Len(t, project.Files, 3)
	assert.Equal(t, "index.jsx", project.Files[2].Name)
	assert.Equal(t, session.Code(), project.Files[2].Content)
	assert.Contains(t, project.Files[1].Content, session.Prompt())

	fresh := NewSession(nil)
	assert.Equal(t, "index.html", fresh.Project().Files[2].Name)
}
