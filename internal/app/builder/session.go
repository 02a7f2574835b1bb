// Package builder coordinates one editing session: the live selection, the
// cached artifacts generated from it and the export of those artifacts.
package builder

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
	"github.com/alexisbeaulieu97/sitebrief/internal/export"
	"github.com/alexisbeaulieu97/sitebrief/internal/logger"
	"github.com/alexisbeaulieu97/sitebrief/internal/prompt"
	"github.com/alexisbeaulieu97/sitebrief/internal/selection"
)

// Session owns a selection store and the prompt and code last generated from
// it. Cached artifacts are only refreshed by an explicit Generate call, so
// they go stale as soon as the selection changes.
type Session struct {
	id    string
	store *selection.Store
	log   *logger.Logger

	prompt         string
	promptRevision uint64
	hasPrompt      bool

	code         string
	codeTarget   codegen.Target
	codeRevision uint64
	hasCode      bool
}

// NewSession starts an empty session.
func NewSession(log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	id := ulid.Make().String()
	return &Session{
		id:    id,
		store: selection.New(),
		log:   log.With("session", id),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Store exposes the live selection.
func (s *Session) Store() *selection.Store { return s.store }

// Logger returns the session-scoped logger.
func (s *Session) Logger() *logger.Logger { return s.log }

// ApplyPreset applies a named preset to the selection.
func (s *Session) ApplyPreset(name string) bool {
	if !s.store.ApplyPreset(name) {
		s.log.With("preset", name).Warn("unknown preset ignored")
		return false
	}
	s.log.With("preset", name).Debug("preset applied")
	return true
}

// GeneratePrompt recompiles and caches the prompt.
func (s *Session) GeneratePrompt() string {
	s.prompt = prompt.Generate(s.store)
	s.promptRevision = s.store.Revision()
	s.hasPrompt = true
	s.log.WithFields(map[string]any{"components": s.store.Count(), "bytes": len(s.prompt)}).Debug("prompt generated")
	return s.prompt
}

// GenerateCode recompiles and caches code for a target.
func (s *Session) GenerateCode(target codegen.Target) string {
	s.code = codegen.GenerateFromStore(s.store, target)
	s.codeTarget = target
	s.codeRevision = s.store.Revision()
	s.hasCode = true
	s.log.WithFields(map[string]any{"components": s.store.Count(), "target": string(target)}).Debug("code generated")
	return s.code
}

// Prompt returns the cached prompt. It is empty until GeneratePrompt runs.
func (s *Session) Prompt() string { return s.prompt }

// Code returns the cached code. It is empty until GenerateCode runs.
func (s *Session) Code() string { return s.code }

// CodeTarget returns the target the cached code was generated for.
func (s *Session) CodeTarget() codegen.Target { return s.codeTarget }

// PromptStale reports whether the selection changed since the prompt was
// generated. A prompt that was never generated is stale.
func (s *Session) PromptStale() bool {
	return !s.hasPrompt || s.promptRevision != s.store.Revision()
}

// CodeStale reports whether the selection changed since code was generated.
func (s *Session) CodeStale() bool {
	return !s.hasCode || s.codeRevision != s.store.Revision()
}

// Stale reports whether either cached artifact is out of date.
func (s *Session) Stale() bool {
	return s.PromptStale() || s.CodeStale()
}

// ClearAll empties the selection and drops both cached artifacts.
func (s *Session) ClearAll() {
	s.store.Clear()
	s.prompt, s.hasPrompt, s.promptRevision = "", false, 0
	s.code, s.hasCode, s.codeRevision = "", false, 0
	s.codeTarget = ""
	s.log.Debug("session cleared")
}

// Project assembles the downloadable project from the cached artifacts.
func (s *Session) Project() export.Project {
	target := s.codeTarget
	if target == "" {
		target = codegen.TargetHTML
	}
	return export.NewProject(s.store.Flatten(), s.prompt, s.code, target)
}

// Summary describes the selection the way the builder header shows it.
func (s *Session) Summary() string {
	return fmt.Sprintf("%d components selected", s.store.Count())
}

// SelectedByCategory lists "Component (Variant)" labels per category.
func (s *Session) SelectedByCategory() map[catalog.Category][]string {
	out := make(map[catalog.Category][]string)
	for _, entry := range s.store.Flatten() {
		out[entry.Category] = append(out[entry.Category], entry.Component+" ("+entry.Variant+")")
	}
	return out
}
