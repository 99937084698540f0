// Package language resolves user-facing language identifiers (display
// names, prompt names, codes, BCP 47 tags) to provider codes, detects
// the source language of free text, and applies the source/target swap
// heuristic used by the translation pipeline.
package language

import (
	"strings"

	"github.com/sirupsen/logrus"
	xlang "golang.org/x/text/language"
)

// Auto is the sentinel identifier requesting source-language detection.
const Auto = "auto"

// DefaultCode is the fallback when no detection path succeeds.
const DefaultCode = "en"

// Resolver maps language identifiers to provider codes.
type Resolver struct {
	byKey  map[string]string
	byCode map[string]Entry
	logger *logrus.Logger
}

// NewResolver builds a resolver over the canonical language table.
func NewResolver(logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
	}

	r := &Resolver{
		byKey:  make(map[string]string, len(table)*3),
		byCode: make(map[string]Entry, len(table)),
		logger: logger,
	}
	for _, e := range table {
		r.byCode[strings.ToLower(e.Code)] = e
		r.byKey[strings.ToLower(e.Code)] = e.Code
		r.byKey[strings.ToLower(e.Name)] = e.Code
		r.byKey[strings.ToLower(e.PromptName)] = e.Code
		for _, alias := range e.Aliases {
			r.byKey[strings.ToLower(alias)] = e.Code
		}
	}
	return r
}

// ResolveCode maps an identifier (display name, prompt name or code) to
// a provider code. The Auto sentinel passes through unchanged. Unknown
// identifiers are canonicalized as BCP 47 tags when possible; otherwise
// the raw lowercased string is returned and the provider itself rejects
// unsupported codes.
func (r *Resolver) ResolveCode(identifier string) string {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return DefaultCode
	}
	if strings.EqualFold(id, Auto) {
		return Auto
	}

	if code, ok := r.byKey[strings.ToLower(id)]; ok {
		return code
	}

	// BCP 47 tags like "en-US" or "pt_BR" normalize to their base code.
	if tag, err := xlang.Parse(strings.ReplaceAll(id, "_", "-")); err == nil {
		if base, conf := tag.Base(); conf >= xlang.High {
			if code, ok := r.byKey[strings.ToLower(base.String())]; ok {
				return code
			}
			return strings.ToLower(base.String())
		}
	}

	r.logger.WithFields(logrus.Fields{
		"identifier": identifier,
	}).Debug("Unresolved language identifier, passing through lowercased")
	return strings.ToLower(id)
}

// PromptName returns the name used for a code inside LLM prompts,
// falling back to the code itself for unknown languages.
func (r *Resolver) PromptName(code string) string {
	if e, ok := r.byCode[strings.ToLower(code)]; ok {
		return e.PromptName
	}
	return code
}

// DisplayName returns the display name for a code, falling back to the
// code itself.
func (r *Resolver) DisplayName(code string) string {
	if e, ok := r.byCode[strings.ToLower(code)]; ok {
		return e.Name
	}
	return code
}

// std backs the package-level lookups used by provider adapters, which
// hold codes but need display/prompt names when building prompts.
var std = NewResolver(logrus.StandardLogger())

// PromptName returns the prompt name for a code via the canonical table.
func PromptName(code string) string { return std.PromptName(code) }

// DisplayName returns the display name for a code via the canonical table.
func DisplayName(code string) string { return std.DisplayName(code) }

// ApplySwap implements the bidirectional-toggle heuristic: when the
// resolved source equals the target the pair is swapped. The swap is an
// involution; callers that still see source == target afterwards must
// short-circuit without a network call.
func ApplySwap(source, target string) (string, string) {
	if source == target {
		return target, source
	}
	return source, target
}
