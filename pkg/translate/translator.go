// Package translate contains the provider adapters behind the uniform
// translation contract, the registry/factory that owns them, the error
// taxonomy and classifier, prompt templates for generative engines,
// per-provider session state and the HTTP execution layer.
package translate

import (
	"context"
)

// Mode identifies the translation surface a request originates from.
// Generative adapters select their prompt template by mode.
type Mode string

const (
	// ModeField translates an input field's content.
	ModeField Mode = "field"
	// ModeSelection translates a text selection.
	ModeSelection Mode = "selection"
	// ModeDictionary performs a dictionary-style lookup.
	ModeDictionary Mode = "dictionary"
	// ModePopupTranslate performs a quick popup translation.
	ModePopupTranslate Mode = "popup_translate"
	// ModeSubtitle translates subtitle text.
	ModeSubtitle Mode = "subtitle"
	// ModeSelectElement translates an encoded batch of page elements.
	ModeSelectElement Mode = "select_element"
)

// Adapter is the uniform contract every backend vendor implements.
type Adapter interface {
	// ID returns the canonical provider id.
	ID() string

	// Translate translates text between resolved provider codes. A nil
	// result with a nil error means no translation was needed (resolved
	// source equals resolved target); this is distinct from an empty
	// translation. sourceLang and targetLang must already be resolved.
	Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error)

	// ValidateConfig checks the adapter's required configuration
	// (key/url/model) without any network call. It returns a classified
	// *Error with KindConfigMissing on failure.
	ValidateConfig() error
}

// SessionHolder is implemented by adapters that keep multi-turn session
// state across calls. The registry resets sessions through it.
type SessionHolder interface {
	ResetSession()
}
