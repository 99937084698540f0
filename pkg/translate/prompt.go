package translate

import (
	"bytes"
	"fmt"
	"text/template"
)

// PromptData is the substitution payload for prompt templates. Source
// and Target are language display names, not codes; Text is the (plain
// or delimiter-joined) payload and Delimiter the batch separator.
type PromptData struct {
	Source    string
	Target    string
	Text      string
	Delimiter string
}

// PromptSet holds the four mode-selected prompt templates of a
// generative provider. Empty fields fall back to the built-ins.
type PromptSet struct {
	Field      string
	Dictionary string
	Popup      string
	Batch      string
}

// Built-in prompt templates. The batch template orders the model to
// reproduce the delimiter verbatim so the codec can split the response
// back into segments; a model "fixing" the delimiter surfaces as a
// non-fatal count mismatch downstream.
const (
	defaultFieldPrompt = `Translate the following text from {{.Source}} to {{.Target}}.
Return only the translation, without explanations or extra text.

{{.Text}}`

	defaultDictionaryPrompt = `Act as a {{.Source}}-{{.Target}} dictionary. For the word or phrase below,
give the {{.Target}} translation first, then its part of speech and up to
three common meanings, each on its own line. Be concise.

{{.Text}}`

	defaultPopupPrompt = `Translate the following text from {{.Source}} to {{.Target}}.
Answer with the translation only, as short and natural as possible.

{{.Text}}`

	defaultBatchPrompt = `Translate the following text segments from {{.Source}} to {{.Target}}.
Segments are separated by a blank line, a line containing only
"{{.Delimiter}}", and another blank line. Return only the translations,
separated the same way, in the same order and count. Do not merge,
drop, or renumber segments, and do not alter the separator lines.

{{.Text}}`
)

// ForMode selects the template for a mode, falling back to the field
// template for plain surfaces.
func (ps PromptSet) ForMode(mode Mode) string {
	switch mode {
	case ModeDictionary:
		if ps.Dictionary != "" {
			return ps.Dictionary
		}
		return defaultDictionaryPrompt
	case ModePopupTranslate:
		if ps.Popup != "" {
			return ps.Popup
		}
		return defaultPopupPrompt
	case ModeSelectElement:
		if ps.Batch != "" {
			return ps.Batch
		}
		return defaultBatchPrompt
	default:
		if ps.Field != "" {
			return ps.Field
		}
		return defaultFieldPrompt
	}
}

// RenderPrompt substitutes the data into the template for the mode.
func (ps PromptSet) RenderPrompt(mode Mode, data PromptData) (string, error) {
	tpl, err := template.New("prompt").Parse(ps.ForMode(mode))
	if err != nil {
		return "", fmt.Errorf("parse prompt template: %w", err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt template: %w", err)
	}
	return buf.String(), nil
}
