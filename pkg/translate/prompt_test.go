package translate

import (
	"strings"
	"testing"
)

func TestRenderPromptSubstitutesLanguageNames(t *testing.T) {
	var ps PromptSet
	out, err := ps.RenderPrompt(ModeField, PromptData{
		Source: "English",
		Target: "Persian",
		Text:   "Hello",
	})
	if err != nil {
		t.Fatalf("RenderPrompt: %v", err)
	}
	for _, want := range []string{"English", "Persian", "Hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q:\n%s", want, out)
		}
	}
}

func TestForModeSelection(t *testing.T) {
	var ps PromptSet
	cases := []struct {
		mode Mode
		want string
	}{
		{ModeDictionary, defaultDictionaryPrompt},
		{ModePopupTranslate, defaultPopupPrompt},
		{ModeSelectElement, defaultBatchPrompt},
		{ModeField, defaultFieldPrompt},
		{ModeSelection, defaultFieldPrompt},
		{ModeSubtitle, defaultFieldPrompt},
	}
	for _, tc := range cases {
		if got := ps.ForMode(tc.mode); got != tc.want {
			t.Errorf("ForMode(%s) selected wrong template", tc.mode)
		}
	}
}

func TestForModeOverrides(t *testing.T) {
	ps := PromptSet{Dictionary: "custom {{.Text}}"}
	if got := ps.ForMode(ModeDictionary); got != "custom {{.Text}}" {
		t.Errorf("override not honored: %q", got)
	}
	if got := ps.ForMode(ModeField); got != defaultFieldPrompt {
		t.Error("unset modes must fall back to the built-in")
	}
}

func TestBatchPromptCarriesDelimiter(t *testing.T) {
	var ps PromptSet
	out, err := ps.RenderPrompt(ModeSelectElement, PromptData{
		Source:    "English",
		Target:    "French",
		Text:      "one\n\n---\n\ntwo",
		Delimiter: "---",
	})
	if err != nil {
		t.Fatalf("RenderPrompt: %v", err)
	}
	if !strings.Contains(out, `"---"`) {
		t.Errorf("batch prompt must name the separator:\n%s", out)
	}
	if !strings.Contains(out, "same order and count") {
		t.Errorf("batch prompt must demand order and count preservation:\n%s", out)
	}
}

func TestRenderPromptBadTemplate(t *testing.T) {
	ps := PromptSet{Field: "{{.Broken"}
	if _, err := ps.RenderPrompt(ModeField, PromptData{}); err == nil {
		t.Error("expected parse error for malformed template")
	}
}
