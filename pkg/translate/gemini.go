package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/lingopipe/lingopipe/pkg/language"
)

const (
	// DefaultGeminiURL is the default Generative Language API base URL.
	DefaultGeminiURL = "https://generativelanguage.googleapis.com"
	// DefaultGeminiModel is the default Gemini model id.
	DefaultGeminiModel = "gemini-1.5-flash"
)

// geminiPart is one text part of a Gemini content block.
type geminiPart struct {
	Text string `json:"text"`
}

// geminiContent is one turn of a Gemini conversation. Roles are "user"
// and "model".
type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

// geminiResponse is the generateContent response body.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiAdapter talks to Google's Generative Language API. It is
// session-capable: prior exchanges are replayed as alternating
// user/model contents.
type GeminiAdapter struct {
	cfg     ProviderConfig
	http    *resty.Client
	logger  *logrus.Logger
	session *SessionContext
}

// NewGeminiAdapter creates the Gemini adapter.
func NewGeminiAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeminiURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	return &GeminiAdapter{
		cfg:     cfg,
		http:    newHTTPClient(cfg),
		logger:  logger,
		session: NewSessionContext(),
	}
}

// ID returns the canonical provider id.
func (a *GeminiAdapter) ID() string { return "gemini" }

// ValidateConfig fails fast with CONFIG_MISSING when the key is absent.
func (a *GeminiAdapter) ValidateConfig() error {
	if a.cfg.APIKey == "" {
		return NewError(KindConfigMissing, "gemini: config", "missing api key")
	}
	if a.cfg.Model == "" {
		return NewError(KindConfigMissing, "gemini: config", "missing model id")
	}
	return nil
}

// ResetSession clears the adapter's multi-turn history.
func (a *GeminiAdapter) ResetSession() { a.session.Reset() }

// Translate renders the mode-selected prompt and performs one
// generateContent call, replaying the session history first.
func (a *GeminiAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
	if sourceLang == targetLang {
		return nil, nil
	}
	if err := a.ValidateConfig(); err != nil {
		return nil, err
	}

	prompt, err := a.cfg.Prompts.RenderPrompt(mode, PromptData{
		Source:    language.PromptName(sourceLang),
		Target:    language.PromptName(targetLang),
		Text:      text,
		Delimiter: "---",
	})
	if err != nil {
		return nil, WrapError(KindInvalidRequest, "gemini: prompt", err)
	}

	contents := make([]geminiContent, 0, a.session.Len()+1)
	for _, turn := range a.session.Snapshot() {
		role := turn.Role
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: turn.Content}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: prompt}}})

	body := geminiRequest{Contents: contents}
	body.GenerationConfig.Temperature = chatTemperature

	a.logger.WithFields(logrus.Fields{
		"provider":    "gemini",
		"model":       a.cfg.Model,
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"mode":        string(mode),
		"text_length": len(text),
	}).Debug("Translating text with Gemini")

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", a.cfg.BaseURL, a.cfg.Model)

	var out geminiResponse
	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", a.cfg.APIKey).
		SetBody(body).
		SetResult(&out).
		Post(url)
	if err != nil || resp.IsError() {
		execErr := execError("gemini", "generate content", resp, err)
		a.logger.WithError(execErr).Error("Gemini request failed")
		return nil, execErr
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, NewError(KindInvalidRequest, "gemini: generate content", "empty response from upstream")
	}
	content := out.Candidates[0].Content.Parts[0].Text

	a.session.Record(prompt, content)

	a.logger.WithFields(logrus.Fields{
		"provider":    "gemini",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &content, nil
}
