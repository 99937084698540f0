package translate

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/lingopipe/lingopipe/pkg/language"
)

const (
	// DefaultOllamaURL is the default local Ollama server URL.
	DefaultOllamaURL = "http://localhost:11434"
	// DefaultOllamaModel is the default Ollama model id.
	DefaultOllamaModel = "llama3.1"
)

// OllamaAdapter talks to a local Ollama server through its native chat
// API. No API key is required; the model id must be configured or
// defaulted.
type OllamaAdapter struct {
	cfg     ProviderConfig
	http    *resty.Client
	logger  *logrus.Logger
	session *SessionContext
}

// ollamaChatRequest is the native Ollama chat request body.
type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

// ollamaChatResponse is the native Ollama chat response body.
type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// NewOllamaAdapter creates the Ollama adapter.
func NewOllamaAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOllamaURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOllamaModel
	}

	return &OllamaAdapter{
		cfg:     cfg,
		http:    newHTTPClient(cfg),
		logger:  logger,
		session: NewSessionContext(),
	}
}

// ID returns the canonical provider id.
func (a *OllamaAdapter) ID() string { return "ollama" }

// ValidateConfig checks the model id; Ollama needs no key.
func (a *OllamaAdapter) ValidateConfig() error {
	if a.cfg.Model == "" {
		return NewError(KindConfigMissing, "ollama: config", "missing model id")
	}
	return nil
}

// ResetSession clears the adapter's multi-turn history.
func (a *OllamaAdapter) ResetSession() { a.session.Reset() }

// Translate renders the mode-selected prompt and performs one native
// chat call against the local server.
func (a *OllamaAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
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
		return nil, WrapError(KindInvalidRequest, "ollama: prompt", err)
	}

	messages := make([]chatMessage, 0, a.session.Len()+1)
	for _, turn := range a.session.Snapshot() {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	a.logger.WithFields(logrus.Fields{
		"provider":    "ollama",
		"model":       a.cfg.Model,
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with Ollama")

	var out ollamaChatResponse
	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ollamaChatRequest{
			Model:    a.cfg.Model,
			Messages: messages,
			Stream:   false,
			Options:  map[string]any{"temperature": chatTemperature},
		}).
		SetResult(&out).
		Post(a.cfg.BaseURL + "/api/chat")
	if err != nil || resp.IsError() {
		execErr := execError("ollama", "chat", resp, err)
		a.logger.WithError(execErr).Error("Ollama chat request failed")
		return nil, execErr
	}

	content := out.Message.Content
	if content == "" {
		return nil, NewError(KindInvalidRequest, "ollama: chat", "empty response from upstream")
	}

	a.session.Record(prompt, content)

	a.logger.WithFields(logrus.Fields{
		"provider":    "ollama",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &content, nil
}
