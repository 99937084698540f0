package translate

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/lingopipe/lingopipe/pkg/language"
)

// chatMessage is one message of an OpenAI-shaped chat request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the OpenAI-shaped chat-completion request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the OpenAI-shaped chat-completion response body.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatTemperature keeps generative output close to the source text.
const chatTemperature = 0.3

// chatDefaults carries the per-vendor defaults of an OpenAI-compatible
// chat backend.
type chatDefaults struct {
	BaseURL string
	Model   string
	// Path is the chat-completion route appended to the base URL.
	Path string
	// RequiresKey marks vendors that cannot be called anonymously.
	RequiresKey bool
}

// chatAdapter implements the Adapter contract for every vendor exposing
// an OpenAI-compatible chat-completion endpoint. The whole payload
// (plain text or encoded batch) is translated as a single prompt,
// relying on the model to preserve batch structure.
type chatAdapter struct {
	id       string
	cfg      ProviderConfig
	defaults chatDefaults
	http     *resty.Client
	logger   *logrus.Logger
	session  *SessionContext
}

func newChatAdapter(id string, cfg ProviderConfig, defaults chatDefaults, logger *logrus.Logger) *chatAdapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}

	return &chatAdapter{
		id:       id,
		cfg:      cfg,
		defaults: defaults,
		http:     newHTTPClient(cfg),
		logger:   logger,
		session:  NewSessionContext(),
	}
}

// ID returns the canonical provider id.
func (a *chatAdapter) ID() string { return a.id }

// ValidateConfig fails fast with CONFIG_MISSING before any request is
// built when the vendor requires a key and none is configured.
func (a *chatAdapter) ValidateConfig() error {
	if a.defaults.RequiresKey && a.cfg.APIKey == "" {
		return NewError(KindConfigMissing, a.id+": config", "missing api key")
	}
	if a.cfg.Model == "" {
		return NewError(KindConfigMissing, a.id+": config", "missing model id")
	}
	return nil
}

// ResetSession clears the adapter's multi-turn history.
func (a *chatAdapter) ResetSession() { a.session.Reset() }

// Translate renders the mode-selected prompt and performs one
// chat-completion call, replaying the session history first.
func (a *chatAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
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
		return nil, WrapError(KindInvalidRequest, a.id+": prompt", err)
	}

	messages := make([]chatMessage, 0, a.session.Len()+1)
	for _, turn := range a.session.Snapshot() {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	a.logger.WithFields(logrus.Fields{
		"provider":    a.id,
		"model":       a.cfg.Model,
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"mode":        string(mode),
		"text_length": len(text),
	}).Debug("Translating text with chat completion")

	var out chatResponse
	start := time.Now()
	req := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{Model: a.cfg.Model, Messages: messages, Temperature: chatTemperature}).
		SetResult(&out)
	if a.cfg.APIKey != "" {
		req.SetHeader("Authorization", "Bearer "+a.cfg.APIKey)
	}

	resp, err := req.Post(a.cfg.BaseURL + a.defaults.Path)
	if err != nil || resp.IsError() {
		execErr := execError(a.id, "chat completion", resp, err)
		a.logger.WithError(execErr).WithFields(logrus.Fields{
			"provider": a.id,
		}).Error("Chat completion request failed")
		return nil, execErr
	}

	if len(out.Choices) == 0 {
		return nil, NewError(KindInvalidRequest, a.id+": chat completion", "empty response from upstream")
	}
	content := out.Choices[0].Message.Content

	a.session.Record(prompt, content)

	a.logger.WithFields(logrus.Fields{
		"provider":    a.id,
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &content, nil
}
