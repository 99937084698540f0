package translate

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/lingopipe/lingopipe/pkg/language"
)

const (
	// DefaultClaudeURL is the default Anthropic API base URL.
	DefaultClaudeURL = "https://api.anthropic.com"
	// DefaultClaudeModel is the default Claude model id.
	DefaultClaudeModel = "claude-3-5-haiku-latest"
	// claudeAPIVersion is the required anthropic-version header value.
	claudeAPIVersion = "2023-06-01"
	// claudeMaxTokens bounds the response length of a messages call.
	claudeMaxTokens = 4096
)

// claudeRequest is the Anthropic messages request body.
type claudeRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

// claudeResponse is the Anthropic messages response body.
type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// ClaudeAdapter talks to the Anthropic messages API. Session history is
// replayed as alternating user/assistant messages.
type ClaudeAdapter struct {
	cfg     ProviderConfig
	http    *resty.Client
	logger  *logrus.Logger
	session *SessionContext
}

// NewClaudeAdapter creates the Claude adapter.
func NewClaudeAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultClaudeURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultClaudeModel
	}

	return &ClaudeAdapter{
		cfg:     cfg,
		http:    newHTTPClient(cfg),
		logger:  logger,
		session: NewSessionContext(),
	}
}

// ID returns the canonical provider id.
func (a *ClaudeAdapter) ID() string { return "claude" }

// ValidateConfig fails fast with CONFIG_MISSING when the key is absent.
func (a *ClaudeAdapter) ValidateConfig() error {
	if a.cfg.APIKey == "" {
		return NewError(KindConfigMissing, "claude: config", "missing api key")
	}
	if a.cfg.Model == "" {
		return NewError(KindConfigMissing, "claude: config", "missing model id")
	}
	return nil
}

// ResetSession clears the adapter's multi-turn history.
func (a *ClaudeAdapter) ResetSession() { a.session.Reset() }

// Translate renders the mode-selected prompt and performs one messages
// call, replaying the session history first.
func (a *ClaudeAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
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
		return nil, WrapError(KindInvalidRequest, "claude: prompt", err)
	}

	messages := make([]chatMessage, 0, a.session.Len()+1)
	for _, turn := range a.session.Snapshot() {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	a.logger.WithFields(logrus.Fields{
		"provider":    "claude",
		"model":       a.cfg.Model,
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"mode":        string(mode),
		"text_length": len(text),
	}).Debug("Translating text with Claude")

	var out claudeResponse
	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", a.cfg.APIKey).
		SetHeader("anthropic-version", claudeAPIVersion).
		SetBody(claudeRequest{Model: a.cfg.Model, MaxTokens: claudeMaxTokens, Messages: messages}).
		SetResult(&out).
		Post(a.cfg.BaseURL + "/v1/messages")
	if err != nil || resp.IsError() {
		execErr := execError("claude", "messages", resp, err)
		a.logger.WithError(execErr).Error("Claude request failed")
		return nil, execErr
	}

	if len(out.Content) == 0 {
		return nil, NewError(KindInvalidRequest, "claude: messages", "empty response from upstream")
	}
	content := out.Content[0].Text

	a.session.Record(prompt, content)

	a.logger.WithFields(logrus.Fields{
		"provider":    "claude",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &content, nil
}
