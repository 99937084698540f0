package translate

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultGoogleURL is the free Google web translation endpoint. It
// needs no API key, so configuration validation always passes and only
// a BaseURL override is honored.
const DefaultGoogleURL = "https://translate.googleapis.com"

// GoogleAdapter uses the free Google web endpoint. The response is a
// nested JSON array whose first element lists translated sentence
// chunks; the adapter concatenates them.
type GoogleAdapter struct {
	cfg    ProviderConfig
	http   *resty.Client
	logger *logrus.Logger
}

// NewGoogleAdapter creates the Google adapter.
func NewGoogleAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGoogleURL
	}

	return &GoogleAdapter{
		cfg:    cfg,
		http:   newHTTPClient(cfg),
		logger: logger,
	}
}

// ID returns the canonical provider id.
func (a *GoogleAdapter) ID() string { return "google" }

// ValidateConfig always succeeds: the web endpoint is keyless.
func (a *GoogleAdapter) ValidateConfig() error { return nil }

// Translate performs one request against the web endpoint.
func (a *GoogleAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
	if sourceLang == targetLang {
		return nil, nil
	}

	a.logger.WithFields(logrus.Fields{
		"provider":    "google",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with Google")

	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"dt":     "t",
			"sl":     sourceLang,
			"tl":     targetLang,
			"q":      text,
		}).
		Get(a.cfg.BaseURL + "/translate_a/single")
	if err != nil || resp.IsError() {
		execErr := execError("google", "translate", resp, err)
		a.logger.WithError(execErr).Error("Google translation request failed")
		return nil, execErr
	}

	translated, err := parseGoogleResponse(resp.Body())
	if err != nil {
		return nil, WrapError(KindInvalidRequest, "google: parse response", err)
	}

	a.logger.WithFields(logrus.Fields{
		"provider":    "google",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &translated, nil
}

// parseGoogleResponse extracts the translation from the web endpoint's
// nested-array response: [[["chunk","orig",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", NewError(KindInvalidRequest, "google: parse response", "empty response from upstream")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(sentence[0], &chunk); err != nil {
			continue
		}
		sb.WriteString(chunk)
	}
	return sb.String(), nil
}
