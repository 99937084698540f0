package translate

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultYandexURL is the Yandex Cloud translate API base URL.
const DefaultYandexURL = "https://translate.api.cloud.yandex.net"

// yandexRequest is the translate request body.
type yandexRequest struct {
	SourceLanguageCode string   `json:"sourceLanguageCode"`
	TargetLanguageCode string   `json:"targetLanguageCode"`
	Format             string   `json:"format"`
	Texts              []string `json:"texts"`
}

// yandexResponse is the translate response body.
type yandexResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// yandexErrorResponse is the vendor error envelope.
type yandexErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// YandexAdapter uses the Yandex Cloud translate v2 API.
type YandexAdapter struct {
	cfg    ProviderConfig
	http   *resty.Client
	logger *logrus.Logger
}

// NewYandexAdapter creates the Yandex adapter.
func NewYandexAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultYandexURL
	}

	return &YandexAdapter{
		cfg:    cfg,
		http:   newHTTPClient(cfg),
		logger: logger,
	}
}

// ID returns the canonical provider id.
func (a *YandexAdapter) ID() string { return "yandex" }

// ValidateConfig fails fast with CONFIG_MISSING when the key is absent.
func (a *YandexAdapter) ValidateConfig() error {
	if a.cfg.APIKey == "" {
		return NewError(KindConfigMissing, "yandex: config", "missing api key")
	}
	return nil
}

// Translate performs one translate call.
func (a *YandexAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
	if sourceLang == targetLang {
		return nil, nil
	}
	if err := a.ValidateConfig(); err != nil {
		return nil, err
	}

	a.logger.WithFields(logrus.Fields{
		"provider":    "yandex",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with Yandex")

	var out yandexResponse
	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Api-Key "+a.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(yandexRequest{
			SourceLanguageCode: sourceLang,
			TargetLanguageCode: targetLang,
			Format:             "PLAIN_TEXT",
			Texts:              []string{text},
		}).
		SetResult(&out).
		SetError(&yandexErrorResponse{}).
		Post(a.cfg.BaseURL + "/translate/v2/translate")
	if err != nil {
		execErr := execError("yandex", "translate", resp, err)
		a.logger.WithError(execErr).Error("Yandex translation request failed")
		return nil, execErr
	}
	if resp.IsError() {
		if vendorErr, ok := resp.Error().(*yandexErrorResponse); ok && isYandexPairError(vendorErr.Message) {
			return nil, &Error{
				Kind:    KindLanguagePairNotSupported,
				Status:  resp.StatusCode(),
				Context: "yandex: translate",
				Message: vendorErr.Message,
			}
		}
		execErr := execError("yandex", "translate", resp, nil)
		a.logger.WithError(execErr).Error("Yandex translation request failed")
		return nil, execErr
	}

	if len(out.Translations) == 0 {
		return nil, NewError(KindInvalidRequest, "yandex: translate", "empty response from upstream")
	}
	translated := out.Translations[0].Text

	a.logger.WithFields(logrus.Fields{
		"provider":    "yandex",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &translated, nil
}

// isYandexPairError recognizes the vendor's unsupported-direction
// prose, a first-class outcome rather than a generic failure.
func isYandexPairError(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "unsupported language") ||
		strings.Contains(msg, "translation direction")
}
