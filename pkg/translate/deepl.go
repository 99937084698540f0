package translate

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultDeepLURL is the DeepL API Free base URL. Pro accounts point
// BaseURL at api.deepl.com instead.
const DefaultDeepLURL = "https://api-free.deepl.com"

// deepLQuotaExceededStatus is DeepL's non-standard status for an
// exhausted character quota.
const deepLQuotaExceededStatus = 456

// deepLResponse is the translate response body.
type deepLResponse struct {
	Translations []struct {
		Text                   string `json:"text"`
		DetectedSourceLanguage string `json:"detected_source_language"`
	} `json:"translations"`
}

// deepLErrorResponse is the vendor error envelope.
type deepLErrorResponse struct {
	Message string `json:"message"`
}

// DeepLAdapter uses the DeepL v2 form API.
type DeepLAdapter struct {
	cfg    ProviderConfig
	http   *resty.Client
	logger *logrus.Logger
}

// NewDeepLAdapter creates the DeepL adapter.
func NewDeepLAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultDeepLURL
	}

	return &DeepLAdapter{
		cfg:    cfg,
		http:   newHTTPClient(cfg),
		logger: logger,
	}
}

// ID returns the canonical provider id.
func (a *DeepLAdapter) ID() string { return "deepl" }

// ValidateConfig fails fast with CONFIG_MISSING when the auth key is
// absent.
func (a *DeepLAdapter) ValidateConfig() error {
	if a.cfg.APIKey == "" {
		return NewError(KindConfigMissing, "deepl: config", "missing api key")
	}
	return nil
}

// Translate performs one form-encoded translate call. DeepL expects
// uppercase language codes.
func (a *DeepLAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
	if sourceLang == targetLang {
		return nil, nil
	}
	if err := a.ValidateConfig(); err != nil {
		return nil, err
	}

	a.logger.WithFields(logrus.Fields{
		"provider":    "deepl",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with DeepL")

	var out deepLResponse
	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "DeepL-Auth-Key "+a.cfg.APIKey).
		SetFormData(map[string]string{
			"text":        text,
			"source_lang": strings.ToUpper(sourceLang),
			"target_lang": strings.ToUpper(targetLang),
		}).
		SetResult(&out).
		SetError(&deepLErrorResponse{}).
		Post(a.cfg.BaseURL + "/v2/translate")
	if err != nil {
		execErr := execError("deepl", "translate", resp, err)
		a.logger.WithError(execErr).Error("DeepL translation request failed")
		return nil, execErr
	}
	if resp.IsError() {
		vendorMsg := ""
		if vendorErr, ok := resp.Error().(*deepLErrorResponse); ok {
			vendorMsg = vendorErr.Message
		}
		switch {
		case resp.StatusCode() == deepLQuotaExceededStatus:
			return nil, &Error{
				Kind:    KindInsufficientBalance,
				Status:  resp.StatusCode(),
				Context: "deepl: translate",
				Message: vendorMsg,
			}
		case isDeepLPairError(vendorMsg):
			return nil, &Error{
				Kind:    KindLanguagePairNotSupported,
				Status:  resp.StatusCode(),
				Context: "deepl: translate",
				Message: vendorMsg,
			}
		}
		execErr := execError("deepl", "translate", resp, nil)
		a.logger.WithError(execErr).Error("DeepL translation request failed")
		return nil, execErr
	}

	if len(out.Translations) == 0 {
		return nil, NewError(KindInvalidRequest, "deepl: translate", "empty response from upstream")
	}
	translated := out.Translations[0].Text

	a.logger.WithFields(logrus.Fields{
		"provider":    "deepl",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &translated, nil
}

// isDeepLPairError recognizes the vendor's unsupported-language prose.
func isDeepLPairError(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "unsupported source language") ||
		strings.Contains(msg, "unsupported target language") ||
		strings.Contains(msg, "not supported")
}
