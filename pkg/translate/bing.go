package translate

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultBingURL is the Microsoft Translator text API base URL.
const DefaultBingURL = "https://api.cognitive.microsofttranslator.com"

// bingRequestItem is one text element of a translate request.
type bingRequestItem struct {
	Text string `json:"Text"`
}

// bingResponseItem is one element of a translate response.
type bingResponseItem struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// bingErrorResponse is the vendor error envelope.
type bingErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// bingInvalidLanguageCodes are vendor error codes for an invalid
// source/target language, surfaced as LANGUAGE_PAIR_NOT_SUPPORTED
// rather than a generic failure.
var bingInvalidLanguageCodes = map[int]bool{
	400035: true, // source language not valid
	400036: true, // target language not valid
}

// BingAdapter uses the Microsoft Translator v3 text API.
type BingAdapter struct {
	cfg    ProviderConfig
	http   *resty.Client
	logger *logrus.Logger
}

// NewBingAdapter creates the Bing (Microsoft Translator) adapter.
func NewBingAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBingURL
	}

	return &BingAdapter{
		cfg:    cfg,
		http:   newHTTPClient(cfg),
		logger: logger,
	}
}

// ID returns the canonical provider id.
func (a *BingAdapter) ID() string { return "bing" }

// ValidateConfig fails fast with CONFIG_MISSING when the subscription
// key is absent.
func (a *BingAdapter) ValidateConfig() error {
	if a.cfg.APIKey == "" {
		return NewError(KindConfigMissing, "bing: config", "missing api key")
	}
	return nil
}

// Translate performs one translate call.
func (a *BingAdapter) Translate(ctx context.Context, text, sourceLang, targetLang string, mode Mode) (*string, error) {
	if sourceLang == targetLang {
		return nil, nil
	}
	if err := a.ValidateConfig(); err != nil {
		return nil, err
	}

	a.logger.WithFields(logrus.Fields{
		"provider":    "bing",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with Bing")

	var out []bingResponseItem
	start := time.Now()
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", a.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetQueryParams(map[string]string{
			"api-version": "3.0",
			"from":        sourceLang,
			"to":          targetLang,
		}).
		SetBody([]bingRequestItem{{Text: text}}).
		SetResult(&out).
		SetError(&bingErrorResponse{}).
		Post(a.cfg.BaseURL + "/translate")
	if err != nil {
		execErr := execError("bing", "translate", resp, err)
		a.logger.WithError(execErr).Error("Bing translation request failed")
		return nil, execErr
	}
	if resp.IsError() {
		if vendorErr, ok := resp.Error().(*bingErrorResponse); ok && a.isPairError(vendorErr) {
			return nil, &Error{
				Kind:    KindLanguagePairNotSupported,
				Status:  resp.StatusCode(),
				Context: "bing: translate",
				Message: vendorErr.Error.Message,
			}
		}
		execErr := execError("bing", "translate", resp, nil)
		a.logger.WithError(execErr).Error("Bing translation request failed")
		return nil, execErr
	}

	if len(out) == 0 || len(out[0].Translations) == 0 {
		return nil, NewError(KindInvalidRequest, "bing: translate", "empty response from upstream")
	}
	translated := out[0].Translations[0].Text

	a.logger.WithFields(logrus.Fields{
		"provider":    "bing",
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Translation completed successfully")

	return &translated, nil
}

func (a *BingAdapter) isPairError(vendorErr *bingErrorResponse) bool {
	if bingInvalidLanguageCodes[vendorErr.Error.Code] {
		return true
	}
	msg := strings.ToLower(vendorErr.Error.Message)
	return strings.Contains(msg, "language is not valid") ||
		strings.Contains(msg, "language pair")
}
