package language

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
	"github.com/sirupsen/logrus"
)

const (
	// minDetectionLength is the minimum text length (bytes) worth feeding
	// to the statistical detector; shorter inputs go straight to the
	// script fallback.
	minDetectionLength = 7
	// maxDetectionLength caps the text sampled for detection.
	maxDetectionLength = 256
	// confidenceThreshold is the minimum confidence accepted from the
	// statistical detector before falling back to script matching.
	confidenceThreshold = 0.5
)

// detectionLanguages is the fixed candidate set for statistical
// detection. Restricting the set keeps model memory bounded and
// detection fast.
var detectionLanguages = []lingua.Language{
	lingua.English, lingua.Chinese, lingua.Japanese, lingua.Korean,
	lingua.French, lingua.German, lingua.Spanish, lingua.Portuguese,
	lingua.Italian, lingua.Russian, lingua.Arabic, lingua.Hindi,
	lingua.Persian, lingua.Turkish, lingua.Vietnamese, lingua.Thai,
	lingua.Indonesian, lingua.Dutch, lingua.Polish, lingua.Ukrainian,
	lingua.Greek, lingua.Hebrew,
}

// scriptFallbacks maps high-value scripts to a language code, used when
// statistical detection is unavailable or not confident enough. Kana is
// checked before Han so Japanese text with Kanji resolves to "ja".
var scriptFallbacks = []struct {
	re   *regexp.Regexp
	code string
}{
	{regexp.MustCompile(`[\p{Hiragana}\p{Katakana}]`), "ja"},
	{regexp.MustCompile(`\p{Hangul}`), "ko"},
	{regexp.MustCompile(`\p{Han}`), "zh"},
	{regexp.MustCompile(`\p{Cyrillic}`), "ru"},
	{regexp.MustCompile(`\p{Arabic}`), "ar"},
	{regexp.MustCompile(`\p{Hebrew}`), "he"},
	{regexp.MustCompile(`\p{Thai}`), "th"},
	{regexp.MustCompile(`\p{Devanagari}`), "hi"},
}

// Detector detects the source language of free text. It is used only
// when the caller requests the Auto sentinel.
type Detector struct {
	detector lingua.LanguageDetector
	logger   *logrus.Logger
}

// NewDetector builds a detector over the fixed candidate set.
func NewDetector(logger *logrus.Logger) *Detector {
	if logger == nil {
		logger = logrus.New()
	}

	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectionLanguages...).
		Build()

	logger.WithFields(logrus.Fields{
		"candidates": len(detectionLanguages),
	}).Debug("Language detector initialized")

	return &Detector{detector: d, logger: logger}
}

// DetectSource returns the provider code of the detected language.
// Detection order: statistical detection above the confidence
// threshold, then script fallback, then the "en" default.
func (d *Detector) DetectSource(text string) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return DefaultCode
	}
	if len(clean) > maxDetectionLength {
		clean = truncateOnRune(clean, maxDetectionLength)
	}

	if len(clean) >= minDetectionLength {
		values := d.detector.ComputeLanguageConfidenceValues(clean)
		if len(values) > 0 && values[0].Value() >= confidenceThreshold {
			code := strings.ToLower(values[0].Language().IsoCode639_1().String())
			d.logger.WithFields(logrus.Fields{
				"language":   code,
				"confidence": values[0].Value(),
			}).Debug("Source language detected")
			return code
		}
	}

	if code, ok := scriptFallback(clean); ok {
		d.logger.WithFields(logrus.Fields{
			"language": code,
		}).Debug("Source language matched by script fallback")
		return code
	}

	d.logger.Debug("Source language undetected, defaulting to English")
	return DefaultCode
}

func scriptFallback(text string) (string, bool) {
	for _, f := range scriptFallbacks {
		if f.re.MatchString(text) {
			return f.code, true
		}
	}
	return "", false
}

// truncateOnRune cuts text to at most max bytes without splitting a rune.
func truncateOnRune(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for i := max; i > 0; i-- {
		if utf8.RuneStart(text[i]) {
			return text[:i]
		}
	}
	return text[:max]
}
