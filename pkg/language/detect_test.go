package language

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDetectSourceEmptyDefaultsToEnglish(t *testing.T) {
	d := NewDetector(nil)
	if got := d.DetectSource(""); got != DefaultCode {
		t.Errorf("DetectSource(empty) = %q, want %q", got, DefaultCode)
	}
	if got := d.DetectSource("   \n\t "); got != DefaultCode {
		t.Errorf("DetectSource(whitespace) = %q, want %q", got, DefaultCode)
	}
}

func TestDetectSourceShortLatinDefaultsToEnglish(t *testing.T) {
	d := NewDetector(nil)
	// Below the detection threshold and with no distinctive script,
	// short Latin text falls through to the default.
	if got := d.DetectSource("Hello"); got != "en" {
		t.Errorf("DetectSource(Hello) = %q, want en", got)
	}
}

func TestDetectSourceByScript(t *testing.T) {
	d := NewDetector(nil)
	cases := []struct {
		text string
		want string
	}{
		{"こんにちは、元気ですか", "ja"},
		{"안녕하세요 반갑습니다", "ko"},
		{"Привет, как дела сегодня?", "ru"},
		{"مرحبا كيف حالك اليوم", "ar"},
		{"שלום", "he"},
		{"สวัสดี", "th"},
	}
	for _, tc := range cases {
		if got := d.DetectSource(tc.text); got != tc.want {
			t.Errorf("DetectSource(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestDetectSourceEnglishSentence(t *testing.T) {
	d := NewDetector(nil)
	text := "The quick brown fox jumps over the lazy dog near the river bank."
	if got := d.DetectSource(text); got != "en" {
		t.Errorf("DetectSource(english sentence) = %q, want en", got)
	}
}

func TestDetectSourceLongInputIsSampled(t *testing.T) {
	d := NewDetector(nil)
	text := strings.Repeat("こんにちは", 200)
	if got := d.DetectSource(text); got != "ja" {
		t.Errorf("DetectSource(long japanese) = %q, want ja", got)
	}
}

func TestTruncateOnRune(t *testing.T) {
	text := strings.Repeat("日", 100) // 3 bytes each
	got := truncateOnRune(text, 256)
	if len(got) > 256 {
		t.Errorf("truncated to %d bytes, want <= 256", len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a rune")
	}

	if got := truncateOnRune("short", 256); got != "short" {
		t.Errorf("short input must pass through, got %q", got)
	}
}
