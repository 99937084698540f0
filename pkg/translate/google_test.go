package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleValidateConfigKeyless(t *testing.T) {
	a := NewGoogleAdapter(ProviderConfig{}, nil)
	if err := a.ValidateConfig(); err != nil {
		t.Errorf("google needs no key, got %v", err)
	}
}

func TestGoogleTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_a/single" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("sl") != "en" || q.Get("tl") != "fa" || q.Get("client") != "gtx" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[["سلام","Hello",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	a := NewGoogleAdapter(ProviderConfig{BaseURL: srv.URL}, nil)
	out, err := a.Translate(context.Background(), "Hello", "en", "fa", ModeField)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if out == nil || *out != "سلام" {
		t.Fatalf("got %v, want سلام", out)
	}
}

func TestGoogleTranslateConcatenatesSentences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["Bonjour. ","Hello. "],["Au revoir.","Goodbye."]],null,"en"]`))
	}))
	defer srv.Close()

	a := NewGoogleAdapter(ProviderConfig{BaseURL: srv.URL}, nil)
	out, err := a.Translate(context.Background(), "Hello. Goodbye.", "en", "fr", ModeField)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if *out != "Bonjour. Au revoir." {
		t.Errorf("got %q", *out)
	}
}

func TestGoogleTranslateSameLanguageSkips(t *testing.T) {
	a := NewGoogleAdapter(ProviderConfig{BaseURL: "http://127.0.0.1:0"}, nil)
	out, err := a.Translate(context.Background(), "Hello", "en", "en", ModeField)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if out != nil {
		t.Errorf("got %q, want nil", *out)
	}
}

func TestGoogleTranslateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>captcha</html>`))
	}))
	defer srv.Close()

	a := NewGoogleAdapter(ProviderConfig{BaseURL: srv.URL}, nil)
	_, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindInvalidRequest {
		t.Errorf("got %v, want %s", err, KindInvalidRequest)
	}
}

func TestGoogleTranslateRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewGoogleAdapter(ProviderConfig{BaseURL: srv.URL}, nil)
	_, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindRateLimitReached {
		t.Errorf("got %v, want %s", err, KindRateLimitReached)
	}
}

func TestParseGoogleResponseEmpty(t *testing.T) {
	if _, err := parseGoogleResponse([]byte(`[]`)); err == nil {
		t.Error("expected error for empty payload")
	}
}
