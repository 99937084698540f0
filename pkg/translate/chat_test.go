package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestChatAdapter(t *testing.T, handler http.HandlerFunc) (*chatAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := newChatAdapter("openai", ProviderConfig{APIKey: "test-key", BaseURL: srv.URL},
		chatDefaults{Model: "gpt-4o-mini", Path: "/v1/chat/completions", RequiresKey: true}, nil)
	return a, srv
}

func chatOK(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestChatTranslate(t *testing.T) {
	var got chatRequest
	a, _ := newTestChatAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		chatOK("Bonjour")(w, r)
	})

	out, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if out == nil || *out != "Bonjour" {
		t.Fatalf("got %v, want Bonjour", out)
	}
	if got.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", got.Model)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestChatTranslateSameLanguageSkips(t *testing.T) {
	a, _ := newTestChatAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for a same-language pair")
	})

	out, err := a.Translate(context.Background(), "Hello", "en", "en", ModeField)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if out != nil {
		t.Errorf("got %q, want nil (no translation needed)", *out)
	}
}

func TestChatTranslateMissingKeyFailsFast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without a key")
	}))
	defer srv.Close()

	a := newChatAdapter("openai", ProviderConfig{BaseURL: srv.URL},
		chatDefaults{Model: "gpt-4o-mini", Path: "/v1/chat/completions", RequiresKey: true}, nil)

	_, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindConfigMissing {
		t.Errorf("got %v, want %s", err, KindConfigMissing)
	}
}

func TestChatTranslateSessionReplay(t *testing.T) {
	var calls int
	var last chatRequest
	a, _ := newTestChatAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			t.Errorf("decode request: %v", err)
		}
		chatOK("ok")(w, r)
	})

	if _, err := a.Translate(context.Background(), "first", "en", "fr", ModeField); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := a.Translate(context.Background(), "second", "en", "fr", ModeField); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls != 2 {
		t.Fatalf("got %d calls, want 2", calls)
	}
	// Second request replays the first exchange before the new prompt.
	if len(last.Messages) != 3 {
		t.Fatalf("got %d messages, want 3 (user, assistant, user)", len(last.Messages))
	}
	if last.Messages[1].Role != "assistant" || last.Messages[1].Content != "ok" {
		t.Errorf("unexpected replayed turn: %+v", last.Messages[1])
	}

	a.ResetSession()
	if _, err := a.Translate(context.Background(), "third", "en", "fr", ModeField); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if len(last.Messages) != 1 {
		t.Errorf("got %d messages after reset, want 1", len(last.Messages))
	}
}

func TestChatTranslateErrorStatusClassified(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusUnauthorized, KindAPIKeyInvalid},
		{http.StatusTooManyRequests, KindRateLimitReached},
		{http.StatusPaymentRequired, KindInsufficientBalance},
		{http.StatusInternalServerError, KindServerError},
		{http.StatusNotFound, KindModelMissing},
	}
	for _, tc := range cases {
		a, _ := newTestChatAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream says no", tc.status)
		})
		_, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
		var terr *Error
		if !errors.As(err, &terr) {
			t.Fatalf("status %d: got %v, want *Error", tc.status, err)
		}
		if terr.Kind != tc.want {
			t.Errorf("status %d classified as %s, want %s", tc.status, terr.Kind, tc.want)
		}
		if !terr.Retryable() && tc.want.Retryable() {
			t.Errorf("status %d lost retry eligibility", tc.status)
		}
	}
}

func TestChatTranslateEmptyChoices(t *testing.T) {
	a, _ := newTestChatAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})
	_, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindInvalidRequest {
		t.Errorf("got %v, want %s", err, KindInvalidRequest)
	}
}

func TestChatTranslateNetworkError(t *testing.T) {
	srv := httptest.NewServer(chatOK("x"))
	url := srv.URL
	srv.Close() // nothing listening anymore

	a := newChatAdapter("openai", ProviderConfig{APIKey: "k", BaseURL: url},
		chatDefaults{Model: "m", Path: "/v1/chat/completions", RequiresKey: true}, nil)

	_, err := a.Translate(context.Background(), "Hello", "en", "fr", ModeField)
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindNetworkError {
		t.Errorf("got %v, want %s", err, KindNetworkError)
	}
}
