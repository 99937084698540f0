package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lingopipe/lingopipe/pkg/translate"
)

func TestTranslateEachKeepsOrder(t *testing.T) {
	translations := make(map[string]string, 10)
	reqs := make([]Request, 10)
	for i := range reqs {
		in := fmt.Sprintf("hello %d", i)
		translations[in] = fmt.Sprintf("bonjour %d", i)
		reqs[i] = Request{Text: in, Source: "en", Target: "fr", Provider: "google"}
	}
	p := newTestPipeline(t, translations)

	outcomes := p.TranslateEach(context.Background(), reqs, 3)
	if len(outcomes) != len(reqs) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(reqs))
	}
	for i, o := range outcomes {
		if o.Err != nil {
			t.Errorf("request %d failed: %v", i, o.Err)
			continue
		}
		if o.Index != i {
			t.Errorf("outcome %d carries index %d", i, o.Index)
		}
		want := fmt.Sprintf("bonjour %d", i)
		if o.Response.Text != want {
			t.Errorf("outcome %d text = %q, want %q", i, o.Response.Text, want)
		}
	}
}

func TestTranslateEachIsolatesFailures(t *testing.T) {
	p := newTestPipeline(t, map[string]string{"ok": "bien"})

	reqs := []Request{
		{Text: "ok", Source: "en", Target: "es", Provider: "google"},
		{Text: "nope", Source: "en", Target: "es", Provider: "babelfish"},
		{Text: "ok", Source: "en", Target: "es", Provider: "google"},
	}
	outcomes := p.TranslateEach(context.Background(), reqs, 2)

	if outcomes[0].Err != nil || outcomes[2].Err != nil {
		t.Errorf("healthy requests failed: %v, %v", outcomes[0].Err, outcomes[2].Err)
	}
	var terr *translate.Error
	if !errors.As(outcomes[1].Err, &terr) || terr.Kind != translate.KindUnsupportedProvider {
		t.Errorf("got %v, want %s", outcomes[1].Err, translate.KindUnsupportedProvider)
	}
}

func TestTranslateEachEmptyInput(t *testing.T) {
	p := newTestPipeline(t, nil)
	outcomes := p.TranslateEach(context.Background(), nil, 4)
	if len(outcomes) != 0 {
		t.Errorf("got %d outcomes for empty input", len(outcomes))
	}
}

func TestTranslateEachDefaultsWorkerCount(t *testing.T) {
	p := newTestPipeline(t, map[string]string{"hi": "salut"})
	reqs := []Request{{Text: "hi", Source: "en", Target: "fr", Provider: "google"}}

	// Zero and negative pool sizes fall back to the default.
	outcomes := p.TranslateEach(context.Background(), reqs, 0)
	if outcomes[0].Err != nil {
		t.Errorf("unexpected error: %v", outcomes[0].Err)
	}
	outcomes = p.TranslateEach(context.Background(), reqs, -1)
	if outcomes[0].Err != nil {
		t.Errorf("unexpected error: %v", outcomes[0].Err)
	}
}
