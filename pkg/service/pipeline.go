// Package service orchestrates end-to-end translation requests: it
// decodes batch input, resolves and detects languages, applies the
// source/target swap heuristic, dispatches to the selected provider
// adapter and reconstructs batch output.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lingopipe/lingopipe/pkg/language"
	"github.com/lingopipe/lingopipe/pkg/segment"
	"github.com/lingopipe/lingopipe/pkg/translate"
)

// Request is a single translation job submitted to the pipeline.
type Request struct {
	// Text is the raw input: plain text, or a JSON segment array for
	// batch mode.
	Text string

	// Source is a language identifier (code, display name or BCP 47
	// tag) or the "auto" sentinel requesting detection.
	Source string

	// Target is a language identifier. It must not be "auto".
	Target string

	// Mode selects the prompt template for generative providers.
	Mode translate.Mode

	// Provider is the backend id, matched case-insensitively.
	Provider string
}

// Response carries the translated text plus the request metadata the
// pipeline resolved along the way.
type Response struct {
	RequestID string
	Text      string
	Provider  string
	Source    string
	Target    string

	// Batch reports whether the input was recognized as a segment array.
	Batch bool

	// SegmentMismatch is set when the provider returned a different
	// number of delimiter-separated parts than were sent. Text then
	// holds the raw provider output.
	SegmentMismatch bool

	// Skipped is set when the resolved source equals the resolved
	// target after the swap heuristic, or when the provider reported
	// that no translation was needed. Text holds the original input.
	Skipped bool

	// Segments holds the reconstructed batch segments when Batch is set
	// and no mismatch occurred.
	Segments []segment.Segment
}

// Pipeline wires the language resolver, detector and adapter registry
// into the single Translate entrypoint.
type Pipeline struct {
	registry *translate.Registry
	resolver *language.Resolver
	detector *language.Detector
	logger   *logrus.Logger
}

// NewPipeline creates a pipeline over the given provider settings.
func NewPipeline(settings translate.Settings, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
	}

	return &Pipeline{
		registry: translate.NewRegistry(settings, logger),
		resolver: language.NewResolver(logger),
		detector: language.NewDetector(logger),
		logger:   logger,
	}
}

// Registry exposes the underlying adapter registry for session resets
// and provider enumeration.
func (p *Pipeline) Registry() *translate.Registry {
	return p.registry
}

// Translate runs one request through the full pipeline. Failures are
// returned as classified *translate.Error values; callers can switch
// on the kind or check Retryable.
func (p *Pipeline) Translate(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	startTime := time.Now()
	provider := strings.ToLower(strings.TrimSpace(req.Provider))

	log := p.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"provider":   provider,
		"mode":       req.Mode,
	})

	if strings.TrimSpace(req.Text) == "" {
		log.Debug("Empty input, nothing to translate")
		return &Response{
			RequestID: requestID,
			Text:      req.Text,
			Provider:  provider,
			Skipped:   true,
		}, nil
	}

	batch := segment.Encode(req.Text)
	payload := batch.Payload()

	source := p.resolver.ResolveCode(req.Source)
	if source == language.Auto {
		source = p.detector.DetectSource(payload)
		translate.RecordDetection(source)
		log.WithFields(logrus.Fields{
			"detected": source,
		}).Debug("Source language detected")
	}
	target := p.resolver.ResolveCode(req.Target)

	source, target = language.ApplySwap(source, target)

	log = log.WithFields(logrus.Fields{
		"source": source,
		"target": target,
		"batch":  batch.IsBatch,
	})

	// Source equals target even after the swap: nothing to do.
	if source == target {
		log.Info("Source equals target, skipping translation")
		translate.RecordRequest(provider, "skipped", time.Since(startTime), len(payload), 0)
		return &Response{
			RequestID: requestID,
			Text:      req.Text,
			Provider:  provider,
			Source:    source,
			Target:    target,
			Batch:     batch.IsBatch,
			Skipped:   true,
		}, nil
	}

	adapter, err := p.registry.GetAdapter(provider)
	if err != nil {
		kind := translate.Classify(err)
		translate.RecordError(provider, kind)
		translate.RecordRequest(provider, "error", time.Since(startTime), len(payload), 0)
		return nil, err
	}

	translated, err := adapter.Translate(ctx, payload, source, target, req.Mode)
	if err != nil {
		kind := translate.Classify(err)
		log.WithError(err).WithFields(logrus.Fields{
			"kind": kind,
		}).Error("Translation failed")
		translate.RecordError(provider, kind)
		translate.RecordRequest(provider, "error", time.Since(startTime), len(payload), 0)
		if terr, ok := err.(*translate.Error); ok {
			return nil, terr
		}
		return nil, translate.WrapError(kind, adapter.ID(), err)
	}

	// A nil result is the adapter's own "no translation needed" signal.
	if translated == nil {
		log.Info("Adapter reported no translation needed")
		translate.RecordRequest(provider, "skipped", time.Since(startTime), len(payload), 0)
		return &Response{
			RequestID: requestID,
			Text:      req.Text,
			Provider:  provider,
			Source:    source,
			Target:    target,
			Batch:     batch.IsBatch,
			Skipped:   true,
		}, nil
	}

	result := segment.Reconstruct(*translated, batch)
	if result.Mismatch {
		log.WithFields(logrus.Fields{
			"expected_segments": len(batch.Segments),
		}).Warn("Segment count mismatch, returning raw provider output")
		translate.RecordSegmentMismatch(provider)
	}

	translate.RecordRequest(provider, "success", time.Since(startTime), len(payload), len(result.Text))
	log.WithFields(logrus.Fields{
		"duration": time.Since(startTime).Seconds(),
	}).Info("Translation completed")

	return &Response{
		RequestID:       requestID,
		Text:            result.Text,
		Provider:        adapter.ID(),
		Source:          source,
		Target:          target,
		Batch:           batch.IsBatch,
		SegmentMismatch: result.Mismatch,
		Segments:        result.Segments,
	}, nil
}
