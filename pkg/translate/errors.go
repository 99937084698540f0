package translate

import (
	"fmt"
)

// ErrorKind is the closed failure taxonomy for translation errors.
// Every upstream failure, whatever its shape, is mapped to exactly one
// of these kinds before it leaves the pipeline.
type ErrorKind string

const (
	// KindConfigMissing indicates a required key/url/model is absent.
	// Raised before any network call; never retried.
	KindConfigMissing ErrorKind = "CONFIG_MISSING"
	// KindAPIKeyInvalid indicates the upstream rejected the credential.
	KindAPIKeyInvalid ErrorKind = "API_KEY_INVALID"
	// KindInsufficientBalance indicates an exhausted quota or balance.
	KindInsufficientBalance ErrorKind = "INSUFFICIENT_BALANCE"
	// KindForbidden indicates the upstream refused the request outright,
	// including region-locked accounts.
	KindForbidden ErrorKind = "FORBIDDEN"
	// KindModelMissing indicates the requested model id does not exist.
	KindModelMissing ErrorKind = "MODEL_MISSING"
	// KindInvalidRequest indicates a malformed or empty request.
	KindInvalidRequest ErrorKind = "INVALID_REQUEST"
	// KindRateLimitReached indicates upstream throttling. Retry-eligible.
	KindRateLimitReached ErrorKind = "RATE_LIMIT_REACHED"
	// KindServerError indicates an upstream 5xx-class failure. Retry-eligible.
	KindServerError ErrorKind = "SERVER_ERROR"
	// KindHTTPError is the catch-all for other HTTP-level failures.
	KindHTTPError ErrorKind = "HTTP_ERROR"
	// KindLanguagePairNotSupported indicates the vendor cannot translate
	// the requested direction. A first-class outcome, not a generic failure.
	KindLanguagePairNotSupported ErrorKind = "LANGUAGE_PAIR_NOT_SUPPORTED"
	// KindNetworkError indicates the request never produced a response.
	KindNetworkError ErrorKind = "NETWORK_ERROR"
	// KindContextInvalidated indicates the host runtime tore down the
	// caller's context mid-flight.
	KindContextInvalidated ErrorKind = "CONTEXT_INVALIDATED"
	// KindUnsupportedProvider indicates a provider id outside the closed set.
	KindUnsupportedProvider ErrorKind = "UNSUPPORTED_PROVIDER"
	// KindSegmentCountMismatch is the soft outcome of a batch whose
	// translated part count differs from the original segment count.
	// It degrades, never escalates.
	KindSegmentCountMismatch ErrorKind = "SEGMENT_COUNT_MISMATCH"
	// KindUnknown is the terminal fallback of the classifier.
	KindUnknown ErrorKind = "UNKNOWN"
)

// Retryable reports whether the caller may retry the failed request.
// The pipeline itself never retries; this is a convention for callers.
func (k ErrorKind) Retryable() bool {
	return k == KindRateLimitReached || k == KindServerError
}

// Error is the classified translation failure. It carries the kind,
// the HTTP status when one was observed, and a context string naming
// the adapter and phase that produced it.
type Error struct {
	Kind    ErrorKind
	Status  int
	Context string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Context != "" && msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Context, e.Kind, msg)
	case e.Context != "":
		return fmt.Sprintf("%s: %s", e.Context, e.Kind)
	case msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry this failure.
func (e *Error) Retryable() bool {
	return e.Kind.Retryable()
}

// NewError builds a classified error with an adapter/phase context.
func NewError(kind ErrorKind, context, message string) *Error {
	return &Error{Kind: kind, Context: context, Message: message}
}

// WrapError attaches a kind and context to an underlying cause.
func WrapError(kind ErrorKind, context string, err error) *Error {
	return &Error{Kind: kind, Context: context, Err: err}
}
