package translate

import (
	"errors"
	"strings"
)

// messagePattern maps lowercase substrings to an ErrorKind. Patterns
// are evaluated in order; the first match wins.
type messagePattern struct {
	kind ErrorKind
	subs []string
}

// messagePatterns is ordered from most to least specific. Region-locked
// quota prose must be checked before plain quota prose, because vendor
// messages like "quota exceeded in your region" contain both.
var messagePatterns = []messagePattern{
	{KindInvalidRequest, []string{"empty response", "empty text", "invalid input", "no translation input"}},
	{KindContextInvalidated, []string{"context invalidated", "extension context", "context canceled"}},
	{KindAPIKeyInvalid, []string{"api key", "api-key", "apikey", "unauthorized", "incorrect authentication", "invalid authentication"}},
	{KindForbidden, []string{"region", "territory", "country", "location is not supported"}},
	{KindInsufficientBalance, []string{"quota", "insufficient balance", "billing", "exceeded your current"}},
	{KindRateLimitReached, []string{"rate limit", "too many requests"}},
	{KindNetworkError, []string{"failed to fetch", "network", "timeout", "timed out", "deadline exceeded", "connection refused", "connection reset", "no such host", "dial tcp", "broken pipe"}},
	{KindHTTPError, []string{"http error", "http status", "status code", "bad gateway"}},
}

// Classify maps any error to one member of the closed taxonomy.
// Priority order: an already-classified *Error is returned unchanged
// (classification is idempotent); then a carried HTTP status maps via
// the fixed table; then the lowercased message is matched against the
// ordered pattern set; no match yields UNKNOWN.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var terr *Error
	if errors.As(err, &terr) {
		if terr.Kind != "" {
			return terr.Kind
		}
		if terr.Status >= 400 && terr.Status < 600 {
			return ClassifyStatus(terr.Status)
		}
	}

	return classifyMessage(err.Error())
}

// ClassifyStatus maps an HTTP status in [400,600) via the fixed table.
// Statuses outside the range classify as UNKNOWN.
func ClassifyStatus(status int) ErrorKind {
	switch status {
	case 401:
		return KindAPIKeyInvalid
	case 402:
		return KindInsufficientBalance
	case 403:
		return KindForbidden
	case 404:
		return KindModelMissing
	case 400, 422:
		return KindInvalidRequest
	case 429:
		return KindRateLimitReached
	case 500, 502, 503, 524:
		return KindServerError
	}
	if status >= 400 && status < 600 {
		return KindHTTPError
	}
	return KindUnknown
}

func classifyMessage(message string) ErrorKind {
	msg := strings.ToLower(message)
	for _, p := range messagePatterns {
		for _, sub := range p.subs {
			if strings.Contains(msg, sub) {
				return p.kind
			}
		}
	}
	return KindUnknown
}
