package translate

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultTimeout bounds a single upstream call when the provider
// configuration does not override it. The pipeline imposes no other
// latency bound; callers needing one use the request context.
const defaultTimeout = 30 * time.Second

// maxErrorBodyBytes caps the upstream body carried inside a classified
// error message.
const maxErrorBodyBytes = 512

// newHTTPClient builds the adapter's HTTP client. Retries stay off:
// the pipeline never retries, it only marks kinds retry-eligible.
func newHTTPClient(cfg ProviderConfig) *resty.Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return resty.New().SetTimeout(timeout)
}

// execError turns the outcome of an upstream call into a classified
// *Error. Transport failures classify by message (network, timeout);
// HTTP failures classify by status via the fixed table, carrying a
// snippet of the upstream body for operators.
func execError(provider, phase string, resp *resty.Response, err error) *Error {
	context := provider + ": " + phase
	if err != nil {
		kind := classifyMessage(err.Error())
		if kind == KindUnknown {
			kind = KindNetworkError
		}
		return &Error{Kind: kind, Context: context, Err: err}
	}

	status := resp.StatusCode()
	return &Error{
		Kind:    ClassifyStatus(status),
		Status:  status,
		Context: context,
		Message: snippet(resp.String()),
	}
}

func snippet(body string) string {
	if len(body) <= maxErrorBodyBytes {
		return body
	}
	return body[:maxErrorBodyBytes] + "..."
}
