package storeintel

import "context"

// FetchKind classifies the outcome of a fetch.
type FetchKind string

// Fetch outcome classifications. Transport failures are folded into
// the result rather than surfaced as Go errors: callers treat "no
// result" as "unreachable", not as a crash.
const (
	FetchOK             FetchKind = "ok"
	FetchTransportError FetchKind = "transport-error" // DNS, connect, or timeout failure
	FetchNotFound       FetchKind = "not-found"       // HTTP 404: host exists, page absent
	FetchBadStatus      FetchKind = "bad-status"      // any other non-200 status
)

// FetchResult is the classified outcome of a single HTTP GET.
// Immutable once produced; owned exclusively by the caller that
// requested it.
type FetchResult struct {
	StatusCode int
	Body       []byte
	Kind       FetchKind
}

// OK reports whether the fetch returned a usable 200 response.
func (r *FetchResult) OK() bool {
	return r != nil && r.Kind == FetchOK
}

// Fetcher retrieves pages over HTTP. Implementations share one
// connection pool across all concurrent callers and must be safe for
// concurrent use. All network I/O in the system is funneled through a
// Fetcher so that timeout and header policy are enforced uniformly.
type Fetcher interface {
	// Fetch issues a GET for the URL and classifies the outcome.
	// The returned result is never nil; transport failures are
	// reported via FetchResult.Kind, not as errors.
	Fetch(ctx context.Context, url string) *FetchResult

	// Close releases any underlying resources.
	Close() error
}

// StageLimiter paces sequential extraction stages against one host.
type StageLimiter interface {
	// Wait blocks until the next stage may run. Returns an error
	// only if the context is canceled.
	Wait(ctx context.Context) error
}
