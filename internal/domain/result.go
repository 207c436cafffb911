package domain

import "fmt"

// FailureKind classifies why a fetch produced no usable subtitle data.
type FailureKind string

const (
	FailureKindTimeout    FailureKind = "timeout"
	FailureKindConnection FailureKind = "connection"
	FailureKindHTTP       FailureKind = "http"
	FailureKindOther      FailureKind = "other"
)

func (k FailureKind) String() string {
	return string(k)
}

// FetchResult is the outcome of one request/response exchange for an
// identifier. It is consumed by the logging sink and discarded.
type FetchResult struct {
	ID         Identifier
	OK         bool
	Body       string
	Failure    FailureKind
	StatusCode int
	Reason     string
}

// Success builds a result for a 2xx response.
func Success(id Identifier, body string) FetchResult {
	return FetchResult{ID: id, OK: true, Body: body}
}

// HTTPFailure builds a result for a non-2xx response.
func HTTPFailure(id Identifier, statusCode int, body string) FetchResult {
	return FetchResult{
		ID:         id,
		Failure:    FailureKindHTTP,
		StatusCode: statusCode,
		Body:       body,
		Reason:     fmt.Sprintf("status %d", statusCode),
	}
}

// TransportFailure builds a result for a request that produced no response.
func TransportFailure(id Identifier, kind FailureKind, reason string) FetchResult {
	return FetchResult{ID: id, Failure: kind, Reason: reason}
}

// Summary aggregates one batch run.
type Summary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of fetches the summary covers.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// Snippet bounds s to max characters, appending an ellipsis marker when the
// original was longer.
func Snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
