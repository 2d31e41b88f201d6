package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies a failed request.
type ErrorKind int

const (
	// Unavailable covers network failures and server-side errors.
	Unavailable ErrorKind = iota
	RateLimited
	// Truncated means the answer stopped at MaxTokens and is unusable.
	Truncated
	// Malformed means the provider answered without any text.
	Malformed
)

func (k ErrorKind) String() string {
	switch k {
	case RateLimited:
		return "rate limited"
	case Truncated:
		return "truncated"
	case Malformed:
		return "malformed response"
	default:
		return "unavailable"
	}
}

// Error is returned by every provider for a failed request.
type Error struct {
	Kind ErrorKind
	// RetryAfter is the server's requested delay for RateLimited, if any.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Transient reports whether the same request may succeed later.
func (e *Error) Transient() bool {
	return e.Kind == Unavailable || e.Kind == RateLimited
}

// KindOf returns the kind of the *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// statusError maps an HTTP status reported by a provider SDK. header may be
// nil when the SDK does not expose the response.
func statusError(status int, header http.Header, err error) *Error {
	if status != http.StatusTooManyRequests {
		return &Error{Kind: Unavailable, Err: err}
	}
	e := &Error{Kind: RateLimited, Err: err}
	if header != nil {
		if secs, perr := strconv.Atoi(header.Get("Retry-After")); perr == nil && secs > 0 {
			e.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return e
}
