package gitlab

import (
	"errors"
	"fmt"
)

// Errors raised by the dispatch layer itself, before any network call is
// made. Transport failures are *APIError values instead.
var (
	// ErrNotImplemented is returned when a resource type does not permit the
	// requested operation.
	ErrNotImplemented = errors.New("gitlab: operation not supported by this resource type")

	// ErrNotFound is returned when a resource located through its listing
	// (GetFromList) has no entry with the requested identifier.
	ErrNotFound = errors.New("gitlab: object not found")

	// ErrNotSaved is returned when deleting an object that was never created
	// on the server.
	ErrNotSaved = errors.New("gitlab: object has not been created on the server")
)

// ErrorKind names the operation or resource action that failed.
type ErrorKind string

const (
	KindGet        ErrorKind = "get"
	KindList       ErrorKind = "list"
	KindCreate     ErrorKind = "create"
	KindUpdate     ErrorKind = "update"
	KindDelete     ErrorKind = "delete"
	KindConnection ErrorKind = "connection"
	KindURL        ErrorKind = "url"

	// Resource-specific actions carry their own kinds so callers can react to
	// a failed block differently from a failed merge.
	KindBlock         ErrorKind = "block"
	KindUnblock       ErrorKind = "unblock"
	KindTransfer      ErrorKind = "transfer"
	KindSubscribe     ErrorKind = "subscribe"
	KindUnsubscribe   ErrorKind = "unsubscribe"
	KindMerge         ErrorKind = "merge"
	KindForbidden     ErrorKind = "forbidden"
	KindClosed        ErrorKind = "closed"
	KindBuildSucceeds ErrorKind = "merge-when-build-succeeds"
	KindProtect       ErrorKind = "protect"
	KindRelease       ErrorKind = "release"
	KindStar          ErrorKind = "star"
	KindFork          ErrorKind = "fork"
	KindCancel        ErrorKind = "cancel"
	KindRetry         ErrorKind = "retry"
)

// APIError reports a request the server refused. The dispatch layer never
// produces these itself and never swallows them; they propagate unchanged
// from the connection or from a raw-verb status check.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gitlab: %s failed (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gitlab: %s failed: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) an *APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// CheckResponse turns a raw response into an *APIError of the given kind
// unless its status code is one of the expected codes. When no expected codes
// are given, 200 is assumed.
func CheckResponse(resp *Response, kind ErrorKind, expected ...int) error {
	if len(expected) == 0 {
		expected = []int{200}
	}
	for _, code := range expected {
		if resp.StatusCode == code {
			return nil
		}
	}
	return &APIError{Kind: kind, StatusCode: resp.StatusCode, Message: resp.ErrorMessage()}
}

// checkResponseKinds is CheckResponse for actions where the server encodes
// distinct failures in distinct status codes.
func checkResponseKinds(resp *Response, kinds map[int]ErrorKind, fallback ErrorKind, expected ...int) error {
	if len(expected) == 0 {
		expected = []int{200}
	}
	for _, code := range expected {
		if resp.StatusCode == code {
			return nil
		}
	}
	kind := fallback
	if k, ok := kinds[resp.StatusCode]; ok {
		kind = k
	}
	return &APIError{Kind: kind, StatusCode: resp.StatusCode, Message: resp.ErrorMessage()}
}
