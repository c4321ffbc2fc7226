package domain

import (
	"errors"
	"fmt"
)

var (
	// フィード関連エラー
	ErrFeedNotFound      = errors.New("feed source not found")
	ErrFeedAlreadyExists = errors.New("feed source already exists")
	ErrScopeMissing      = errors.New("feed scope requires a user or a group owner")
	ErrScopeAmbiguous    = errors.New("feed scope cannot have both a user and a group owner")

	// ErrRateLimited marks a fetch the per-host limiter refused to
	// admit within the caller's deadline.
	ErrRateLimited = errors.New("upstream host rate limited")
)

// NetworkError is a transport-level failure: timeout, DNS, non-2xx, or
// both fetch strategies exhausted. Recoverable on the next cycle.
type NetworkError struct {
	URL   string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %q: %v", e.URL, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// ParseError is a malformed feed document. Recoverable: the upstream
// feed may self-correct.
type ParseError struct {
	URL   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for feed %q: %v", e.URL, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ValidationError indicates missing or invalid caller-supplied
// parameters. Fatal for the call, never transient.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// PersistenceError is a store read/write failure. Benign marks the
// conflict-on-already-exists subtype: a concurrent writer achieved the
// intended effect, so the cycle is treated as a soft success.
type PersistenceError struct {
	Op     string
	Cause  error
	Benign bool
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }

// IsBenignPersistence reports whether err is a persistence failure that
// may be swallowed because the rows it describes already exist.
func IsBenignPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Benign
}
