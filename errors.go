package orderkey

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrInvalidKey is returned for malformed keys: an integer part whose
	// length does not match its head, the reserved minimum key, a digit
	// outside the alphabet, or a fractional part ending in the zero digit.
	ErrInvalidKey = errors.New("invalid order key")

	// ErrInvalidHead is returned when a key does not start with 'a'-'z' or 'A'-'Z'.
	ErrInvalidHead = errors.New("invalid order key head")

	// ErrOrderViolation is returned when both bounds are given and a >= b.
	ErrOrderViolation = errors.New("order violation")

	// ErrIntegerSpaceExhausted is returned when the integer part cannot be
	// incremented or decremented any further.
	ErrIntegerSpaceExhausted = errors.New("integer space exhausted")

	// ErrInvalidAlphabet is returned by NewAlphabet.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrBucketMismatch is returned when two lexoranks from different
	// buckets are used as bounds.
	ErrBucketMismatch = errors.New("lexorank bucket mismatch")

	// ErrInvalidRank is returned by ParseLexorank.
	ErrInvalidRank = errors.New("invalid lexorank")
)

// Error carries a descriptive message together with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func invalidKey(key string) error {
	return newError(ErrInvalidKey, "invalid order key: %s", key)
}
