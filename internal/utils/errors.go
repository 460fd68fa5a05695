package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed download for reporting and exit status.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidURL
	ErrUnsupportedQuality
	ErrNetwork
	ErrVideoUnavailable
	ErrFileSystem
	ErrDependencyMissing
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidURL:
		return "invalid URL"
	case ErrUnsupportedQuality:
		return "unsupported quality"
	case ErrNetwork:
		return "network error"
	case ErrVideoUnavailable:
		return "video unavailable"
	case ErrFileSystem:
		return "filesystem error"
	case ErrDependencyMissing:
		return "dependency missing"
	}
	return "unknown error"
}

// FetchError pairs an ErrorKind with the underlying cause. It is the
// only error type surfaced to the CLI for failed jobs.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewError builds a FetchError with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *FetchError {
	return &FetchError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WrapError attaches a kind to an existing error, preserving it for
// errors.Is/As chains.
func WrapError(kind ErrorKind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

// KindOf extracts the ErrorKind from an error chain, ErrUnknown if the
// chain carries no FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ErrUnknown
}
