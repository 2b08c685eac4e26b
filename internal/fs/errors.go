package fs

import (
	"errors"
	"fmt"
)

var (
	ErrNotReadable = errors.New("directory not readable")
	ErrResolution  = errors.New("path not resolvable")
	ErrFatalRead   = errors.New("fallback directory not readable")
)

// NotReadableError is returned when a directory cannot be listed.
type NotReadableError struct {
	Path string
	Err  error
}

func (e *NotReadableError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *NotReadableError) Unwrap() error { return e.Err }

func (e *NotReadableError) Is(target error) bool { return target == ErrNotReadable }

// ResolutionError is returned when a symlink target or a path cannot be
// canonicalized.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

// FatalReadError means both the requested path and its fallback failed to
// read. The browser cannot continue without a listing.
type FatalReadError struct {
	Path        string
	Fallback    string
	Err         error
	FallbackErr error
}

func (e *FatalReadError) Error() string {
	return fmt.Sprintf("cannot read %s (%v) and fallback %s failed: %v", e.Path, e.Err, e.Fallback, e.FallbackErr)
}

func (e *FatalReadError) Unwrap() []error { return []error{e.Err, e.FallbackErr} }

func (e *FatalReadError) Is(target error) bool { return target == ErrFatalRead }
