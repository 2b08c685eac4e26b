package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// Matcher decides whether a name should be left out of a listing.
type Matcher interface {
	Match(name string) bool
}

// Reader lists directories. The zero value lists everything.
type Reader struct {
	Hide        Matcher
	HideDotfile bool
}

// ReadResult is the outcome of ReadWithFallback: either Read or FallBack.
type ReadResult interface {
	isReadResult()
}

// Read carries the entries of the requested path.
type Read struct {
	Entries []Entry
}

// FallBack carries the fallback listing together with the reason the
// requested path could not be read.
type FallBack struct {
	Err     error
	Path    string
	Entries []Entry
}

func (Read) isReadResult()     {}
func (FallBack) isReadResult() {}

// Read lists one directory, non-recursively, in name order.
func (r *Reader) Read(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, &NotReadableError{Path: path, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		fullPath := filepath.Join(path, name)
		if ShouldHideFromListing(fullPath, name) || r.hidden(fullPath, name) {
			continue
		}

		entry, err := NewEntry(path, d)
		if err != nil {
			// Removed between listing and stat: no longer a child.
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, &NotReadableError{Path: path, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadWithFallback reads path and, if that fails, reads fallback instead.
// The second failure is fatal and reported as a FatalReadError.
func (r *Reader) ReadWithFallback(path, fallback string) (ReadResult, error) {
	entries, err := r.Read(path)
	if err == nil {
		return Read{Entries: entries}, nil
	}

	fallbackEntries, fallbackErr := r.Read(fallback)
	if fallbackErr != nil {
		return nil, &FatalReadError{
			Path:        path,
			Fallback:    fallback,
			Err:         err,
			FallbackErr: fallbackErr,
		}
	}
	return FallBack{Err: err, Path: fallback, Entries: fallbackEntries}, nil
}

func (r *Reader) hidden(fullPath, name string) bool {
	if r == nil {
		return false
	}
	if r.HideDotfile && IsHidden(fullPath, name) {
		return true
	}
	return r.Hide != nil && r.Hide.Match(name)
}
