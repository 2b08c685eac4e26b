package fs

import (
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies an entry by its own file type, without following symlinks.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry represents a single file or directory on disk.
type Entry struct {
	Name     string
	FullPath string
	Kind     Kind
	Size     int64
	Modified time.Time
	Mode     os.FileMode
}

// NewEntry builds an Entry for a directory entry returned by listing dir.
func NewEntry(dir string, d os.DirEntry) (Entry, error) {
	info, err := d.Info()
	if err != nil {
		return Entry{}, err
	}

	rawName := d.Name()
	return Entry{
		Name:     norm.NFC.String(rawName),
		FullPath: filepath.Join(dir, rawName),
		Kind:     kindOf(info.Mode()),
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
	}, nil
}

func kindOf(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// IsDir reports whether the entry is a directory, following symlinks.
// A symlink whose target cannot be resolved yields a ResolutionError.
func (e Entry) IsDir() (bool, error) {
	switch e.Kind {
	case KindDirectory:
		return true, nil
	case KindSymlink:
		info, err := e.resolve()
		if err != nil {
			return false, err
		}
		return info.IsDir(), nil
	default:
		return false, nil
	}
}

// IsFile reports whether the entry is a regular file, following symlinks.
func (e Entry) IsFile() (bool, error) {
	switch e.Kind {
	case KindFile:
		return true, nil
	case KindSymlink:
		info, err := e.resolve()
		if err != nil {
			return false, err
		}
		return info.Mode().IsRegular(), nil
	default:
		return false, nil
	}
}

// Canonical returns the absolute path of the entry with every symlink
// evaluated. It fails if the entry or its target no longer exists.
func (e Entry) Canonical() (string, error) {
	return Canonicalize(e.FullPath)
}

// SymlinkTarget returns the canonical target of a symlink entry, or "" for
// anything else.
func (e Entry) SymlinkTarget() (string, error) {
	if e.Kind != KindSymlink {
		return "", nil
	}
	return e.Canonical()
}

func (e Entry) resolve() (os.FileInfo, error) {
	target, err := e.Canonical()
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil, &ResolutionError{Path: e.FullPath, Err: err}
	}
	return info, nil
}

// Canonicalize makes path absolute and evaluates symlinks.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &ResolutionError{Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &ResolutionError{Path: path, Err: err}
	}
	return resolved, nil
}
