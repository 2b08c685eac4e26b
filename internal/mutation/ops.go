package mutation

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDirName reports whether a create name asks for a directory, i.e. ends
// with a path separator.
func IsDirName(name string) bool {
	return strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(os.PathSeparator))
}

func resolveTarget(base, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(base, name)
}

// CreatePath creates name under parent: a directory tree when name ends in a
// separator, otherwise an empty file (parents included). Existing targets
// are a collision.
func CreatePath(parent, name string) (string, error) {
	target := resolveTarget(parent, name)
	if _, err := os.Lstat(target); err == nil {
		return target, &IoError{Op: OpCreate, Path: target, Err: os.ErrExist}
	}

	if IsDirName(name) {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return target, &IoError{Op: OpCreate, Path: target, Err: err}
		}
		return target, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return target, &IoError{Op: OpCreate, Path: target, Err: err}
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return target, &IoError{Op: OpCreate, Path: target, Err: err}
	}
	if err := f.Close(); err != nil {
		return target, &IoError{Op: OpCreate, Path: target, Err: err}
	}
	return target, nil
}

// RenamePath renames original to newName. A relative newName stays in the
// original's directory; an absolute one is used as is. An existing
// destination is never overwritten.
func RenamePath(original, newName string) (string, error) {
	target := resolveTarget(filepath.Dir(original), newName)
	if target == filepath.Clean(original) {
		return target, nil
	}
	if _, err := os.Lstat(target); err == nil {
		return target, &IoError{Op: OpRename, Path: target, Err: os.ErrExist}
	}
	if err := os.Rename(original, target); err != nil {
		return target, &IoError{Op: OpRename, Path: original, Err: err}
	}
	return target, nil
}

// DeletePath removes path, recursively for directories. Symlinks are
// removed, never followed.
func DeletePath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &IoError{Op: OpDelete, Path: path, Err: err}
	}
	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return &IoError{Op: OpDelete, Path: path, Err: err}
	}
	return nil
}
