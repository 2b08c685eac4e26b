package mutation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Op names a filesystem mutation.
type Op string

const (
	OpCreate Op = "create"
	OpRename Op = "rename"
	OpDelete Op = "delete"
)

var (
	ErrIO             = errors.New("filesystem operation failed")
	ErrInvalidRequest = errors.New("invalid request")
)

// IoError is the failure of a mutation against the filesystem.
type IoError struct {
	Op   Op
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

func (e *IoError) Is(target error) bool { return target == ErrIO }

// Request describes one mutation before it is dispatched.
//
// Path is the parent directory for OpCreate, the source for OpRename and the
// target for OpDelete. Name is the new entry name for OpCreate and OpRename.
type Request struct {
	Op           Op
	Path         string
	Name         string
	Confirmation string
}

// Validate checks the request shape; it does not touch the filesystem.
func (r Request) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Op, validation.Required, validation.In(OpCreate, OpRename, OpDelete)),
		validation.Field(&r.Path, validation.Required, validation.By(noNUL)),
		validation.Field(&r.Name,
			validation.When(r.Op == OpCreate || r.Op == OpRename,
				validation.Required, validation.By(noNUL), validation.By(notDotName)),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Confirmed reports whether a delete confirmation accepts the deletion.
func Confirmed(confirmation string) bool {
	return strings.EqualFold(strings.TrimSpace(confirmation), "y")
}

func noNUL(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsRune(s, 0) {
		return errors.New("must not contain NUL bytes")
	}
	return nil
}

func notDotName(value interface{}) error {
	s, _ := value.(string)
	trimmed := strings.TrimRight(s, "/"+string(os.PathSeparator))
	if strings.TrimSpace(trimmed) == "" && s != "" {
		return errors.New("must name an entry")
	}
	if trimmed == "." || trimmed == ".." {
		return errors.New("must not be . or ..")
	}
	return nil
}
