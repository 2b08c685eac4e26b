package state

import (
	search "github.com/YummyOreo/onyx/internal/search"
)

// Mode is the active input context. Exactly one is active at a time.
type Mode interface {
	isMode()
}

// BrowseMode is plain navigation.
type BrowseMode struct{}

// SearchMode fuzzy-filters entries by Query while it is typed.
type SearchMode struct {
	Query string
}

// EscapedSearchMode keeps the filter of a finished search visible while
// navigation keys work as in BrowseMode.
type EscapedSearchMode struct {
	Query string
}

// CommandMode filters like SearchMode and runs Query as a command on Enter.
type CommandMode struct {
	Query string
}

// CreateFileMode prompts for the name of a new file or directory.
type CreateFileMode struct {
	Buffer string
}

// RenameFileMode prompts for the new name of Target.
type RenameFileMode struct {
	Target string
	Buffer string
}

// DeleteFileMode asks for confirmation before deleting Target.
type DeleteFileMode struct {
	Target string
	Buffer string
}

func (BrowseMode) isMode()        {}
func (SearchMode) isMode()        {}
func (EscapedSearchMode) isMode() {}
func (CommandMode) isMode()       {}
func (CreateFileMode) isMode()    {}
func (RenameFileMode) isMode()    {}
func (DeleteFileMode) isMode()    {}

// AcceptsText reports whether runes typed in m go to its buffer.
func AcceptsText(m Mode) bool {
	switch m.(type) {
	case SearchMode, CommandMode, CreateFileMode, RenameFileMode, DeleteFileMode:
		return true
	default:
		return false
	}
}

// IsBrowsing reports whether navigation keys are live, which is the case in
// BrowseMode and in a frozen search.
func IsBrowsing(m Mode) bool {
	switch m.(type) {
	case nil, BrowseMode, EscapedSearchMode:
		return true
	default:
		return false
	}
}

// BufferOf returns the text buffer of m, if it has one.
func BufferOf(m Mode) (string, bool) {
	switch m := m.(type) {
	case SearchMode:
		return m.Query, true
	case EscapedSearchMode:
		return m.Query, true
	case CommandMode:
		return m.Query, true
	case CreateFileMode:
		return m.Buffer, true
	case RenameFileMode:
		return m.Buffer, true
	case DeleteFileMode:
		return m.Buffer, true
	default:
		return "", false
	}
}

// Title is the label shown next to the prompt for m.
func Title(m Mode) string {
	switch m.(type) {
	case SearchMode, EscapedSearchMode:
		return "/"
	case CommandMode:
		return ":"
	case CreateFileMode:
		return "Create file"
	case RenameFileMode:
		return "Rename"
	case DeleteFileMode:
		return "Delete? (y/N)"
	default:
		return ""
	}
}

func withBuffer(m Mode, buf string) Mode {
	switch m := m.(type) {
	case SearchMode:
		return SearchMode{Query: buf}
	case CommandMode:
		return CommandMode{Query: buf}
	case CreateFileMode:
		return CreateFileMode{Buffer: buf}
	case RenameFileMode:
		return RenameFileMode{Target: m.Target, Buffer: buf}
	case DeleteFileMode:
		return DeleteFileMode{Target: m.Target, Buffer: buf}
	default:
		return m
	}
}

func appendRune(m Mode, ch rune) Mode {
	if !AcceptsText(m) {
		return m
	}
	buf, _ := BufferOf(m)
	return withBuffer(m, buf+string(ch))
}

func removeRune(m Mode) Mode {
	if !AcceptsText(m) {
		return m
	}
	buf, _ := BufferOf(m)
	if buf == "" {
		return m
	}
	runes := []rune(buf)
	return withBuffer(m, string(runes[:len(runes)-1]))
}

// orderFor selects the filter strategy bound to m.
func orderFor(m Mode) search.Orderer {
	switch m := m.(type) {
	case SearchMode:
		return search.FuzzyOrder{Pattern: m.Query}
	case EscapedSearchMode:
		return search.FuzzyOrder{Pattern: m.Query}
	case CommandMode:
		return search.FuzzyOrder{Pattern: m.Query}
	default:
		return search.DefaultOrder{}
	}
}
