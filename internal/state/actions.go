package state

import "github.com/YummyOreo/onyx/internal/mutation"

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}
type GoToPathAction struct {
	Path string
}

// ===== MODE ACTIONS =====

type SearchStartAction struct{}
type CommandStartAction struct{}
type CreateFileStartAction struct{}
type RenameFileStartAction struct{}
type DeleteFileStartAction struct{}

// ===== BUFFER ACTIONS =====

type BufferCharAction struct {
	Char rune
}
type BufferBackspaceAction struct{}
type ExecuteAction struct{}
type EscapeAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}

// ===== BACKGROUND RESULTS =====

// MutationResultAction carries a finished mutation back into the loop.
type MutationResultAction struct {
	Result mutation.Result
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
