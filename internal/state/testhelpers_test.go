package state

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
)

// newMemState builds a state over in-memory file entries rooted at /test.
func newMemState(names ...string) *AppState {
	entries := make([]FileEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, FileEntry{
			Name:     name,
			FullPath: filepath.Join("/test", name),
			Kind:     fsutil.KindFile,
		})
	}
	state := NewAppState("/test", "/")
	state.LastReadPath = "/test"
	state.Entries = entries
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	state.reorder()
	return state
}

type mutatorCall struct {
	op           string
	path         string
	name         string
	confirmation string
}

type fakeMutator struct {
	mu    sync.Mutex
	calls []mutatorCall
}

func (m *fakeMutator) Create(parent, name string) {
	m.record(mutatorCall{op: "create", path: parent, name: name})
}

func (m *fakeMutator) Rename(original, newName string) {
	m.record(mutatorCall{op: "rename", path: original, name: newName})
}

func (m *fakeMutator) Delete(path, confirmation string) bool {
	m.record(mutatorCall{op: "delete", path: path, confirmation: confirmation})
	return confirmation == "y"
}

func (m *fakeMutator) record(c mutatorCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

func (m *fakeMutator) all() []mutatorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mutatorCall(nil), m.calls...)
}

func mustReduce(t *testing.T, r *StateReducer, state *AppState, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		if _, err := r.Reduce(state, a); err != nil {
			t.Fatalf("Reduce(%T) failed: %v", a, err)
		}
	}
}

func mustTick(t *testing.T, r *StateReducer, state *AppState) {
	t.Helper()
	if err := r.Tick(state, time.Now()); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

func typeText(text string) []Action {
	actions := make([]Action, 0, len(text))
	for _, ch := range text {
		actions = append(actions, BufferCharAction{Char: ch})
	}
	return actions
}

func displayNames(state *AppState) []string {
	names := make([]string, 0, len(state.Display))
	for _, r := range state.Display {
		names = append(names, r.Entry.Name)
	}
	return names
}

// canonicalTempDir returns a temp dir with symlinks resolved, matching what
// Tick stores in CurrentPath.
func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	return dir
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func selectName(t *testing.T, state *AppState, name string) {
	t.Helper()
	for idx, r := range state.Display {
		if r.Entry.Name == name {
			state.SelectedIndex = idx
			return
		}
	}
	t.Fatalf("%q not in display %v", name, displayNames(state))
}
