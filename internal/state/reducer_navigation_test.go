package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
	"github.com/YummyOreo/onyx/internal/notify"
)

// ===== NAVIGATION TESTS =====

func TestNavigateDown(t *testing.T) {
	state := newMemState("file1.txt", "file2.txt", "file3.txt")
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, NavigateDownAction{})

	if state.SelectedIndex != 1 {
		t.Errorf("Expected selected=1, got %d", state.SelectedIndex)
	}
}

func TestNavigateDownAtEnd(t *testing.T) {
	state := newMemState("file1.txt", "file2.txt")
	state.SelectedIndex = 1
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, NavigateDownAction{})

	if state.SelectedIndex != 1 {
		t.Errorf("Should stay at 1, got %d", state.SelectedIndex)
	}
}

func TestNavigateUpAtStart(t *testing.T) {
	state := newMemState("file1.txt", "file2.txt")
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, NavigateUpAction{}, NavigateUpAction{})

	if state.SelectedIndex != 0 {
		t.Errorf("Should stay at 0, got %d", state.SelectedIndex)
	}
}

func TestNavigateOnEmptyListing(t *testing.T) {
	state := newMemState()
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, NavigateDownAction{}, NavigateUpAction{}, EnterDirectoryAction{})

	if state.SelectedIndex != 0 {
		t.Errorf("Empty listing must keep selection at 0, got %d", state.SelectedIndex)
	}
	if state.CurrentEntry() != nil {
		t.Error("Empty listing should have no current entry")
	}
}

func TestScrollFollowsSelection(t *testing.T) {
	names := make([]string, 50)
	for i := range names {
		names[i] = string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	state := newMemState(names...)
	state.ScreenHeight = 12 // 10 visible lines
	reducer := NewStateReducer(ReducerOptions{})

	for i := 0; i < 15; i++ {
		mustReduce(t, reducer, state, NavigateDownAction{})
	}

	if state.SelectedIndex != 15 {
		t.Fatalf("Expected selected=15, got %d", state.SelectedIndex)
	}
	if state.SelectedIndex < state.ScrollOffset || state.SelectedIndex >= state.ScrollOffset+10 {
		t.Errorf("Selection %d outside viewport starting at %d", state.SelectedIndex, state.ScrollOffset)
	}
}

func TestResizeUpdatesDimensions(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, ResizeAction{Width: 120, Height: 40})

	if state.ScreenWidth != 120 || state.ScreenHeight != 40 {
		t.Errorf("Expected 120x40, got %dx%d", state.ScreenWidth, state.ScreenHeight)
	}
}

func TestEnterDirectoryAndGoUp(t *testing.T) {
	root := canonicalTempDir(t)
	mkdirAll(t, filepath.Join(root, "alpha"))
	mkdirAll(t, filepath.Join(root, "beta"))
	touch(t, filepath.Join(root, "beta", "inside.txt"))

	reducer := NewStateReducer(ReducerOptions{})
	state := NewAppState(root, root)
	mustTick(t, reducer, state)

	selectName(t, state, "beta")
	mustReduce(t, reducer, state, EnterDirectoryAction{})
	if state.CurrentPath != filepath.Join(root, "beta") {
		t.Fatalf("Expected to enter beta, at %s", state.CurrentPath)
	}
	if state.SelectedIndex != 0 {
		t.Errorf("Entering a directory resets selection, got %d", state.SelectedIndex)
	}

	mustTick(t, reducer, state)
	if got := displayNames(state); len(got) != 1 || got[0] != "inside.txt" {
		t.Fatalf("Unexpected listing %v", got)
	}

	mustReduce(t, reducer, state, GoUpAction{})
	mustTick(t, reducer, state)

	if state.CurrentPath != root {
		t.Fatalf("Expected to be back at %s, got %s", root, state.CurrentPath)
	}
	if cur := state.CurrentEntry(); cur == nil || cur.Entry.Name != "beta" {
		t.Errorf("GoUp should select the directory we came from, got %+v", cur)
	}
}

func TestEnterDirectoryIgnoresFiles(t *testing.T) {
	root := canonicalTempDir(t)
	touch(t, filepath.Join(root, "plain.txt"))

	reducer := NewStateReducer(ReducerOptions{})
	state := NewAppState(root, root)
	mustTick(t, reducer, state)

	mustReduce(t, reducer, state, EnterDirectoryAction{})

	if state.CurrentPath != root {
		t.Errorf("Entering a file must not navigate, at %s", state.CurrentPath)
	}
	if _, ok := state.LatestNotification(); ok {
		t.Error("Entering a file should not notify")
	}
}

func TestEnterDeletedDirectoryNotifies(t *testing.T) {
	root := canonicalTempDir(t)
	mkdirAll(t, filepath.Join(root, "gone"))
	touch(t, filepath.Join(root, "stay.txt"))

	reducer := NewStateReducer(ReducerOptions{})
	state := NewAppState(root, root)
	mustTick(t, reducer, state)
	selectName(t, state, "gone")
	before := state.SelectedIndex

	if err := os.Remove(filepath.Join(root, "gone")); err != nil {
		t.Fatal(err)
	}
	mustReduce(t, reducer, state, EnterDirectoryAction{})

	if state.CurrentPath != root {
		t.Errorf("Path should not change, got %s", state.CurrentPath)
	}
	if state.SelectedIndex != before {
		t.Errorf("Selection should not change: %d -> %d", before, state.SelectedIndex)
	}
	n, ok := state.LatestNotification()
	if !ok || n.Kind != notify.KindError {
		t.Fatalf("Expected an error notification, got %+v (ok=%v)", n, ok)
	}
	if !errors.Is(n.Err, fsutil.ErrResolution) {
		t.Errorf("Expected a resolution error, got %v", n.Err)
	}
}

func TestGoUpAtRootStays(t *testing.T) {
	root := string(filepath.Separator)
	state := NewAppState(root, root)
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, GoUpAction{})

	if state.CurrentPath != root {
		t.Errorf("GoUp at root should stay, got %s", state.CurrentPath)
	}
}

func TestGoToRelativePath(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, GoToPathAction{Path: "sub/dir"})

	if want := filepath.Join("/test", "sub", "dir"); state.CurrentPath != want {
		t.Errorf("Expected %s, got %s", want, state.CurrentPath)
	}
}

func TestQuitAction(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, QuitAction{})

	if !state.QuitRequested {
		t.Error("QuitAction should request quit")
	}
}

func TestUnknownActionFails(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	if _, err := reducer.Reduce(state, struct{}{}); err == nil {
		t.Error("Expected an error for an unknown action")
	}
}
