package state

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func runLine(t *testing.T, reducer *StateReducer, state *AppState, line string) {
	t.Helper()
	mustReduce(t, reducer, state, CommandStartAction{})
	mustReduce(t, reducer, state, typeText(line)...)
	mustReduce(t, reducer, state, ExecuteAction{})
}

func TestCommandModeFilters(t *testing.T) {
	state := newMemState("main.go", "README.md", "go.mod")
	reducer := NewStateReducer(ReducerOptions{})

	mustReduce(t, reducer, state, CommandStartAction{})
	mustReduce(t, reducer, state, typeText("md")...)

	if got := displayNames(state); !reflect.DeepEqual(got, []string{"README.md", "go.mod"}) && !reflect.DeepEqual(got, []string{"go.mod", "README.md"}) {
		t.Errorf("Command mode should fuzzy-filter, got %v", got)
	}
}

func TestCommandCd(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	runLine(t, reducer, state, "cd /tmp")

	if state.CurrentPath != "/tmp" {
		t.Errorf("Expected /tmp, got %s", state.CurrentPath)
	}
	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Command should return to Browse, got %T", state.Mode)
	}
}

func TestCommandCdExpandsHome(t *testing.T) {
	orig := userHomeDirFn
	t.Cleanup(func() { userHomeDirFn = orig })
	userHomeDirFn = func() (string, error) { return "/home/someone", nil }

	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	runLine(t, reducer, state, "cd ~/projects")

	if want := filepath.Join("/home/someone", "projects"); state.CurrentPath != want {
		t.Errorf("Expected %s, got %s", want, state.CurrentPath)
	}
}

func TestCommandCdHomeFailure(t *testing.T) {
	orig := userHomeDirFn
	t.Cleanup(func() { userHomeDirFn = orig })
	userHomeDirFn = func() (string, error) { return "", errors.New("no home") }

	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	runLine(t, reducer, state, "cd ~")

	if state.CurrentPath != "/test" {
		t.Errorf("Path should not change, got %s", state.CurrentPath)
	}
	if n, ok := state.LatestNotification(); !ok || !n.IsError() {
		t.Errorf("Expected an error notification, got %+v", n)
	}
}

func TestCommandMkdirAndTouch(t *testing.T) {
	state := newMemState("a")
	mut := &fakeMutator{}
	reducer := NewStateReducer(ReducerOptions{Mutator: mut})

	runLine(t, reducer, state, "mkdir build")
	runLine(t, reducer, state, "touch notes.txt")

	want := []mutatorCall{
		{op: "create", path: "/test", name: "build" + string(filepath.Separator)},
		{op: "create", path: "/test", name: "notes.txt"},
	}
	if got := mut.all(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestCommandMissingArgument(t *testing.T) {
	for _, line := range []string{"cd", "mkdir", "touch"} {
		t.Run(line, func(t *testing.T) {
			state := newMemState("a")
			mut := &fakeMutator{}
			reducer := NewStateReducer(ReducerOptions{Mutator: mut})

			runLine(t, reducer, state, line)

			if n, ok := state.LatestNotification(); !ok || !n.IsError() {
				t.Errorf("Expected an error notification, got %+v", n)
			}
			if len(mut.all()) != 0 {
				t.Error("Nothing should be dispatched")
			}
		})
	}
}

func TestCommandQuit(t *testing.T) {
	for _, line := range []string{"q", "quit"} {
		state := newMemState("a")
		reducer := NewStateReducer(ReducerOptions{})

		runLine(t, reducer, state, line)

		if !state.QuitRequested {
			t.Errorf("%q should request quit", line)
		}
	}
}

func TestCommandHiddenToggles(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	runLine(t, reducer, state, "hidden")

	if !reducer.Reader().HideDotfile {
		t.Error("hidden should toggle dotfile hiding on")
	}
	if state.LastReadPath != "" {
		t.Error("hidden should force a full re-read")
	}
}

func TestUnknownCommand(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	runLine(t, reducer, state, "frobnicate now")

	n, ok := state.LatestNotification()
	if !ok || !n.IsError() || n.Err.Error() != "unknown command: frobnicate" {
		t.Errorf("Expected unknown command error, got %+v", n)
	}
}

func TestEmptyCommandIsNoop(t *testing.T) {
	state := newMemState("a")
	reducer := NewStateReducer(ReducerOptions{})

	runLine(t, reducer, state, "   ")

	if _, ok := state.LatestNotification(); ok {
		t.Error("Empty command should not notify")
	}
	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Expected Browse, got %T", state.Mode)
	}
}
