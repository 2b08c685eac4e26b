package input

import (
	"fmt"
	"testing"

	statepkg "github.com/YummyOreo/onyx/internal/state"
	"github.com/gdamore/tcell/v2"
)

func emit(t *testing.T, mode statepkg.Mode, ev *tcell.EventKey) (statepkg.Action, bool) {
	t.Helper()
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.AppState{Mode: mode})

	cont := handler.ProcessEvent(ev)

	select {
	case action := <-actionChan:
		return action, cont
	default:
		return nil, cont
	}
}

func TestBrowseKeyBindings(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'k', 0), statepkg.NavigateUpAction{}},
		{tcell.NewEventKey(tcell.KeyUp, 0, 0), statepkg.NavigateUpAction{}},
		{tcell.NewEventKey(tcell.KeyRune, 'j', 0), statepkg.NavigateDownAction{}},
		{tcell.NewEventKey(tcell.KeyDown, 0, 0), statepkg.NavigateDownAction{}},
		{tcell.NewEventKey(tcell.KeyRune, 'h', 0), statepkg.GoUpAction{}},
		{tcell.NewEventKey(tcell.KeyLeft, 0, 0), statepkg.GoUpAction{}},
		{tcell.NewEventKey(tcell.KeyRune, 'l', 0), statepkg.EnterDirectoryAction{}},
		{tcell.NewEventKey(tcell.KeyRight, 0, 0), statepkg.EnterDirectoryAction{}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, 0), statepkg.EnterDirectoryAction{}},
		{tcell.NewEventKey(tcell.KeyRune, '/', 0), statepkg.SearchStartAction{}},
		{tcell.NewEventKey(tcell.KeyRune, ':', 0), statepkg.CommandStartAction{}},
		{tcell.NewEventKey(tcell.KeyRune, 'c', 0), statepkg.CreateFileStartAction{}},
		{tcell.NewEventKey(tcell.KeyRune, 'r', 0), statepkg.RenameFileStartAction{}},
		{tcell.NewEventKey(tcell.KeyRune, 'd', 0), statepkg.DeleteFileStartAction{}},
		{tcell.NewEventKey(tcell.KeyRune, '.', 0), statepkg.ToggleHiddenFilesAction{}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, 0), statepkg.EscapeAction{}},
	}

	for _, mode := range []statepkg.Mode{statepkg.BrowseMode{}, statepkg.EscapedSearchMode{Query: "x"}} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%T/%s", mode, tt.ev.Name()), func(t *testing.T) {
				got, cont := emit(t, mode, tt.ev)
				if got != tt.want {
					t.Fatalf("Expected %T, got %T", tt.want, got)
				}
				if !cont {
					t.Error("Navigation keys should not stop the loop")
				}
			})
		}
	}
}

func TestQuitKeys(t *testing.T) {
	got, cont := emit(t, statepkg.BrowseMode{}, tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if _, ok := got.(statepkg.QuitAction); !ok || cont {
		t.Errorf("q in Browse should quit, got %T (cont=%v)", got, cont)
	}

	for _, mode := range []statepkg.Mode{statepkg.BrowseMode{}, statepkg.SearchMode{}, statepkg.DeleteFileMode{}} {
		got, cont := emit(t, mode, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
		if _, ok := got.(statepkg.QuitAction); !ok || cont {
			t.Errorf("Ctrl+C in %T should quit, got %T", mode, got)
		}
	}
}

func TestTextModesCaptureRunes(t *testing.T) {
	modes := []statepkg.Mode{
		statepkg.SearchMode{},
		statepkg.CommandMode{},
		statepkg.CreateFileMode{},
		statepkg.RenameFileMode{},
		statepkg.DeleteFileMode{},
	}
	for _, mode := range modes {
		t.Run(fmt.Sprintf("%T", mode), func(t *testing.T) {
			// q, j and d are ordinary text here.
			for _, r := range []rune{'q', 'j', 'd', 'ü'} {
				got, cont := emit(t, mode, tcell.NewEventKey(tcell.KeyRune, r, 0))
				if got != (statepkg.BufferCharAction{Char: r}) {
					t.Errorf("Expected BufferCharAction{%q}, got %#v", r, got)
				}
				if !cont {
					t.Errorf("Typing %q should not stop the loop", r)
				}
			}
		})
	}
}

func TestTextModeSpecialKeys(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), statepkg.BufferBackspaceAction{}},
		{tcell.NewEventKey(tcell.KeyBackspace, 0, 0), statepkg.BufferBackspaceAction{}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, 0), statepkg.ExecuteAction{}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, 0), statepkg.EscapeAction{}},
		{tcell.NewEventKey(tcell.KeyUp, 0, 0), statepkg.NavigateUpAction{}},
		{tcell.NewEventKey(tcell.KeyDown, 0, 0), statepkg.NavigateDownAction{}},
	}
	for _, tt := range tests {
		got, _ := emit(t, statepkg.SearchMode{Query: "a"}, tt.ev)
		if got != tt.want {
			t.Errorf("%s: expected %T, got %T", tt.ev.Name(), tt.want, got)
		}
	}

	// Left and right have no meaning inside a prompt.
	if got, _ := emit(t, statepkg.CreateFileMode{}, tcell.NewEventKey(tcell.KeyLeft, 0, 0)); got != nil {
		t.Errorf("Left in a prompt should be ignored, got %T", got)
	}
}

func TestResizeEvent(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventResize(100, 30))

	action := <-actionChan
	if action != (statepkg.ResizeAction{Width: 100, Height: 30}) {
		t.Errorf("Expected ResizeAction{100 30}, got %#v", action)
	}
}

func TestNilStateActsAsBrowse(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'j', 0))

	if _, ok := (<-actionChan).(statepkg.NavigateDownAction); !ok {
		t.Error("Handler without state should treat keys as Browse")
	}
}
