package input

import (
	statepkg "github.com/YummyOreo/onyx/internal/state"
	"github.com/gdamore/tcell/v2"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() statepkg.Mode {
	if ih.state == nil || ih.state.Mode == nil {
		return statepkg.BrowseMode{}
	}
	return ih.state.Mode
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if statepkg.AcceptsText(ih.mode()) {
		ih.processTextKey(ev)
		return true
	}
	return ih.processBrowseKey(ev)
}

// processTextKey handles keys while a prompt or live search owns the keyboard.
func (ih *InputHandler) processTextKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.EscapeAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ExecuteAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.BufferBackspaceAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.BufferCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processBrowseKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.EscapeAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}
	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case 'k':
			ih.actionChan <- statepkg.NavigateUpAction{}
		case 'j':
			ih.actionChan <- statepkg.NavigateDownAction{}
		case 'h':
			ih.actionChan <- statepkg.GoUpAction{}
		case 'l':
			ih.actionChan <- statepkg.EnterDirectoryAction{}
		case '/':
			ih.actionChan <- statepkg.SearchStartAction{}
		case ':':
			ih.actionChan <- statepkg.CommandStartAction{}
		case 'c':
			ih.actionChan <- statepkg.CreateFileStartAction{}
		case 'r':
			ih.actionChan <- statepkg.RenameFileStartAction{}
		case 'd':
			ih.actionChan <- statepkg.DeleteFileStartAction{}
		case '.':
			ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
		}
	}
	return true
}
