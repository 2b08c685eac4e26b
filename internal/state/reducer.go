package state

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
	"github.com/YummyOreo/onyx/internal/mutation"
	"github.com/YummyOreo/onyx/internal/notify"
	"github.com/sirupsen/logrus"
)

// Mutator runs filesystem mutations without blocking the caller.
type Mutator interface {
	Create(parent, name string)
	Rename(original, newName string)
	Delete(path, confirmation string) bool
}

// ReducerOptions configures a StateReducer. Zero values get defaults.
type ReducerOptions struct {
	Reader          *fsutil.Reader
	Mutator         Mutator
	Logger          logrus.FieldLogger
	NotificationTTL time.Duration
}

// StateReducer handles all state mutations
type StateReducer struct {
	reader  *fsutil.Reader
	mutator Mutator
	log     logrus.FieldLogger
	ttl     time.Duration
}

// NewStateReducer creates a new reducer
func NewStateReducer(opts ReducerOptions) *StateReducer {
	r := &StateReducer{
		reader:  opts.Reader,
		mutator: opts.Mutator,
		log:     opts.Logger,
		ttl:     opts.NotificationTTL,
	}
	if r.reader == nil {
		r.reader = &fsutil.Reader{}
	}
	if r.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		r.log = silent
	}
	if r.ttl <= 0 {
		r.ttl = notify.DefaultTTL
	}
	return r
}

// Reader exposes the directory reader so commands can toggle hiding.
func (r *StateReducer) Reader() *fsutil.Reader {
	return r.reader
}

// Reduce applies an action to the state.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {
	case NavigateUpAction:
		r.moveSelection(state, -1)
	case NavigateDownAction:
		r.moveSelection(state, 1)
	case EnterDirectoryAction:
		r.enterDirectory(state)
	case GoUpAction:
		r.goUp(state)
	case GoToPathAction:
		r.navigateTo(state, a.Path)

	case SearchStartAction:
		// Reopening a frozen search resumes editing its query.
		query := ""
		if m, ok := state.mode().(EscapedSearchMode); ok {
			query = m.Query
		}
		state.setMode(SearchMode{Query: query})
	case CommandStartAction:
		state.setMode(CommandMode{})
	case CreateFileStartAction:
		state.setMode(CreateFileMode{})
	case RenameFileStartAction:
		if cur := state.CurrentEntry(); cur != nil {
			path := cur.Entry.FullPath
			state.setMode(RenameFileMode{Target: path, Buffer: path})
		}
	case DeleteFileStartAction:
		if cur := state.CurrentEntry(); cur != nil {
			state.setMode(DeleteFileMode{Target: cur.Entry.FullPath})
		}

	case BufferCharAction:
		r.editBuffer(state, appendRune(state.mode(), a.Char))
	case BufferBackspaceAction:
		r.editBuffer(state, removeRune(state.mode()))
	case ExecuteAction:
		r.execute(state)
	case EscapeAction:
		r.escape(state)

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
	case ToggleHiddenFilesAction:
		r.toggleHidden(state)

	case MutationResultAction:
		r.mutationDone(state, a.Result)

	case QuitAction:
		state.QuitRequested = true

	default:
		return state, fmt.Errorf("unknown action type: %T", action)
	}
	return state, nil
}

func (r *StateReducer) moveSelection(state *AppState, delta int) {
	if len(state.Display) == 0 {
		state.SelectedIndex = 0
		return
	}
	state.SelectedIndex += delta
	state.clampSelection()
}

func (r *StateReducer) enterDirectory(state *AppState) {
	cur := state.CurrentEntry()
	if cur == nil {
		return
	}
	entry := cur.Entry
	isDir, err := entry.IsDir()
	if err != nil {
		r.notifyError(state, err)
		return
	}
	if !isDir {
		return
	}
	// The entry may have vanished since the listing was taken.
	if _, err := entry.Canonical(); err != nil {
		r.notifyError(state, err)
		return
	}
	r.changeDirectory(state, entry.FullPath, "")
}

func (r *StateReducer) goUp(state *AppState) {
	current := filepath.Clean(state.CurrentPath)
	parent := filepath.Dir(current)
	if parent == current {
		return
	}
	r.changeDirectory(state, parent, filepath.Base(current))
}

func (r *StateReducer) navigateTo(state *AppState, path string) {
	if path == "" {
		return
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(state.CurrentPath, path)
	}
	r.changeDirectory(state, filepath.Clean(path), "")
}

// changeDirectory points the state at path. The listing arrives on the next
// tick through the fallback read.
func (r *StateReducer) changeDirectory(state *AppState, path, selectName string) {
	state.Mode = BrowseMode{}
	state.CurrentPath = path
	state.Entries = nil
	state.Display = nil
	state.SelectedIndex = 0
	state.ScrollOffset = 0
	state.selectAfterLoad = selectName
	r.log.WithField("path", path).Debug("navigate")
}

func (r *StateReducer) editBuffer(state *AppState, m Mode) {
	switch m.(type) {
	case SearchMode, CommandMode:
		// Query changed; re-rank and start from the best match.
		state.Mode = m
		state.reorder()
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		state.clampSelection()
	default:
		state.Mode = m
	}
}

func (r *StateReducer) execute(state *AppState) {
	switch m := state.mode().(type) {
	case SearchMode:
		state.setMode(EscapedSearchMode{Query: m.Query})
	case CommandMode:
		// Leave command mode first so commands that navigate keep their mode.
		state.setMode(BrowseMode{})
		r.runCommand(state, m.Query)
	case CreateFileMode:
		state.setMode(BrowseMode{})
		if r.mutator != nil {
			r.mutator.Create(state.CurrentPath, m.Buffer)
		}
	case RenameFileMode:
		state.setMode(BrowseMode{})
		if r.mutator != nil {
			r.mutator.Rename(m.Target, m.Buffer)
		}
	case DeleteFileMode:
		state.setMode(BrowseMode{})
		if r.mutator != nil {
			r.mutator.Delete(m.Target, m.Buffer)
		}
	case EscapedSearchMode, BrowseMode:
		r.enterDirectory(state)
	}
}

func (r *StateReducer) escape(state *AppState) {
	switch m := state.mode().(type) {
	case SearchMode:
		state.setMode(EscapedSearchMode{Query: m.Query})
	case BrowseMode:
	default:
		state.setMode(BrowseMode{})
	}
}

func (r *StateReducer) toggleHidden(state *AppState) {
	r.reader.HideDotfile = !r.reader.HideDotfile
	if r.reader.HideDotfile {
		r.notifyMessage(state, "hiding dotfiles")
	} else {
		r.notifyMessage(state, "showing dotfiles")
	}
	// Force a full read so the change shows on the next tick.
	state.LastReadPath = ""
}

func (r *StateReducer) mutationDone(state *AppState, res mutation.Result) {
	if res.Err != nil {
		r.notifyError(state, res.Err)
		return
	}
	r.notifyMessage(state, res.Message())

	if res.Request.Op == mutation.OpDelete || res.Target == "" {
		return
	}
	if filepath.Dir(filepath.Clean(res.Target)) == filepath.Clean(state.CurrentPath) {
		state.selectAfterLoad = filepath.Base(res.Target)
	}
}

func (r *StateReducer) notifyError(state *AppState, err error) {
	if err == nil {
		return
	}
	r.log.WithError(err).Warn("notification")
	state.queue().Error(err)
}

func (r *StateReducer) notifyMessage(state *AppState, text string) {
	r.log.WithField("text", text).Info("notification")
	state.queue().Message(text)
}
