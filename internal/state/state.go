package state

import (
	"path/filepath"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
	"github.com/YummyOreo/onyx/internal/notify"
	search "github.com/YummyOreo/onyx/internal/search"
)

type FileEntry = fsutil.Entry
type Ranked = search.Ranked

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	CurrentPath  string
	LastReadPath string // Path whose listing Entries holds; "" forces a fallback read
	FallbackPath string // Used when there is no known-good path yet
	Entries      []FileEntry
	Display      []Ranked // Entries in display order for the active mode

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	Mode Mode

	Notifications *notify.Queue

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Pending mutations reported by the executor, shown in the info line
	PendingMutations int

	QuitRequested bool

	// Name to select once the next listing of CurrentPath arrives
	selectAfterLoad string
}

// NewAppState returns a state that will list path on its first tick.
func NewAppState(path, fallback string) *AppState {
	return &AppState{
		CurrentPath:   path,
		FallbackPath:  fallback,
		Mode:          BrowseMode{},
		Notifications: notify.NewQueue(),
	}
}

func (s *AppState) queue() *notify.Queue {
	if s.Notifications == nil {
		s.Notifications = notify.NewQueue()
	}
	return s.Notifications
}

func (s *AppState) mode() Mode {
	if s.Mode == nil {
		return BrowseMode{}
	}
	return s.Mode
}

// CurrentEntry returns the selected entry in display order, or nil.
func (s *AppState) CurrentEntry() *Ranked {
	if s.SelectedIndex >= 0 && s.SelectedIndex < len(s.Display) {
		return &s.Display[s.SelectedIndex]
	}
	return nil
}

// CurrentFilePath returns the selected entry's path, or the current directory.
func (s *AppState) CurrentFilePath() string {
	if e := s.CurrentEntry(); e != nil {
		return e.Entry.FullPath
	}
	return filepath.Clean(s.CurrentPath)
}

// LatestNotification returns the notification to show, if any.
func (s *AppState) LatestNotification() (notify.Notification, bool) {
	return s.queue().Latest()
}

func (s *AppState) reorder() {
	s.Display = search.Order(s.Entries, orderFor(s.mode()))
}

// clampSelection keeps 0 <= SelectedIndex < max(1, len(Display)).
func (s *AppState) clampSelection() {
	switch {
	case len(s.Display) == 0:
		s.SelectedIndex = 0
	case s.SelectedIndex >= len(s.Display):
		s.SelectedIndex = len(s.Display) - 1
	case s.SelectedIndex < 0:
		s.SelectedIndex = 0
	}
	s.updateScrollVisibility()
}

func (s *AppState) applySelectAfterLoad() {
	if s.selectAfterLoad == "" || s.LastReadPath != s.CurrentPath {
		return
	}
	name := s.selectAfterLoad
	s.selectAfterLoad = ""
	for idx, r := range s.Display {
		if r.Entry.Name == name {
			s.SelectedIndex = idx
			s.centerScrollOnSelection()
			return
		}
	}
}

// setMode switches modes and re-applies the filter bound to the new mode.
// Selection stays on the same entry when it survives the new ordering.
func (s *AppState) setMode(m Mode) {
	var prev *FileEntry
	if cur := s.CurrentEntry(); cur != nil {
		e := cur.Entry
		prev = &e
	}

	s.Mode = m
	s.reorder()

	if prev != nil {
		for idx, r := range s.Display {
			if r.Entry.FullPath == prev.FullPath {
				s.SelectedIndex = idx
				s.clampSelection()
				return
			}
		}
	}
	s.SelectedIndex = 0
	s.ScrollOffset = 0
	s.clampSelection()
}

func (s *AppState) visibleLines() int {
	// header + info line
	lines := s.ScreenHeight - 2
	if lines < 1 {
		lines = 1
	}
	return lines
}

func (s *AppState) updateScrollVisibility() {
	visibleLines := s.visibleLines()
	idx := s.SelectedIndex

	if idx < s.ScrollOffset {
		s.ScrollOffset = idx
	} else if idx >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = idx - visibleLines + 1
	}
	s.boundScroll(visibleLines)
}

func (s *AppState) centerScrollOnSelection() {
	visibleLines := s.visibleLines()
	s.ScrollOffset = s.SelectedIndex - visibleLines/2
	s.boundScroll(visibleLines)
}

func (s *AppState) boundScroll(visibleLines int) {
	maxOffset := len(s.Display) - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
