package state

import (
	"path/filepath"
	"time"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
	"github.com/sirupsen/logrus"
)

// Tick refreshes the listing, re-applies the active filter, clamps the
// selection and drops expired notifications. The only error it returns is
// a FatalReadError, which ends the session.
func (r *StateReducer) Tick(state *AppState, now time.Time) error {
	if err := r.refresh(state); err != nil {
		return err
	}
	state.reorder()
	state.clampSelection()
	state.applySelectAfterLoad()
	state.queue().Purge(now, r.ttl)
	return nil
}

func (r *StateReducer) refresh(state *AppState) error {
	if state.LastReadPath != "" && state.CurrentPath == state.LastReadPath {
		entries, err := r.reader.Read(state.CurrentPath)
		if err != nil {
			// Keep the stale listing; the next tick recovers through the fallback.
			r.notifyError(state, err)
			state.LastReadPath = ""
			return nil
		}
		state.Entries = entries
		return nil
	}

	fallback := state.LastReadPath
	if fallback == "" {
		fallback = state.FallbackPath
	}
	if fallback == "" {
		fallback = "."
	}

	target := absPath(state.CurrentPath)
	res, err := r.reader.ReadWithFallback(target, absPath(fallback))
	if err != nil {
		r.log.WithError(err).Error("fallback read failed")
		return err
	}

	switch res := res.(type) {
	case fsutil.Read:
		state.CurrentPath = canonicalPath(target)
		state.Entries = res.Entries
	case fsutil.FallBack:
		r.notifyError(state, res.Err)
		state.CurrentPath = canonicalPath(res.Path)
		state.Entries = res.Entries
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		state.selectAfterLoad = ""
	}
	state.LastReadPath = state.CurrentPath

	r.log.WithFields(logrus.Fields{
		"path":    state.CurrentPath,
		"entries": len(state.Entries),
	}).Debug("directory loaded")
	return nil
}

// canonicalPath resolves symlinks in a path that was just read. A path that
// cannot be resolved is kept as read.
func canonicalPath(path string) string {
	if resolved, err := fsutil.Canonicalize(path); err == nil {
		return resolved
	}
	return path
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
