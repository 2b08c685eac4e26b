// Package mutation runs create, rename and delete operations off the UI
// loop and reports each outcome as a Result.
package mutation

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result is posted once per dispatched request.
type Result struct {
	Request Request
	// Target is the path that was created, renamed to or deleted.
	Target string
	Err    error
}

// Message describes a successful result for the info line.
func (r Result) Message() string {
	switch r.Request.Op {
	case OpCreate:
		return fmt.Sprintf("created %s", filepath.Base(r.Target))
	case OpRename:
		return fmt.Sprintf("renamed %s to %s", filepath.Base(r.Request.Path), filepath.Base(r.Target))
	case OpDelete:
		return fmt.Sprintf("deleted %s", filepath.Base(r.Target))
	default:
		return string(r.Request.Op)
	}
}

// Sink receives results. It is called from worker goroutines.
type Sink func(Result)

// Executor dispatches mutations without blocking the caller.
type Executor struct {
	group   errgroup.Group
	sink    Sink
	log     logrus.FieldLogger
	pending atomic.Int64
}

// NewExecutor returns an executor posting results to sink.
func NewExecutor(sink Sink, log logrus.FieldLogger) *Executor {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Executor{sink: sink, log: log}
}

// Create dispatches creation of name under parent.
func (e *Executor) Create(parent, name string) {
	e.Submit(Request{Op: OpCreate, Path: parent, Name: name})
}

// Rename dispatches renaming original to newName.
func (e *Executor) Rename(original, newName string) {
	e.Submit(Request{Op: OpRename, Path: original, Name: newName})
}

// Delete dispatches deletion of path when confirmation is "y" (any case).
// Any other confirmation aborts silently; the return value reports whether
// anything was dispatched.
func (e *Executor) Delete(path, confirmation string) bool {
	if !Confirmed(confirmation) {
		e.log.WithField("path", path).Debug("delete aborted")
		return false
	}
	e.Submit(Request{Op: OpDelete, Path: path, Confirmation: confirmation})
	return true
}

// Submit validates req and runs it on a worker goroutine. Validation
// failures are posted like any other result.
func (e *Executor) Submit(req Request) {
	if err := req.Validate(); err != nil {
		e.post(Result{Request: req, Err: err})
		return
	}

	e.pending.Add(1)
	e.group.Go(func() error {
		defer e.pending.Add(-1)
		e.post(run(req))
		return nil
	})
}

// Pending returns the number of mutations still running.
func (e *Executor) Pending() int {
	return int(e.pending.Load())
}

// Wait blocks until in-flight mutations finish or timeout elapses, and
// reports whether they all finished. A non-positive timeout waits forever.
func (e *Executor) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		_ = e.group.Wait()
		close(done)
	}()
	if timeout <= 0 {
		<-done
		return true
	}
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		e.log.WithField("pending", e.Pending()).Warn("abandoning unfinished mutations")
		return false
	}
}

func run(req Request) Result {
	res := Result{Request: req}
	switch req.Op {
	case OpCreate:
		res.Target, res.Err = CreatePath(req.Path, req.Name)
	case OpRename:
		res.Target, res.Err = RenamePath(req.Path, req.Name)
	case OpDelete:
		res.Target = req.Path
		res.Err = DeletePath(req.Path)
	}
	return res
}

func (e *Executor) post(res Result) {
	entry := e.log.WithFields(logrus.Fields{
		"op":   res.Request.Op,
		"path": res.Request.Path,
	})
	if res.Err != nil {
		entry.WithError(res.Err).Warn("mutation failed")
	} else {
		entry.WithField("target", res.Target).Info("mutation completed")
	}
	if e.sink != nil {
		e.sink(res)
	}
}
