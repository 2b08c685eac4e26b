package app

import (
	"os"
	"os/signal"
	"time"

	statepkg "github.com/YummyOreo/onyx/internal/state"
	"github.com/gdamore/tcell/v2"
)

// Run drives the browser until the user quits. Each pass refreshes the
// listing, renders, then waits for one input event, background result or
// directory change, bounded by the tick interval. The only error returned
// is a fatal read, which ends the session.
func (app *Application) Run() error {
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var watchCh <-chan struct{}
	if app.watcher != nil {
		watchCh = app.watcher.Changes()
	}

	timer := time.NewTimer(app.tickInterval)
	defer timer.Stop()

	for !app.shouldQuit {
		if err := app.reducer.Tick(app.state, time.Now()); err != nil {
			app.log.WithError(err).Error("cannot list any directory")
			return err
		}
		app.state.PendingMutations = app.executor.Pending()
		app.syncWatcher()
		app.renderer.Render(app.state)

		resetTimer(timer, app.tickInterval)
		select {
		case ev := <-eventChan:
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		case <-watchCh:
		case <-timer.C:
		case <-sigContCh:
			app.resumeAfterStop()
		}

		app.processActions()
		if app.state.QuitRequested {
			app.shouldQuit = true
		}
	}

	app.shutdown()
	return nil
}

// shutdown waits for in-flight mutations up to the shutdown timeout.
func (app *Application) shutdown() {
	pending := app.executor.Pending()
	if pending == 0 {
		return
	}
	app.log.WithField("pending", pending).Info("waiting for mutations before exit")
	if !app.executor.Wait(app.shutdownTimeout) {
		app.log.WithField("pending", app.executor.Pending()).Warn("exiting with unfinished mutations")
	}
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}

// syncWatcher points the watcher at the directory that was just listed.
func (app *Application) syncWatcher() {
	if app.watcher == nil {
		return
	}
	dir := app.state.LastReadPath
	if dir == "" || dir == app.watcher.Dir() || dir == app.watchFailed {
		return
	}
	if err := app.watcher.Watch(dir); err != nil {
		app.watchFailed = dir
		app.log.WithError(err).Warn("cannot watch directory")
		return
	}
	app.watchFailed = ""
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlZ {
			app.suspendToShell()
			app.resumeAfterStop()
			return
		}
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		app.screen.Sync()
		app.input.ProcessEvent(ev)
	}
}

// processActions applies the input actions of the last event first, then any
// posted results.
func (app *Application) processActions() {
	for {
		select {
		case action := <-app.inputCh:
			app.handleAction(action)
			continue
		default:
		}
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithError(err).Error("reduce failed")
	}
}
