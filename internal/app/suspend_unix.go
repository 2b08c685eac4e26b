//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

// contSignals are watched so the screen is restored when a shell resumes
// the process with fg, including stops that did not come from Ctrl+Z.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell hands the terminal back and stops the process (Ctrl+Z).
func (app *Application) suspendToShell() {
	if err := app.screen.Suspend(); err != nil {
		app.log.WithError(err).Warn("suspend failed")
		return
	}
	// Stop only this process so job control in the parent shell keeps working.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	app.log.Debug("resumed after stop")
	return true
}
