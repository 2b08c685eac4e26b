//go:build windows

package app

import "os"

// Windows has no job control: nothing to resume from and Ctrl+Z is ignored.
func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
