//go:build windows

package app

import "os"

// Windows consoles have no job control, so Ctrl-Z does nothing.

func contSignals() []os.Signal { return nil }

func (app *Application) suspendToShell() {
	app.log.Debugw("suspend ignored", "reason", "no job control")
}

func (app *Application) resumeAfterStop() bool { return false }
