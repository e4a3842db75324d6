package app

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var commandBuilder = exec.Command

// handleClipboard pipes the selected item's name into the clipboard command.
func (app *Application) handleClipboard() bool {
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		return false
	}
	item := app.state.CurrentItem()
	if item == nil {
		return false
	}

	cmd := commandBuilder(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(item.Name)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		app.state.LastError = fmt.Errorf("%s: %w", app.clipboardCmd[0], err)
		app.log.Warnw("clipboard command failed",
			"cmd", app.clipboardCmd[0],
			"err", err,
			"stderr", strings.TrimSpace(stderr.String()),
		)
		return true
	}

	app.state.LastError = nil
	app.state.LastYankTime = time.Now()
	app.log.Debugw("yanked selection", "source", item.Source)
	return true
}
