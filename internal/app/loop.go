package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

const (
	doubleClickThreshold = 300 * time.Millisecond
	flashDuration        = 100 * time.Millisecond
)

// Run drives the event loop until the user accepts or quits.
func (app *Application) Run() {
	defer app.screen.Fini()
	defer flushPendingInput()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	quitEvents := make(chan struct{})
	defer close(quitEvents)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quitEvents:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var flashTimer *time.Timer
	var flashCh <-chan time.Time

	for !app.done() {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		if app.shouldAnimate() && flashCh == nil {
			flashTimer = time.NewTimer(flashDuration)
			flashCh = flashTimer.C
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-flashCh:
			flashCh = nil
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	if flashTimer != nil {
		flashTimer.Stop()
	}
}

func (app *Application) done() bool {
	return app.shouldQuit || app.state.Quit
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventMouse:
		return app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// handleMouse maps primary clicks on list rows to selection, a double click
// accepts, and the wheel moves the selection.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.actionCh <- statepkg.NavigateUpAction{}
		return true
	case buttons&tcell.WheelDown != 0:
		app.actionCh <- statepkg.NavigateDownAction{}
		return true
	case buttons&tcell.Button1 == 0:
		return false
	}

	_, y := ev.Position()
	listStartY := 1
	if y < listStartY || y >= listStartY+app.state.VisibleLines() {
		return false
	}
	displayIdx := app.state.ScrollOffset + y - listStartY
	if displayIdx >= len(app.state.Items) {
		return false
	}

	doubleClick := app.lastClickRow == displayIdx && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickRow = displayIdx
	app.lastClickTime = time.Now()

	app.actionCh <- statepkg.MouseSelectAction{DisplayIndex: displayIdx}
	if doubleClick {
		app.actionCh <- statepkg.AcceptAction{}
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) shouldAnimate() bool {
	if app.state == nil || app.state.LastYankTime.IsZero() {
		return false
	}
	return time.Since(app.state.LastYankTime) < flashDuration
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.YankAction:
		return app.handleClipboard()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.log.Warnw("action failed", "action", action, "err", err)
	}
	return true
}
