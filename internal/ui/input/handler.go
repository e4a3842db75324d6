package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input. Printable keys always edit the
// query, so commands live on control and function keys.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	helpVisible := ih.state != nil && ih.state.HelpVisible
	queryEmpty := ih.state == nil || ih.state.FilterQuery == ""

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape, tcell.KeyF1:
			ih.actionChan <- statepkg.HelpHideAction{}
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
			return true
		default:
			return true
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if queryEmpty {
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
		ih.actionChan <- statepkg.FilterResetQueryAction{}
		return true

	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.AcceptAction{}
		return true

	case tcell.KeyUp, tcell.KeyCtrlP:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case tcell.KeyDown, tcell.KeyCtrlN:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
		return true

	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		ih.actionChan <- statepkg.FilterBackspaceAction{}
		return true

	case tcell.KeyCtrlW:
		ih.actionChan <- statepkg.FilterDeleteWordAction{}
		return true

	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.FilterResetQueryAction{}
		return true

	case tcell.KeyCtrlY:
		ih.actionChan <- statepkg.YankAction{}
		return true

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyF1:
		ih.actionChan <- statepkg.HelpToggleAction{}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch r {
			case 'h', 'H':
				ih.actionChan <- statepkg.FilterBackspaceAction{}
			case 'w', 'W':
				ih.actionChan <- statepkg.FilterDeleteWordAction{}
			case 'u', 'U':
				ih.actionChan <- statepkg.FilterResetQueryAction{}
			}
			return true
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return true
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
			r = unicode.ToUpper(r)
		}
		ih.actionChan <- statepkg.FilterCharAction{Char: r}
		return true

	default:
		return true
	}
}
