package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

func emit(t *testing.T, state *statepkg.AppState, ev tcell.Event) (statepkg.Action, bool) {
	t.Helper()
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(state)

	keepRunning := handler.ProcessEvent(ev)

	select {
	case action := <-actionChan:
		return action, keepRunning
	default:
		return nil, keepRunning
	}
}

func TestInputHandlerKeyBindings(t *testing.T) {
	tests := []struct {
		name   string
		event  *tcell.EventKey
		expect statepkg.Action
	}{
		{"enter accepts", tcell.NewEventKey(tcell.KeyEnter, 0, 0), statepkg.AcceptAction{}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, 0), statepkg.NavigateUpAction{}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, 0), statepkg.NavigateDownAction{}},
		{"ctrl-p", tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModCtrl), statepkg.NavigateUpAction{}},
		{"ctrl-n", tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl), statepkg.NavigateDownAction{}},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, 0), statepkg.ScrollPageUpAction{}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, 0), statepkg.ScrollPageDownAction{}},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, 0), statepkg.ScrollToStartAction{}},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, 0), statepkg.ScrollToEndAction{}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), statepkg.FilterBackspaceAction{}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, 0), statepkg.FilterBackspaceAction{}},
		{"ctrl-w", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), statepkg.FilterDeleteWordAction{}},
		{"ctrl-u", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), statepkg.FilterResetQueryAction{}},
		{"ctrl-y", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), statepkg.YankAction{}},
		{"ctrl-z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), statepkg.SuspendAction{}},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, 0), statepkg.HelpToggleAction{}},
		{"rune types", tcell.NewEventKey(tcell.KeyRune, 'g', 0), statepkg.FilterCharAction{Char: 'g'}},
		{"q types", tcell.NewEventKey(tcell.KeyRune, 'q', 0), statepkg.FilterCharAction{Char: 'q'}},
		{"question mark types", tcell.NewEventKey(tcell.KeyRune, '?', 0), statepkg.FilterCharAction{Char: '?'}},
		{"shift normalizes", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModShift), statepkg.FilterCharAction{Char: 'A'}},
		{"ctrl-h rune", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModCtrl), statepkg.FilterBackspaceAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &statepkg.AppState{FilterQuery: "foo"}
			action, keepRunning := emit(t, state, tt.event)
			if !keepRunning {
				t.Fatalf("%s should not end the session", tt.name)
			}
			if action != tt.expect {
				t.Fatalf("Expected %#v, got %#v", tt.expect, action)
			}
		})
	}
}

func TestInputHandlerEscapeResetsQueryFirst(t *testing.T) {
	state := &statepkg.AppState{FilterQuery: "foo"}
	action, keepRunning := emit(t, state, tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if _, ok := action.(statepkg.FilterResetQueryAction); !ok {
		t.Fatalf("Expected FilterResetQueryAction, got %T", action)
	}
	if !keepRunning {
		t.Fatal("Escape with a query should keep running")
	}
}

func TestInputHandlerEscapeQuitsOnEmptyQuery(t *testing.T) {
	state := &statepkg.AppState{}
	action, keepRunning := emit(t, state, tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if _, ok := action.(statepkg.QuitAction); !ok {
		t.Fatalf("Expected QuitAction, got %T", action)
	}
	if keepRunning {
		t.Fatal("Escape on empty query should end the session")
	}
}

func TestInputHandlerCtrlCQuits(t *testing.T) {
	for _, help := range []bool{false, true} {
		state := &statepkg.AppState{FilterQuery: "foo", HelpVisible: help}
		action, keepRunning := emit(t, state, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
		if _, ok := action.(statepkg.QuitAction); !ok {
			t.Fatalf("help=%v: Expected QuitAction, got %T", help, action)
		}
		if keepRunning {
			t.Fatalf("help=%v: Ctrl-C should end the session", help)
		}
	}
}

func TestEscapeHidesHelpBeforeQuitting(t *testing.T) {
	state := &statepkg.AppState{HelpVisible: true}
	action, keepRunning := emit(t, state, tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if _, ok := action.(statepkg.HelpHideAction); !ok {
		t.Fatalf("Expected HelpHideAction, got %T", action)
	}
	if !keepRunning {
		t.Fatal("Escape with help open should keep running")
	}
}

func TestHelpSwallowsTyping(t *testing.T) {
	state := &statepkg.AppState{HelpVisible: true}
	action, _ := emit(t, state, tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	if action != nil {
		t.Fatalf("Expected no action while help is visible, got %T", action)
	}

	action, _ = emit(t, state, tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if _, ok := action.(statepkg.HelpHideAction); !ok {
		t.Fatalf("Expected q to close help, got %T", action)
	}
}

func TestInputHandlerAltRuneIgnored(t *testing.T) {
	state := &statepkg.AppState{}
	action, keepRunning := emit(t, state, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	if action != nil || !keepRunning {
		t.Fatalf("Expected alt-rune to be ignored, got %T", action)
	}
}

func TestInputHandlerResize(t *testing.T) {
	state := &statepkg.AppState{}
	action, _ := emit(t, state, tcell.NewEventResize(100, 30))
	resize, ok := action.(statepkg.ResizeAction)
	if !ok {
		t.Fatalf("Expected ResizeAction, got %T", action)
	}
	if resize.Width != 100 || resize.Height != 30 {
		t.Fatalf("Unexpected size %dx%d", resize.Width, resize.Height)
	}
}
