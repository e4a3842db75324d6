package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
	inputui "github.com/kk-code-lab/rpick/internal/ui/input"
	renderui "github.com/kk-code-lab/rpick/internal/ui/render"
	"go.uber.org/zap"
)

// Options tunes a picker session.
type Options struct {
	// Query is applied before the first frame.
	Query string
	// Clipboard overrides the detected copy command.
	Clipboard string
	Log       *zap.SugaredLogger
}

// Application represents the running app.
type Application struct {
	screen         tcell.Screen
	state          *statepkg.AppState
	reducer        *statepkg.StateReducer
	renderer       *renderui.Renderer
	input          *inputui.InputHandler
	actionCh       chan statepkg.Action
	shouldQuit     bool
	clipboardCmd   []string
	clipboardAvail bool
	log            *zap.SugaredLogger

	lastClickRow  int
	lastClickTime time.Time
}

// NewApplication opens the terminal and prepares a picker over engine.
func NewApplication(engine *statepkg.Engine, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	app, err := newApplication(screen, engine, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, engine *statepkg.Engine, opts Options) (*Application, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	clipboardCmd, clipboardAvail := detectClipboard(opts.Clipboard)

	state := statepkg.NewAppState(engine)
	state.ClipboardAvailable = clipboardAvail
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	if opts.Query != "" {
		if _, err := reducer.Reduce(state, statepkg.FilterSetQueryAction{Query: opts.Query}); err != nil {
			return nil, err
		}
	}

	log.Debugw("picker ready",
		"items", state.TotalCount(),
		"matches", state.MatchCount(),
		"clipboard", clipboardAvail,
	)

	return &Application{
		screen:         screen,
		state:          state,
		reducer:        reducer,
		renderer:       renderui.NewRenderer(screen),
		input:          inputHandler,
		actionCh:       actionCh,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
		log:            log,
		lastClickRow:   -1,
	}, nil
}

// Result returns the accepted item, if the user accepted one.
func (app *Application) Result() (statepkg.Item, bool) {
	if app.state.Accepted == nil {
		return statepkg.Item{}, false
	}
	return *app.state.Accepted, true
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}
