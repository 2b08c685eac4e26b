package app

import (
	"fmt"
	"os"
	"time"

	"github.com/YummyOreo/onyx/internal/config"
	fsutil "github.com/YummyOreo/onyx/internal/fs"
	"github.com/YummyOreo/onyx/internal/logging"
	"github.com/YummyOreo/onyx/internal/mutation"
	statepkg "github.com/YummyOreo/onyx/internal/state"
	inputui "github.com/YummyOreo/onyx/internal/ui/input"
	renderui "github.com/YummyOreo/onyx/internal/ui/render"
	"github.com/YummyOreo/onyx/internal/watch"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options configures NewApplication.
type Options struct {
	// StartPath is listed first. Unreadable paths go through the fallback.
	StartPath string
	Config    config.Config
	Logger    logrus.FieldLogger
	// Screen overrides the terminal, mainly for tests.
	Screen tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.AppState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	executor *mutation.Executor
	watcher  *watch.Watcher
	log      logrus.FieldLogger
	// actionCh carries results posted from other goroutines; inputCh carries
	// actions from key and resize events and is drained after every event.
	actionCh chan statepkg.Action
	inputCh  chan statepkg.Action

	tickInterval    time.Duration
	shutdownTimeout time.Duration
	shouldQuit      bool
	watchFailed     string
}

// NewApplication initializes the screen and wires the state, reducer,
// mutation executor and directory watcher together.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg.TickInterval <= 0 {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	hide, err := fsutil.CompileGlobs(cfg.Listing.Hide)
	if err != nil {
		return nil, err
	}

	fallback := cfg.Listing.Fallback
	if fallback == "" {
		if fallback, err = GetCwd(); err != nil {
			return nil, err
		}
	}
	start := opts.StartPath
	if start == "" {
		start = "."
	}

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}

	app := &Application{
		screen:          screen,
		log:             log,
		actionCh:        make(chan statepkg.Action, 64),
		inputCh:         make(chan statepkg.Action, 4),
		tickInterval:    cfg.TickInterval,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	app.executor = mutation.NewExecutor(func(res mutation.Result) {
		app.dispatch(statepkg.MutationResultAction{Result: res})
	}, log)

	reader := &fsutil.Reader{HideDotfile: cfg.Listing.HideDotfiles}
	if len(hide.Patterns()) > 0 {
		reader.Hide = hide
	}
	app.reducer = statepkg.NewStateReducer(statepkg.ReducerOptions{
		Reader:          reader,
		Mutator:         app.executor,
		Logger:          log,
		NotificationTTL: cfg.NotificationTTL,
	})

	app.state = statepkg.NewAppState(start, fallback)
	app.state.ScreenWidth, app.state.ScreenHeight = screen.Size()

	app.renderer = renderui.NewRenderer(screen)
	app.input = inputui.NewInputHandler(app.inputCh)
	app.input.SetState(app.state)

	if w, err := watch.New(log); err != nil {
		// Ticks still refresh the listing without a watcher.
		log.WithError(err).Warn("directory watcher unavailable")
	} else {
		app.watcher = w
	}

	log.WithFields(logrus.Fields{
		"start":    start,
		"fallback": fallback,
		"tick":     cfg.TickInterval,
		"hide":     hide.Patterns(),
	}).Info("onyx started")
	return app, nil
}

// dispatch posts an action to the loop without blocking the caller.
func (app *Application) dispatch(action statepkg.Action) {
	select {
	case app.actionCh <- action:
	default:
		go func() { app.actionCh <- action }()
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}

// State exposes the current state snapshot.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// CurrentPath returns the directory being browsed.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
