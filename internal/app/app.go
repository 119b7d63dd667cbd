// Package app wires linestorm's components together and runs the
// single-threaded event loop: poll, dispatch, clamp, compose, draw.
package app

import (
	"io"

	"github.com/dshills/linestorm/internal/config"
	"github.com/dshills/linestorm/internal/config/watcher"
	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/input/mode"
	"github.com/dshills/linestorm/internal/plugin/lua"
	"github.com/dshills/linestorm/internal/renderer"
	"github.com/dshills/linestorm/internal/renderer/backend"
	"github.com/dshills/linestorm/internal/renderer/highlight"
)

// Backend is the terminal the application draws on and reads from.
// *backend.Terminal implements it.
type Backend interface {
	Init() error
	Shutdown()
	Size() (width, height int)
	PollEvent() backend.Event
	PostInterrupt(data any) error
	Draw(views []renderer.View)
	Styles() backend.Styles
	SetStyles(s backend.Styles)
}

// Options configures the application.
type Options struct {
	// Path is the file to edit.
	Path string

	// ConfigPath is the configuration file. Empty means config.DefaultPath().
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Backend replaces the real terminal, for tests.
	Backend Backend

	// Env replaces os.LookupEnv for configuration overrides, for tests.
	Env func(string) (string, bool)
}

// Application is the central coordinator for all linestorm components.
type Application struct {
	opts Options

	config     *config.Config
	configPath string
	logger     *Logger
	logFile    io.Closer

	backend  Backend
	editor   *editor.State
	modes    *mode.Manager
	scripts  *lua.Host
	watcher  *watcher.Watcher
	composer *renderer.Composer

	keywords    *highlight.Keywords
	classifiers map[string]highlight.Classifier

	running bool
	closed  bool
}

// New creates and bootstraps an application. On error every component
// started so far has been stopped.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:        opts,
		logger:      NullLogger(),
		classifiers: make(map[string]highlight.Classifier),
	}
	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Editor returns the editor state.
func (app *Application) Editor() *editor.State {
	return app.editor
}

// Modes returns the mode manager.
func (app *Application) Modes() *mode.Manager {
	return app.modes
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Shutdown stops every component and restores the terminal. It is safe
// to call more than once.
func (app *Application) Shutdown() error {
	if app.closed {
		return nil
	}
	app.closed = true

	var errs ErrorList
	if app.watcher != nil {
		errs.Add(app.watcher.Close())
	}
	if app.scripts != nil {
		errs.Add(app.scripts.Close())
	}
	if app.backend != nil {
		app.backend.Shutdown()
	}
	if err := errs.AsError(); err != nil {
		app.logger.Warn("shutdown: %v", err)
	}
	app.logger.Info("shutdown complete")
	if app.logFile != nil {
		errs.Add(app.logFile.Close())
	}
	return errs.AsError()
}
