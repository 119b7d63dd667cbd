package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dshills/linestorm/internal/config"
	"github.com/dshills/linestorm/internal/config/loader"
	"github.com/dshills/linestorm/internal/config/watcher"
	"github.com/dshills/linestorm/internal/editor"
	"github.com/dshills/linestorm/internal/input/mode"
	"github.com/dshills/linestorm/internal/plugin/lua"
	"github.com/dshills/linestorm/internal/renderer"
	"github.com/dshills/linestorm/internal/renderer/backend"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	steps := []func() error{
		app.initConfig,
		app.initLogger,
		// Load the file before touching the terminal so a bad path is
		// reported on a normal screen.
		app.initEditor,
		app.initBackend,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	app.initScripting()
	if err := app.applyConfig(app.config); err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	app.initWatcher()
	app.runStartupScript()

	app.logger.Info("editing %s", app.opts.Path)
	return nil
}

func (app *Application) initConfig() error {
	app.configPath = app.opts.ConfigPath
	if app.configPath == "" {
		app.configPath = config.DefaultPath()
	}

	cfg, err := config.LoadWith(app.configPath, config.Options{Lookup: app.opts.Env})
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.config = cfg
	return nil
}

func (app *Application) initLogger() error {
	if app.config.Logging.File == "" {
		return nil
	}
	f, err := OpenLogFile(app.config.Logging.File)
	if err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.logFile = f
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(app.config.Logging.Level),
		Output: f,
		Prefix: "linestorm",
	})
	app.logger.Info("config loaded from %s", app.configPath)
	return nil
}

func (app *Application) initBackend() error {
	app.backend = app.opts.Backend
	if app.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: errors.Join(ErrNoBackend, err)}
		}
		app.backend = term
	}
	if err := app.backend.Init(); err != nil {
		// Nothing to restore.
		app.backend = nil
		return &InitError{Component: "terminal", Err: err}
	}
	return nil
}

// terminalScreen sizes the editor from the backend once it is started.
// Until then the screen is empty.
type terminalScreen struct {
	app *Application
}

func (s terminalScreen) Size() (int, int) {
	if s.app.backend == nil {
		return 0, 0
	}
	return s.app.backend.Size()
}

// initEditor loads the file into the default layout.
func (app *Application) initEditor() error {
	opts := editor.Options{
		LineNumbers: app.config.Editor.LineNumbers,
		Highlight:   app.config.Editor.Highlight,
	}
	st, err := editor.FromFile(app.opts.Path, terminalScreen{app}, opts)
	if err != nil {
		return NewOperationError("open", app.opts.Path, err)
	}
	app.editor = st

	app.modes = mode.NewManager()
	log := app.logger.WithComponent("mode")
	app.modes.OnChange(func(from, to *mode.Worker) {
		app.editor.SetModeName(to.Name())
		log.Debug("%s -> %s", from.Name(), to.Name())
	})
	app.editor.SetModeName(app.modes.CurrentName())

	app.composer = &renderer.Composer{Highlighter: app.classifier}
	return nil
}

func (app *Application) initScripting() {
	app.scripts = lua.NewHost(app.editor, app.modes)
}

// initWatcher starts watching the config file. The watcher goroutine
// only posts an interrupt; the reload itself runs on the event loop.
func (app *Application) initWatcher() {
	log := app.logger.WithComponent("watcher")
	if app.configPath == "" || !loader.Supported(app.configPath) {
		return
	}
	if _, err := os.Stat(filepath.Dir(app.configPath)); err != nil {
		log.Debug("not watching %s: %v", app.configPath, err)
		return
	}

	w, err := watcher.New(app.configPath)
	if err != nil {
		log.Warn("cannot watch %s: %v", app.configPath, err)
		return
	}
	w.OnChange(func(ev watcher.Event) {
		if err := app.backend.PostInterrupt(reloadConfig{}); err != nil {
			log.Warn("dropped %s event: %v", ev.Op, err)
		}
	})
	w.OnError(func(err error) {
		log.Warn("%v", err)
	})
	if err := w.Start(); err != nil {
		log.Warn("start: %v", err)
		_ = w.Close()
		return
	}
	app.watcher = w
	log.Debug("watching %s", w.Path())
}

func (app *Application) runStartupScript() {
	path := app.config.Editor.StartupScript
	if path == "" {
		return
	}
	if err := app.editor.RunScript(path); err != nil {
		app.editor.SetMessage("startup script: " + err.Error())
		app.logger.WithComponent("lua").Error("startup script %s: %v", path, err)
	}
}
