package app

import (
	"runtime/debug"

	"github.com/dshills/linestorm/internal/layout"
	"github.com/dshills/linestorm/internal/renderer/backend"
)

// Interrupt payloads posted into the event loop from other goroutines.
type (
	reloadConfig struct{}
	quitRequest  struct{}
)

// Run draws the editor and processes events until the user quits or the
// terminal closes. A panic inside the loop is recovered and returned as
// a *RecoveredPanicError; the caller should still call Shutdown.
func (app *Application) Run() error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	return app.guard(app.loop)
}

// RequestQuit asks the event loop to exit. It is safe to call from any
// goroutine, such as a signal handler.
func (app *Application) RequestQuit() error {
	return app.backend.PostInterrupt(quitRequest{})
}

func (app *Application) loop() {
	app.redraw()
	for !app.editor.IsQuit() {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return
		}
		app.handleEvent(ev)
		app.redraw()
	}
	app.logger.Info("quit")
}

// guard runs fn, converting a panic into an error.
func (app *Application) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("recovered: %v", perr)
			err = perr
		}
	}()
	fn()
	return nil
}

// handleEvent processes one backend event.
func (app *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		app.modes.Handle(app.editor, ev.Key)
		app.editor.ClampCursor()

	case backend.EventResize:
		app.editor.ClampAll()
		if err := layout.Validate(app.editor.Root(), app.editor.Frame()); err != nil {
			app.logger.WithComponent("layout").Warn("resize to %dx%d: %v", ev.Width, ev.Height, err)
		}

	case backend.EventInterrupt:
		switch ev.Data.(type) {
		case reloadConfig:
			app.reloadConfig()
		case quitRequest:
			app.editor.Quit()
		}
	}
}

func (app *Application) redraw() {
	app.backend.Draw(app.composer.Compose(app.editor))
}
