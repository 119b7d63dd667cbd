// Package main is the entry point for the linestorm editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/dshills/linestorm/internal/app"
	"github.com/dshills/linestorm/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitInternal = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	app.Options
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, ok := parseFlags(args, stdout, stderr)
	if !ok {
		return code
	}

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "linestorm: %v\n", err)
		return exitFailure
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			_ = application.RequestQuit()
		}
	}()

	runErr := application.Run()

	// Restore the terminal before printing anything.
	_ = application.Shutdown()

	return reportRunError(runErr, stderr)
}

// reportRunError prints err from the event loop and returns the exit code
// for it.
func reportRunError(err error, stderr io.Writer) int {
	var panicErr *app.RecoveredPanicError
	switch {
	case errors.As(err, &panicErr):
		fmt.Fprintf(stderr, "linestorm: internal error: %v\n", panicErr)
		return exitInternal
	case err != nil:
		fmt.Fprintf(stderr, "linestorm: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// parseFlags parses args. When ok is false the caller exits with code.
func parseFlags(args []string, stdout, stderr io.Writer) (opts cliOptions, code int, ok bool) {
	fs := flag.NewFlagSet("linestorm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "linestorm - a modal terminal line editor\n\n")
		fmt.Fprintf(stderr, "Usage: linestorm [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, exitOK, false
		}
		return opts, exitUsage, false
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "linestorm %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, exitOK, false
	}

	if opts.LogLevel != "" && !slices.Contains(config.Levels, opts.LogLevel) {
		fmt.Fprintf(stderr, "linestorm: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, exitUsage, false
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, exitUsage, false
	}
	opts.Path = fs.Arg(0)
	return opts, exitOK, true
}
