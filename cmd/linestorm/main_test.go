package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/linestorm/internal/app"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOK   bool
		wantCode int
		wantPath string
		wantOut  string
		wantErr  string
	}{
		{name: "file", args: []string{"notes.txt"}, wantOK: true, wantPath: "notes.txt"},
		{name: "flags and file", args: []string{"-config", "c.toml", "-log-level", "debug", "a.rs"}, wantOK: true, wantPath: "a.rs"},
		{name: "no file", args: nil, wantCode: exitUsage, wantErr: "Usage: linestorm"},
		{name: "two files", args: []string{"a", "b"}, wantCode: exitUsage, wantErr: "Usage: linestorm"},
		{name: "bad level", args: []string{"-log-level", "loud", "a"}, wantCode: exitUsage, wantErr: "invalid log level"},
		{name: "unknown flag", args: []string{"-nope", "a"}, wantCode: exitUsage, wantErr: "flag provided but not defined"},
		{name: "version", args: []string{"-version"}, wantCode: exitOK, wantOut: "linestorm dev"},
		{name: "help", args: []string{"-h"}, wantCode: exitOK, wantErr: "Usage: linestorm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			opts, code, ok := parseFlags(tt.args, &stdout, &stderr)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (stderr: %s)", ok, tt.wantOK, stderr.String())
			}
			if !ok && code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if ok && opts.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", opts.Path, tt.wantPath)
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LINESTORM_LOG_FILE", "")
	args := []string{"-config", filepath.Join(dir, "none.toml"), filepath.Join(dir, "missing.txt")}

	var stdout, stderr bytes.Buffer
	if code := run(args, &stdout, &stderr); code != exitFailure {
		t.Errorf("run() = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), "open ") {
		t.Errorf("stderr = %q, want open error", stderr.String())
	}
}

func TestReportRunError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "clean exit", err: nil, wantCode: exitOK},
		{name: "loop error", err: errors.New("poll failed"), wantCode: exitFailure, wantErr: "linestorm: poll failed"},
		{
			name:     "recovered panic",
			err:      app.NewRecoveredPanicError("boom", ""),
			wantCode: exitInternal,
			wantErr:  "internal error: panic: boom",
		},
		{
			name:     "wrapped panic",
			err:      fmt.Errorf("run: %w", app.NewRecoveredPanicError("boom", "")),
			wantCode: exitInternal,
			wantErr:  "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := reportRunError(tt.err, &stderr); got != tt.wantCode {
				t.Errorf("reportRunError() = %d, want %d", got, tt.wantCode)
			}
			if tt.wantErr == "" && stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestExitCodesDistinct(t *testing.T) {
	codes := map[int]string{}
	for name, code := range map[string]int{
		"ok": exitOK, "failure": exitFailure, "usage": exitUsage, "internal": exitInternal,
	} {
		if other, dup := codes[code]; dup {
			t.Errorf("exit code %d used for both %s and %s", code, other, name)
		}
		codes[code] = name
	}
}
