package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"verbose", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	tests := map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
		LogLevel(9):   "UNKNOWN",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn %d", 1)
	log.Error("error")

	out := buf.String()
	if strings.Contains(out, "debug") || strings.Contains(out, "info") {
		t.Errorf("messages below level were written:\n%s", out)
	}
	for _, want := range []string{"[WARN] test: warn 1\n", "[ERROR] test: error\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	log := base.WithComponent("mode").WithField("buffer", 3)

	log.Info("switched")
	base.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "[INFO] switched {buffer=3, component=mode}") {
		t.Errorf("line = %q, want sorted fields", lines[0])
	}
	if strings.Contains(lines[1], "{") {
		t.Errorf("parent logger gained fields: %q", lines[1])
	}
}

func TestNullLogger(t *testing.T) {
	log := NullLogger()
	log.Error("nowhere")
	log.WithComponent("x").Info("still nowhere")
}

func TestOpenLogFile(t *testing.T) {
	path := t.TempDir() + "/ls.log"
	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatal(err)
	}
	log := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f})
	log.Info("first")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	f, err = OpenLogFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f}).Info("second")

	data, err := readFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(data, "first") || !strings.Contains(data, "second") {
		t.Errorf("log file not appended:\n%s", data)
	}
}
