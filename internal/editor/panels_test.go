package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/linestorm/internal/layout"
)

func TestSplitCurrentSharesBuffer(t *testing.T) {
	s := newTestState(t, "shared")
	body := s.CurrentName()
	id := s.CurrentPanel().BufferID

	name, err := s.SplitCurrent(layout.Up, 5, "")
	if err != nil {
		t.Fatalf("SplitCurrent: %v", err)
	}
	if !strings.HasPrefix(name, "panel-") {
		t.Errorf("new panel name = %q, want panel- prefix", name)
	}
	if s.CurrentName() != name {
		t.Errorf("focus = %q, want new panel %q", s.CurrentName(), name)
	}

	p, f := s.CurrentPanelWithFrame()
	if p.BufferID != id {
		t.Errorf("new panel views %v, want %v", p.BufferID, id)
	}
	if want := (layout.Frame{X: 0, Y: 0, Width: 80, Height: 5}); f != want {
		t.Errorf("new panel frame = %v, want %v", f, want)
	}
	_, bodyFrame, _ := layout.Lookup(s.Root(), s.Frame(), body)
	if want := (layout.Frame{X: 0, Y: 5, Width: 80, Height: 18}); bodyFrame != want {
		t.Errorf("body frame = %v, want %v", bodyFrame, want)
	}
	if refs := s.Registry().Refs(id); refs != 2 {
		t.Errorf("Refs = %d, want 2", refs)
	}

	// Edits through one panel are visible through the other.
	s.InsertRune('!')
	if got := s.Registry().MustGet(id).Text(); got != "!shared" {
		t.Errorf("shared text = %q, want %q", got, "!shared")
	}

	if err := s.CloseCurrent(); err != nil {
		t.Fatalf("CloseCurrent: %v", err)
	}
	if s.CurrentName() != body {
		t.Errorf("focus after close = %q, want %q", s.CurrentName(), body)
	}
	if refs := s.Registry().Refs(id); refs != 1 {
		t.Errorf("Refs after close = %d, want 1", refs)
	}
	_, bodyFrame, _ = layout.Lookup(s.Root(), s.Frame(), body)
	if want := (layout.Frame{X: 0, Y: 0, Width: 80, Height: 23}); bodyFrame != want {
		t.Errorf("body frame after close = %v, want %v", bodyFrame, want)
	}
}

func TestSplitCurrentWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(path, []byte("other\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestState(t, "main")

	if _, err := s.SplitCurrent(layout.Left, 30, path); err != nil {
		t.Fatalf("SplitCurrent: %v", err)
	}
	if got := s.CurrentBuffer().Text(); got != "other" {
		t.Errorf("new panel text = %q, want %q", got, "other")
	}
	if got := s.CurrentPanel().Path; got != path {
		t.Errorf("new panel path = %q, want %q", got, path)
	}
	if got := s.Registry().Len(); got != 4 {
		t.Errorf("Registry().Len() = %d, want 4", got)
	}

	if err := s.CloseCurrent(); err != nil {
		t.Fatalf("CloseCurrent: %v", err)
	}
	if got := s.Registry().Len(); got != 3 {
		t.Errorf("Registry().Len() after close = %d, want 3", got)
	}
}

func TestSplitCurrentErrors(t *testing.T) {
	tests := []struct {
		name      string
		dir       layout.Direction
		thickness int
		path      string
		want      error
	}{
		{"zero thickness", layout.Up, 0, "", ErrInvalidThickness},
		{"full height", layout.Down, 23, "", ErrInvalidThickness},
		{"wider than frame", layout.Right, 81, "", ErrInvalidThickness},
		{"missing file", layout.Up, 3, filepath.Join(t.TempDir(), "nope"), os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, "x")
			before := layout.Names(s.Root())
			_, err := s.SplitCurrent(tt.dir, tt.thickness, tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("SplitCurrent error = %v, want %v", err, tt.want)
			}
			if diff := cmp.Diff(before, layout.Names(s.Root())); diff != "" {
				t.Errorf("layout changed on error (-want +got):\n%s", diff)
			}
			if got := s.Registry().Len(); got != 3 {
				t.Errorf("Registry().Len() = %d, want 3", got)
			}
		})
	}
}

func TestCloseLastPanel(t *testing.T) {
	s := newTestState(t, "x")
	if err := s.CloseCurrent(); !errors.Is(err, layout.ErrLastPanel) {
		t.Errorf("CloseCurrent() error = %v, want ErrLastPanel", err)
	}
}

func TestFocusNext(t *testing.T) {
	s := newTestState(t, "x")
	body := s.CurrentName()
	if got := s.FocusNext(); got != body {
		t.Errorf("FocusNext with one panel = %q, want %q", got, body)
	}

	a, _ := s.SplitCurrent(layout.Up, 5, "")
	b, _ := s.SplitCurrent(layout.Left, 10, "")

	want := []string{b, a, body}
	if diff := cmp.Diff(want, s.BodyPanels()); diff != "" {
		t.Fatalf("BodyPanels mismatch (-want +got):\n%s", diff)
	}

	var got []string
	for range 3 {
		got = append(got, s.FocusNext())
	}
	if diff := cmp.Diff([]string{a, body, b}, got); diff != "" {
		t.Errorf("focus order mismatch (-want +got):\n%s", diff)
	}
}
