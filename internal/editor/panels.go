package editor

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/linestorm/internal/engine/buffer"
	"github.com/dshills/linestorm/internal/engine/registry"
	"github.com/dshills/linestorm/internal/layout"
)

// SplitCurrent splits the focused panel. The new panel takes thickness
// cells on the dir side and receives focus. It views the file at path,
// or the focused panel's buffer when path is empty. It returns the new
// panel's name.
func (s *State) SplitCurrent(dir layout.Direction, thickness int, path string) (string, error) {
	p, f := s.CurrentPanelWithFrame()

	extent := f.Height
	if dir == layout.Left || dir == layout.Right {
		extent = f.Width
	}
	if thickness <= 0 || thickness >= extent {
		return "", fmt.Errorf("%w: %d not in (0, %d)", ErrInvalidThickness, thickness, extent)
	}

	id := p.BufferID
	if path != "" {
		buf, err := buffer.FromFile(path)
		if err != nil {
			return "", err
		}
		id = s.reg.Create(buf)
	}

	np := layout.NewPanel(id)
	np.Path = path
	if path == "" {
		np.Path = p.Path
	}
	np.LineNumbers = p.LineNumbers
	np.Highlight = p.Highlight

	name := "panel-" + uuid.NewString()
	if err := s.root.SplitLeaf(s.current, dir, thickness, name, np); err != nil {
		s.dropUnreferenced(id)
		return "", err
	}
	if err := s.reg.Retain(id); err != nil {
		panic(fmt.Sprintf("internal error: split %q: %v", name, err))
	}

	s.current = name
	s.ClampAll()
	return name, nil
}

// dropUnreferenced removes a freshly created buffer that no panel took.
func (s *State) dropUnreferenced(id registry.BufferID) {
	if s.reg.Refs(id) == 0 {
		_ = s.reg.Remove(id)
	}
}

// CloseCurrent removes the focused panel and focuses the next one. The
// panel's buffer is freed once no other panel views it. The last body
// panel cannot be closed.
func (s *State) CloseCurrent() error {
	if len(s.BodyPanels()) <= 1 {
		return fmt.Errorf("close %q: %w", s.current, layout.ErrLastPanel)
	}

	next := s.nextBody()
	p, err := s.root.RemoveLeaf(s.current)
	if err != nil {
		return err
	}
	if _, err := s.reg.Release(p.BufferID); err != nil {
		panic(fmt.Sprintf("internal error: close %q: %v", s.current, err))
	}

	s.current = next
	s.ClampAll()
	return nil
}

// FocusNext moves focus to the next body panel in layout order, wrapping
// around. It returns the newly focused name.
func (s *State) FocusNext() string {
	s.current = s.nextBody()
	return s.current
}

// BodyPanels returns the names of all panels except the status line, in
// layout order.
func (s *State) BodyPanels() []string {
	return slices.DeleteFunc(layout.Names(s.root), IsStatusPanel)
}

func (s *State) nextBody() string {
	names := s.BodyPanels()
	i := slices.Index(names, s.current)
	return names[(i+1)%len(names)]
}
