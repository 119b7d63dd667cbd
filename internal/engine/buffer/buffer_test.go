package buffer

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/linestorm/internal/engine/cursor"
)

func at(x, y int) cursor.Cursor {
	return cursor.Cursor{X: x, Y: y}
}

func TestNew(t *testing.T) {
	b := New()

	if b.Height() != 1 {
		t.Errorf("expected 1 line, got %d", b.Height())
	}
	if b.LineWidthAt(0) != 0 {
		t.Errorf("expected empty line, got width %d", b.LineWidthAt(0))
	}
}

func TestFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"trailing newline", "hello\n", []string{"hello"}},
		{"multiline", "line1\nline2\nline3", []string{"line1", "line2", "line3"}},
		{"blank lines", "a\n\nb\n\n", []string{"a", "", "b", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"unicode", "héllo\n世界", []string{"héllo", "世界"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromText(tt.text)
			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromTextOriginalPieces(t *testing.T) {
	b := FromText("ab\ncde\n\nf")

	wantPieces := [][]Piece{
		{Original(0, 2)},
		{Original(3, 3)},
		nil,
		{Original(8, 1)},
	}

	for row, want := range wantPieces {
		got := b.Pieces(row)
		if len(got) != len(want) {
			t.Fatalf("row %d: got %v, want %v", row, got, want)
		}
		for i := range want {
			if got[i].IsAdded() || got[i].Start() != want[i].Start() || got[i].Len() != want[i].Len() {
				t.Errorf("row %d piece %d = %v, want %v", row, i, got[i], want[i])
			}
		}
	}
}

func TestLineWidthCountsCharacters(t *testing.T) {
	b := FromText("日本語")
	if got := b.LineWidthAt(0); got != 3 {
		t.Errorf("LineWidthAt(0) = %d, want 3", got)
	}
}

func TestInsertAtCursor(t *testing.T) {
	tests := []struct {
		name string
		text string
		ch   rune
		c    cursor.Cursor
		want string
	}{
		{"start", "world", 'X', at(0, 0), "Xworld"},
		{"middle", "world", 'X', at(2, 0), "woXrld"},
		{"end", "world", 'X', at(5, 0), "worldX"},
		{"past end clamps", "world", 'X', at(42, 0), "worldX"},
		{"empty line", "", 'X', at(0, 0), "X"},
		{"multibyte", "日本", 'X', at(1, 0), "日X本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromText(tt.text)
			b.InsertAtCursor(tt.ch, tt.c)
			if got := b.LineAt(0); got != tt.want {
				t.Errorf("LineAt(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertAtCursorCoalesces(t *testing.T) {
	b := FromText("hello")

	for i, ch := range "abc" {
		b.InsertAtCursor(ch, at(5+i, 0))
	}

	if got := b.LineAt(0); got != "helloabc" {
		t.Fatalf("LineAt(0) = %q, want %q", got, "helloabc")
	}
	pieces := b.Pieces(0)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %v", pieces)
	}
	if !pieces[1].IsAdded() || pieces[1].Len() != 3 {
		t.Errorf("expected coalesced Added piece of length 3, got %v", pieces[1])
	}
}

func TestInsertAtCursorSplitsOriginal(t *testing.T) {
	b := FromText("abcd")
	b.InsertAtCursor('X', at(2, 0))

	pieces := b.Pieces(0)
	if len(pieces) != 3 {
		t.Fatalf("expected 3 pieces, got %v", pieces)
	}
	if pieces[0].Start() != 0 || pieces[0].Len() != 2 {
		t.Errorf("left piece = %v, want Original(0, 2)", pieces[0])
	}
	if !pieces[1].IsAdded() {
		t.Errorf("middle piece = %v, want Added", pieces[1])
	}
	if pieces[2].Start() != 2 || pieces[2].Len() != 2 {
		t.Errorf("right piece = %v, want Original(2, 2)", pieces[2])
	}

	// Typing again inside the added run keeps a single Added piece.
	b.InsertAtCursor('Y', at(3, 0))
	if got := b.LineAt(0); got != "abXYcd" {
		t.Errorf("LineAt(0) = %q, want %q", got, "abXYcd")
	}
	if n := len(b.Pieces(0)); n != 3 {
		t.Errorf("expected 3 pieces after coalescing, got %d", n)
	}
}

func TestInsertAtCursorAppends(t *testing.T) {
	for _, text := range []string{"", "a", "hello", "日本語"} {
		b := FromText(text)
		w := b.LineWidthAt(0)
		b.InsertAtCursor('Z', at(w, 0))

		line := []rune(b.LineAt(0))
		if line[len(line)-1] != 'Z' {
			t.Errorf("after append to %q, last char = %q, want 'Z'", text, line[len(line)-1])
		}
	}
}

func TestEraseAtCursor(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		c          cursor.Cursor
		want       string
		wantErased bool
	}{
		{"scenario B", "ab", at(1, 0), "a", true},
		{"first", "abc", at(0, 0), "bc", true},
		{"last", "abc", at(2, 0), "ab", true},
		{"at end is no-op", "abc", at(3, 0), "abc", false},
		{"past end is no-op", "abc", at(10, 0), "abc", false},
		{"empty line", "", at(0, 0), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromText(tt.text)
			erased := b.EraseAtCursor(tt.c)
			if erased != tt.wantErased {
				t.Errorf("EraseAtCursor() = %v, want %v", erased, tt.wantErased)
			}
			if got := b.LineAt(0); got != tt.want {
				t.Errorf("LineAt(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEraseAtCursorTargetsCursorColumn(t *testing.T) {
	// The character under the cursor is removed, not the one before it.
	b := FromText("ab")
	b.EraseAtCursor(at(1, 0))

	if got := b.LineAt(0); got != "a" {
		t.Errorf("LineAt(0) = %q, want %q", got, "a")
	}
}

func TestEraseAtCursorDropsEmptyPieces(t *testing.T) {
	b := FromText("abc")
	b.InsertAtCursor('X', at(1, 0)) // a X bc
	b.EraseAtCursor(at(1, 0))       // a bc

	if got := b.LineAt(0); got != "abc" {
		t.Fatalf("LineAt(0) = %q, want %q", got, "abc")
	}
	for _, p := range b.Pieces(0) {
		if p.Len() == 0 {
			t.Errorf("found zero-length piece in %v", b.Pieces(0))
		}
	}
	if n := len(b.Pieces(0)); n != 2 {
		t.Errorf("expected 2 pieces, got %d: %v", n, b.Pieces(0))
	}
}

func TestInsertLineAtCursor(t *testing.T) {
	tests := []struct {
		name string
		text string
		c    cursor.Cursor
		want []string
	}{
		{"scenario A", "hello\nworld", at(5, 0), []string{"hello", "", "world"}},
		{"middle", "hello", at(2, 0), []string{"he", "llo"}},
		{"start", "hello", at(0, 0), []string{"", "hello"}},
		{"past end", "hello", at(99, 0), []string{"hello", ""}},
		{"last row", "a\nbc", at(1, 1), []string{"a", "b", "c"}},
		{"empty", "", at(0, 0), []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromText(tt.text)
			b.InsertLineAtCursor(tt.c)
			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertLineAtCursorConservesText(t *testing.T) {
	b := FromText("abcdef")
	b.InsertAtCursor('X', at(3, 0)) // abcXdef, three pieces

	for k := 0; k <= b.LineWidthAt(0); k++ {
		b2 := FromText("abcdef")
		b2.InsertAtCursor('X', at(3, 0))
		orig := b2.LineAt(0)
		w := b2.LineWidthAt(0)

		b2.InsertLineAtCursor(at(k, 0))
		left, right := b2.LineAt(0), b2.LineAt(1)
		if left+right != orig {
			t.Errorf("k=%d: %q + %q != %q", k, left, right, orig)
		}
		if b2.LineWidthAt(0)+b2.LineWidthAt(1) != w {
			t.Errorf("k=%d: widths %d + %d != %d", k, b2.LineWidthAt(0), b2.LineWidthAt(1), w)
		}
	}
}

func TestInsertLineSplitsOriginalPiece(t *testing.T) {
	b := FromText("abcdef")
	b.InsertLineAtCursor(at(2, 0))

	left, right := b.Pieces(0), b.Pieces(1)
	if len(left) != 1 || left[0].Start() != 0 || left[0].Len() != 2 {
		t.Errorf("left = %v, want [Original(0, 2)]", left)
	}
	if len(right) != 1 || right[0].Start() != 2 || right[0].Len() != 4 {
		t.Errorf("right = %v, want [Original(2, 4)]", right)
	}
}

func TestAddedSplitDoesNotAlias(t *testing.T) {
	b := New()
	for i, ch := range "abcd" {
		b.InsertAtCursor(ch, at(i, 0))
	}
	b.InsertLineAtCursor(at(2, 0)) // "ab", "cd"
	b.InsertAtCursor('X', at(2, 0))

	want := []string{"abX", "cd"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestRowOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing row")
		}
	}()
	b := FromText("one line")
	b.LineAt(3)
}

func TestReplace(t *testing.T) {
	b := FromText("original\ntext")
	b.Replace("status")

	if diff := cmp.Diff([]string{"status"}, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	b.Replace("")
	if b.Height() != 1 || b.LineAt(0) != "" {
		t.Errorf("Replace(\"\") left %q", b.Lines())
	}
}

func TestWriteTo(t *testing.T) {
	b := FromText("a\nb")
	b.InsertAtCursor('!', at(1, 1))

	var sb strings.Builder
	n, err := b.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if got := sb.String(); got != "a\nb!\n" {
		t.Errorf("WriteTo wrote %q, want %q", got, "a\nb!\n")
	}
	if n != int64(sb.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, sb.Len())
	}
}

func TestSaveAsAndFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	b := FromText("first\nsecond\n")
	b.InsertLineAtCursor(at(5, 0))
	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got := string(data); got != "first\n\nsecond\n" {
		t.Errorf("saved %q, want %q", got, "first\n\nsecond\n")
	}

	loaded, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if diff := cmp.Diff(b.Lines(), loaded.Lines()); diff != "" {
		t.Errorf("reloaded buffer mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveAsMissingDirectory(t *testing.T) {
	b := FromText("x")
	err := b.SaveAs(filepath.Join(t.TempDir(), "missing", "out.txt"))
	if err == nil {
		t.Error("expected error saving into a missing directory")
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FromFile error = %v, want not-exist", err)
	}
}

func TestFromFileInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	original := []byte("caf\xe9\n")
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	b, err := FromFile(path)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("FromFile error = %v, want ErrInvalidUTF8", err)
	}
	if b != nil {
		t.Errorf("FromFile returned a buffer for invalid content")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(original) {
		t.Errorf("file changed to %q", data)
	}
}

func TestFromReaderInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"latin1", "caf\xe9", ErrInvalidUTF8},
		{"truncated sequence", "ok\n\xe2\x82", ErrInvalidUTF8},
		{"valid multibyte", "caf\u00e9 \u20ac", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromReader(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("FromReader error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	b, err := FromReader(strings.NewReader("x\ny"))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

// model is a plain line-array reference implementation of the edit
// operations.
type model struct {
	lines [][]rune
}

func newModel(text string) *model {
	m := &model{}
	for _, l := range FromText(text).Lines() {
		m.lines = append(m.lines, []rune(l))
	}
	return m
}

func (m *model) col(c cursor.Cursor) int {
	if c.X > len(m.lines[c.Y]) {
		return len(m.lines[c.Y])
	}
	return c.X
}

func (m *model) insert(ch rune, c cursor.Cursor) {
	x := m.col(c)
	line := m.lines[c.Y]
	m.lines[c.Y] = concatRunes(line[:x], []rune{ch}, line[x:])
}

func (m *model) erase(c cursor.Cursor) {
	x := m.col(c)
	line := m.lines[c.Y]
	if x == len(line) {
		return
	}
	m.lines[c.Y] = concatRunes(line[:x], line[x+1:])
}

func (m *model) insertLine(c cursor.Cursor) {
	x := m.col(c)
	line := m.lines[c.Y]
	left, right := concatRunes(line[:x]), concatRunes(line[x:])
	lines := make([][]rune, 0, len(m.lines)+1)
	lines = append(lines, m.lines[:c.Y]...)
	lines = append(lines, left, right)
	lines = append(lines, m.lines[c.Y+1:]...)
	m.lines = lines
}

func (m *model) text() string {
	parts := make([]string, len(m.lines))
	for i, l := range m.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

func TestRoundTripAgainstModel(t *testing.T) {
	seeds := []string{"", "hello\nworld", "a\n\nb", "日本語\nテキスト\n"}
	alphabet := []rune("abcxyz 日é")

	for seedIndex, text := range seeds {
		rng := rand.New(rand.NewSource(int64(seedIndex) + 1))
		b := FromText(text)
		m := newModel(text)

		for step := 0; step < 500; step++ {
			y := rng.Intn(b.Height())
			c := at(rng.Intn(b.LineWidthAt(y)+3), y)

			switch rng.Intn(5) {
			case 0, 1:
				ch := alphabet[rng.Intn(len(alphabet))]
				b.InsertAtCursor(ch, c)
				m.insert(ch, c)
			case 2, 3:
				b.EraseAtCursor(c)
				m.erase(c)
			case 4:
				b.InsertLineAtCursor(c)
				m.insertLine(c)
			}

			if b.Text() != m.text() {
				t.Fatalf("seed %d step %d: buffer %q, model %q", seedIndex, step, b.Text(), m.text())
			}
		}
	}
}
