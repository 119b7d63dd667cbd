package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dshills/linestorm/internal/engine/cursor"
)

// ErrInvalidUTF8 is returned when loaded content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Buffer is a piece-table text buffer.
// The backing sequence is never modified after construction.
type Buffer struct {
	backing []rune
	lines   [][]Piece
}

// New creates a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]Piece{nil}}
}

// FromText creates a buffer from content. Lines are split on '\n'; a '\r'
// immediately before the newline is not part of the line, and a final
// newline does not start an extra line.
func FromText(content string) *Buffer {
	b := &Buffer{backing: []rune(content)}

	start := 0
	for i, r := range b.backing {
		if r != '\n' {
			continue
		}
		b.lines = append(b.lines, b.originalLine(start, i))
		start = i + 1
	}
	if start < len(b.backing) || len(b.lines) == 0 {
		b.lines = append(b.lines, b.originalLine(start, len(b.backing)))
	}

	return b
}

// originalLine returns the piece list for backing[start:end], minus a
// trailing carriage return.
func (b *Buffer) originalLine(start, end int) []Piece {
	if end > start && b.backing[end-1] == '\r' {
		end--
	}
	if end == start {
		return nil
	}
	return []Piece{Original(start, end-start)}
}

// FromReader creates a buffer from everything readable from r.
// Content that is not valid UTF-8 is rejected with ErrInvalidUTF8.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return FromText(string(data)), nil
}

// FromFile loads the file at path.
func FromFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading %s: %w", path, ErrInvalidUTF8)
	}
	return FromText(string(data)), nil
}

// Read Operations

// Height returns the number of logical lines. It is always at least 1.
func (b *Buffer) Height() int {
	return len(b.lines)
}

// LineWidthAt returns the number of characters on row.
func (b *Buffer) LineWidthAt(row int) int {
	w := 0
	for _, p := range b.row(row) {
		w += p.Len()
	}
	return w
}

// LineAt returns the text of row.
func (b *Buffer) LineAt(row int) string {
	var sb strings.Builder
	for _, p := range b.row(row) {
		sb.WriteString(string(p.runes(b.backing)))
	}
	return sb.String()
}

// Lines returns the text of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = b.LineAt(i)
	}
	return out
}

// Text returns the buffer content with lines joined by a single newline.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Pieces returns a copy of row's piece list.
func (b *Buffer) Pieces(row int) []Piece {
	pieces := b.row(row)
	out := make([]Piece, len(pieces))
	copy(out, pieces)
	return out
}

// row returns the piece list for row, panicking if the row does not exist.
func (b *Buffer) row(row int) []Piece {
	if row < 0 || row >= len(b.lines) {
		panic(fmt.Sprintf("buffer: row %d out of range [0, %d)", row, len(b.lines)))
	}
	return b.lines[row]
}

// effectiveColumn clamps the cursor column into [0, width of its row].
func (b *Buffer) effectiveColumn(c cursor.Cursor) int {
	w := b.LineWidthAt(c.Y)
	if c.X > w {
		return w
	}
	if c.X < 0 {
		return 0
	}
	return c.X
}

// Write Operations

// InsertAtCursor inserts ch before the character at the cursor column.
// A column at or past the end of the line appends ch. The new character
// is merged into an adjoining Added piece where one exists.
func (b *Buffer) InsertAtCursor(ch rune, c cursor.Cursor) {
	old := b.row(c.Y)
	x := b.effectiveColumn(c)

	out := make([]Piece, 0, len(old)+2)
	inserted := false
	offset := 0

	// emitChar places ch after everything emitted so far.
	emitChar := func() {
		if n := len(out); n > 0 && out[n-1].added {
			out[n-1] = addedRunes(concatRunes(out[n-1].text, []rune{ch}))
		} else {
			out = append(out, addedRunes([]rune{ch}))
		}
		inserted = true
	}

	for _, p := range old {
		n := p.Len()
		switch {
		case inserted:
			out = append(out, p)
		case x == offset:
			if p.added && (len(out) == 0 || !out[len(out)-1].added) {
				out = append(out, addedRunes(concatRunes([]rune{ch}, p.text)))
				inserted = true
			} else {
				emitChar()
				out = append(out, p)
			}
		case x < offset+n:
			k := x - offset
			if p.added {
				out = append(out, addedRunes(concatRunes(p.text[:k], []rune{ch}, p.text[k:])))
				inserted = true
			} else {
				left, right := p.splitAt(k)
				out = append(out, left)
				emitChar()
				out = append(out, right)
			}
		default:
			out = append(out, p)
		}
		offset += n
	}
	if !inserted {
		emitChar()
	}

	b.lines[c.Y] = out
}

// EraseAtCursor removes the character at the cursor column and reports
// whether anything was removed. A column at or past the end of the line is
// a no-op.
func (b *Buffer) EraseAtCursor(c cursor.Cursor) bool {
	old := b.row(c.Y)
	x := b.effectiveColumn(c)
	if x == b.LineWidthAt(c.Y) {
		return false
	}

	out := make([]Piece, 0, len(old)+1)
	offset := 0
	for _, p := range old {
		n := p.Len()
		if x < offset || x >= offset+n {
			out = append(out, p)
			offset += n
			continue
		}
		k := x - offset
		left, rest := p.splitAt(k)
		_, right := rest.splitAt(1)
		if left.Len() > 0 {
			out = append(out, left)
		}
		if right.Len() > 0 {
			out = append(out, right)
		}
		offset += n
	}

	b.lines[c.Y] = out
	return true
}

// InsertLineAtCursor splits the cursor's row at the cursor column. The text
// before the column stays on the row; the rest moves to a new row inserted
// immediately after it.
func (b *Buffer) InsertLineAtCursor(c cursor.Cursor) {
	old := b.row(c.Y)
	x := b.effectiveColumn(c)

	var left, right []Piece
	offset := 0
	for _, p := range old {
		n := p.Len()
		switch {
		case offset+n <= x:
			left = append(left, p)
		case offset >= x:
			right = append(right, p)
		default:
			l, r := p.splitAt(x - offset)
			left = append(left, l)
			right = append(right, r)
		}
		offset += n
	}

	lines := make([][]Piece, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:c.Y]...)
	lines = append(lines, left, right)
	lines = append(lines, b.lines[c.Y+1:]...)
	b.lines = lines
}

// Replace discards every line and replaces the content with text held in
// Added pieces. The backing sequence is left untouched.
func (b *Buffer) Replace(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]Piece, len(parts))
	for i, part := range parts {
		if part != "" {
			lines[i] = []Piece{Added(part)}
		}
	}
	b.lines = lines
}

// Persistence

// WriteTo writes every line followed by a single newline.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range b.lines {
		n, err := io.WriteString(w, b.LineAt(i)+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SaveAs writes the buffer to path, creating or truncating the file.
func (b *Buffer) SaveAs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err := b.WriteTo(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
