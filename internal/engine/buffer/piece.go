package buffer

import "fmt"

// Piece is one run of text inside a line.
// It is either a span of the buffer's original text or owned added text.
type Piece struct {
	added bool

	// Original span, valid when !added.
	start  int
	length int

	// Added text, valid when added.
	text []rune
}

// Original returns a piece referencing length characters of the backing
// sequence starting at start.
func Original(start, length int) Piece {
	return Piece{start: start, length: length}
}

// Added returns a piece owning a copy of text.
func Added(text string) Piece {
	return Piece{added: true, text: []rune(text)}
}

// addedRunes returns a piece owning rs. Callers must not retain rs.
func addedRunes(rs []rune) Piece {
	return Piece{added: true, text: rs}
}

// IsAdded reports whether the piece holds text inserted after load.
func (p Piece) IsAdded() bool {
	return p.added
}

// Start returns the backing offset of an Original piece.
func (p Piece) Start() int {
	return p.start
}

// Len returns the number of characters in the piece.
func (p Piece) Len() int {
	if p.added {
		return len(p.text)
	}
	return p.length
}

// String returns a debug representation of the piece.
func (p Piece) String() string {
	if p.added {
		return fmt.Sprintf("Added(%q)", string(p.text))
	}
	return fmt.Sprintf("Original(%d, %d)", p.start, p.length)
}

// runes returns the piece's characters resolved against backing.
func (p Piece) runes(backing []rune) []rune {
	if p.added {
		return p.text
	}
	return backing[p.start : p.start+p.length]
}

// splitAt splits the piece k characters in. Either half may be empty.
func (p Piece) splitAt(k int) (Piece, Piece) {
	if p.added {
		left := make([]rune, k)
		copy(left, p.text[:k])
		right := make([]rune, len(p.text)-k)
		copy(right, p.text[k:])
		return addedRunes(left), addedRunes(right)
	}
	return Original(p.start, k), Original(p.start+k, p.length-k)
}

// concatRunes returns a freshly allocated concatenation of parts.
func concatRunes(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
