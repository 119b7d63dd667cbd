package highlight

import (
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Chroma classifies lines with a chroma lexer. Each line is lexed on its
// own, so constructs spanning lines (block comments, raw strings) are
// only recognised on their first line.
type Chroma struct {
	lexer chroma.Lexer
}

// NewChroma returns a classifier for the language of filename, or nil if
// chroma has no lexer for it.
func NewChroma(filename string) *Chroma {
	l := lexers.Match(filename)
	if l == nil {
		return nil
	}
	return &Chroma{lexer: chroma.Coalesce(l)}
}

// NewChromaLanguage returns a classifier for a chroma language name such
// as "go" or "rust", or nil if the name is unknown.
func NewChromaLanguage(name string) *Chroma {
	l := lexers.Get(name)
	if l == nil {
		return nil
	}
	return &Chroma{lexer: chroma.Coalesce(l)}
}

// Language returns the lexer's language name.
func (c *Chroma) Language() string {
	return c.lexer.Config().Name
}

// Classify implements Classifier.
func (c *Chroma) Classify(line string) []Span {
	tokens, err := chroma.Tokenise(c.lexer, nil, line)
	if err != nil {
		return nil
	}

	width := utf8.RuneCountInString(line)
	var spans []Span
	pos := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType || pos >= width {
			break
		}
		n := utf8.RuneCountInString(tok.Value)
		end := min(pos+n, width)
		spans = appendSpan(spans, Span{pos, end, categoryOf(tok.Type)})
		pos += n
	}
	return spans
}

// categoryOf maps a chroma token type onto a Category.
func categoryOf(t chroma.TokenType) Category {
	switch {
	case t == chroma.KeywordType, t == chroma.NameBuiltin, t == chroma.NameClass:
		return Type
	case t.InCategory(chroma.Keyword):
		return Keyword
	case t.InCategory(chroma.Comment):
		return Comment
	case t.InSubCategory(chroma.LiteralString):
		return String
	case t.InSubCategory(chroma.LiteralNumber):
		return Number
	case t.InCategory(chroma.Operator):
		return Operator
	default:
		return None
	}
}
