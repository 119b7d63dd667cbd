package highlight

import (
	"strings"
	"unicode"
)

// Keywords classifies words from fixed keyword and type lists, decimal
// numbers, quoted strings and line comments.
type Keywords struct {
	keywords    map[string]Category
	lineComment []rune
}

// NewKeywords creates a keyword classifier. lineComment starts a comment
// running to the end of the line; empty disables comments.
func NewKeywords(keywords, types []string, lineComment string) *Keywords {
	k := &Keywords{
		keywords:    make(map[string]Category, len(keywords)+len(types)),
		lineComment: []rune(lineComment),
	}
	for _, w := range keywords {
		k.keywords[w] = Keyword
	}
	for _, w := range types {
		k.keywords[w] = Type
	}
	return k
}

// Classify implements Classifier.
func (k *Keywords) Classify(line string) []Span {
	runes := []rune(line)
	var spans []Span

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case k.commentAt(runes, i):
			return appendSpan(spans, Span{i, len(runes), Comment})

		case r == '"' || r == '\'' || r == '`':
			end := i + 1
			for end < len(runes) && runes[end] != r {
				if runes[end] == '\\' && r != '`' {
					end++
				}
				end++
			}
			end = min(end+1, len(runes))
			spans = appendSpan(spans, Span{i, end, String})
			i = end

		case isWordRune(r):
			end := i
			for end < len(runes) && isWordRune(runes[end]) {
				end++
			}
			spans = appendSpan(spans, Span{i, end, k.classifyWord(string(runes[i:end]))})
			i = end

		case strings.ContainsRune("+-*/%=<>!&|^~:?", r):
			spans = appendSpan(spans, Span{i, i + 1, Operator})
			i++

		default:
			i++
		}
	}
	return spans
}

func (k *Keywords) commentAt(runes []rune, i int) bool {
	n := len(k.lineComment)
	if n == 0 || i+n > len(runes) {
		return false
	}
	for j, r := range k.lineComment {
		if runes[i+j] != r {
			return false
		}
	}
	return true
}

func (k *Keywords) classifyWord(w string) Category {
	if c, ok := k.keywords[w]; ok {
		return c
	}
	if isNumber(w) {
		return Number
	}
	return None
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isNumber reports whether w is a decimal integer with optional '_'
// separators.
func isNumber(w string) bool {
	if w == "" || !unicode.IsDigit(rune(w[0])) {
		return false
	}
	for _, r := range w {
		if r != '_' && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
