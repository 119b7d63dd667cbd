package highlight

import "fmt"

// Category is the semantic class of a span.
type Category uint8

// Span categories.
const (
	None Category = iota
	Keyword
	Comment
	String
	Number
	Type
	Operator

	categoryCount
)

// String returns the category name as used in configuration.
func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Keyword:
		return "keyword"
	case Comment:
		return "comment"
	case String:
		return "string"
	case Number:
		return "number"
	case Type:
		return "type"
	case Operator:
		return "operator"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// Categories returns every category except None.
func Categories() []Category {
	cats := make([]Category, 0, categoryCount-1)
	for c := Keyword; c < categoryCount; c++ {
		cats = append(cats, c)
	}
	return cats
}

// Span is a classified range of a line. Start and End are rune offsets,
// End exclusive.
type Span struct {
	Start    int
	End      int
	Category Category
}

// Len returns the span length in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Classifier splits a line into categorized spans. Spans are ordered,
// do not overlap and never cover text in category None.
type Classifier interface {
	Classify(line string) []Span
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(line string) []Span

// Classify calls f(line).
func (f ClassifierFunc) Classify(line string) []Span {
	return f(line)
}

// appendSpan appends a span, merging it into the previous one when they
// touch and share a category.
func appendSpan(spans []Span, s Span) []Span {
	if s.Category == None || s.Len() <= 0 {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].End == s.Start && spans[n-1].Category == s.Category {
		spans[n-1].End = s.End
		return spans
	}
	return append(spans, s)
}
