package highlight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeywordsClassify(t *testing.T) {
	k := NewKeywords([]string{"func", "return"}, []string{"int"}, "//")

	tests := []struct {
		line string
		want []Span
	}{
		{"", nil},
		{"plain words", nil},
		{"func f(x int) int { return 42 } // done", []Span{
			{0, 4, Keyword},
			{9, 12, Type},
			{14, 17, Type},
			{20, 26, Keyword},
			{27, 29, Number},
			{32, 39, Comment},
		}},
		{`x := "a\"b" + 'c'`, []Span{
			{2, 4, Operator},
			{5, 11, String},
			{12, 13, Operator},
			{14, 17, String},
		}},
		{`"open`, []Span{{0, 5, String}}},
		{"αβ 12", []Span{{3, 5, Number}}},
		{"1_000 x1 return", []Span{{0, 5, Number}, {9, 15, Keyword}}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := k.Classify(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestKeywordsNoComment(t *testing.T) {
	k := NewKeywords(nil, nil, "")
	got := k.Classify("// x")
	want := []Span{{0, 2, Operator}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifierFunc(t *testing.T) {
	var c Classifier = ClassifierFunc(func(line string) []Span {
		return []Span{{0, len(line), String}}
	})
	if got := c.Classify("abc"); len(got) != 1 || got[0].Len() != 3 {
		t.Errorf("Classify = %v, want one span of length 3", got)
	}
}

func TestCategoryString(t *testing.T) {
	want := []string{"keyword", "comment", "string", "number", "type", "operator"}
	var got []string
	for _, c := range Categories() {
		got = append(got, c.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("category names mismatch (-want +got):\n%s", diff)
	}
	if None.String() != "none" {
		t.Errorf("None.String() = %q, want %q", None.String(), "none")
	}
}
