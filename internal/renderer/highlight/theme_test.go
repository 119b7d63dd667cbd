package highlight

import "testing"

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()
	if got := th.Hex(Keyword); got != "#5f87ff" {
		t.Errorf("Hex(Keyword) = %q, want %q", got, "#5f87ff")
	}
	for _, c := range Categories() {
		if _, ok := th.Color(c); !ok {
			t.Errorf("default theme has no colour for %v", c)
		}
	}
	if _, ok := th.Color(None); ok {
		t.Error("default theme has a colour for None")
	}
	if got := th.Hex(None); got != "" {
		t.Errorf("Hex(None) = %q, want empty", got)
	}
}

func TestNewTheme(t *testing.T) {
	th, err := NewTheme(map[Category]string{Comment: "#112233", String: ""})
	if err != nil {
		t.Fatalf("NewTheme: %v", err)
	}
	if got := th.Hex(Comment); got != "#112233" {
		t.Errorf("Hex(Comment) = %q, want %q", got, "#112233")
	}
	if got := th.Hex(String); got != "#5faf5f" {
		t.Errorf("Hex(String) = %q, want default %q", got, "#5faf5f")
	}
}

func TestNewThemeInvalid(t *testing.T) {
	if _, err := NewTheme(map[Category]string{Keyword: "blue"}); err == nil {
		t.Error("NewTheme with a colour name should fail")
	}
}
