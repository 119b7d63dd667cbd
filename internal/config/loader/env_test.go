package loader

import "testing"

func lookupMap(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestEnvLoader(t *testing.T) {
	env := NewEnvLoaderWithLookup("LS_", lookupMap(map[string]string{
		"LS_NAME":  "value",
		"LS_EMPTY": "",
		"LS_ON":    "Yes",
		"LS_BAD":   "maybe",
	}))

	if got, ok := env.String("NAME"); !ok || got != "value" {
		t.Errorf("String(NAME) = %q, %v; want value, true", got, ok)
	}
	if got, ok := env.String("EMPTY"); !ok || got != "" {
		t.Errorf("String(EMPTY) = %q, %v; want empty, true", got, ok)
	}
	if _, ok := env.String("MISSING"); ok {
		t.Error("String(MISSING) ok = true, want false")
	}

	if v, ok, err := env.Bool("ON"); err != nil || !ok || !v {
		t.Errorf("Bool(ON) = %v, %v, %v; want true, true, nil", v, ok, err)
	}
	if _, ok, err := env.Bool("MISSING"); err != nil || ok {
		t.Errorf("Bool(MISSING) = _, %v, %v; want false, nil", ok, err)
	}
	if _, _, err := env.Bool("BAD"); err == nil {
		t.Error("Bool(BAD) err = nil, want error")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"ON", true, false},
		{"1", true, false},
		{" yes ", true, false},
		{"false", false, false},
		{"off", false, false},
		{"0", false, false},
		{"no", false, false},
		{"", false, true},
		{"2", false, true},
	}
	for _, tt := range tests {
		got, err := ParseBool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBool(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
