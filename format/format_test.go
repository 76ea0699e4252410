package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil || g != f {
			t.Errorf("round trip %s: %v %v", f, g, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) = %v", err)
	}
	if f, err := ParseFormat("YML"); err != nil || f != YAMLFormat {
		t.Errorf("ParseFormat(YML) = %v %v", f, err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		f    Format
		ok   bool
	}{
		{"a/b.json", JSONFormat, true},
		{"c.yaml", YAMLFormat, true},
		{"c.yml", YAMLFormat, true},
		{"noext", JSONFormat, false},
		{"x.txt", JSONFormat, false},
	}
	for _, tt := range tests {
		f, ok := FromPath(tt.path)
		if f != tt.f || ok != tt.ok {
			t.Errorf("FromPath(%q) = %v %v", tt.path, f, ok)
		}
	}
}
