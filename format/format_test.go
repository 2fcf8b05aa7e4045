package format

import (
	"errors"
	"testing"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", JSONFormat, false},
		{"a.yaml", YAMLFormat, false},
		{"a.yml", YAMLFormat, false},
		{"dir/nested/b.JSON", 0, true},
		{"a.txt", 0, true},
		{"a", 0, true},
		{"a.yaml.bak", 0, true},
	}
	for _, tt := range tests {
		got, err := FromPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromPath(%q): no error", tt.path)
			} else if !errors.Is(err, ErrBadFormat) {
				t.Errorf("FromPath(%q): error %v not ErrBadFormat", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, v := range []string{"j", "json", "y", "yaml", "yml"} {
		if _, err := ParseFormat(v); err != nil {
			t.Errorf("ParseFormat(%q): %v", v, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml): %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", f, err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", d, err)
		}
		if g != f {
			t.Errorf("round trip %v -> %s -> %v", f, d, g)
		}
	}
}
