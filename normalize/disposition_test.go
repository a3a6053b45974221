package normalize

import (
	"testing"
)

func TestParseDisposition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Disposition
		wantErr  bool
	}{
		{"keep", "keep", Keep, false},
		{"unify", "unify", Unify, false},
		{"delete", "delete", Delete, false},
		{"space", "space", Space, false},
		{"strip", "strip", Strip, false},
		{"value", "value", Value, false},
		{"upper", "upper", Upper, false},
		{"lower", "lower", Lower, false},
		{"decompose", "decompose", Decompose, false},
		{"unknown keyword", "shred", Keep, true},
		{"case sensitive", "Keep", Keep, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDisposition(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDisposition(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseDisposition(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDispositionString(t *testing.T) {
	if got := Unify.String(); got != "unify" {
		t.Errorf("Unify.String() = %q, want %q", got, "unify")
	}
	if got := Disposition(99).String(); got != "Disposition(99)" {
		t.Errorf("Disposition(99).String() = %q, want %q", got, "Disposition(99)")
	}
}

func TestDispositionRoundTrip(t *testing.T) {
	for d := Keep; d <= Decompose; d++ {
		parsed, err := ParseDisposition(d.String())
		if err != nil {
			t.Fatalf("ParseDisposition(%q): %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("round trip of %v gave %v", d, parsed)
		}
	}
}
