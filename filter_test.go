package textkit

import (
	"context"
	"reflect"
	"testing"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		in   string
		want tokenShape
	}{
		{"", shapeNone},
		{"x1", shapeNone},
		{"a-b", shapeNone},
		{"NASA", shapeUpper},
		{"A", shapeUpper},
		{"cat", shapeLower},
		{"é", shapeLower},
		{"Cat", shapeTitle},
		{"CAt", shapeMixed},
		{"cAt", shapeMixed},
		{"McBride", shapeMixed},
		{"日本", shapeMixed},
	}
	for _, tt := range tests {
		if got := shapeOf(tt.in); got != tt.want {
			t.Errorf("shapeOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFilterTokens(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want []string
	}{
		{
			"min length",
			[]Option{WithOption("F_MINLENGTH", 3)},
			"a big cat on it",
			[]string{"big", "cat"},
		},
		{
			"max length",
			[]Option{WithOption("F_MAXLENGTH", 3)},
			"a big elephant sat",
			[]string{"a", "big", "sat"},
		},
		{
			"upper",
			[]Option{WithOption("F_UPPER", true)},
			"the NASA probe",
			[]string{"the", "probe"},
		},
		{
			"lower",
			[]Option{WithOption("F_LOWER", true)},
			"the NASA Probe",
			[]string{"NASA", "Probe"},
		},
		{
			"title",
			[]Option{WithOption("F_TITLE", true)},
			"the NASA Probe flew",
			[]string{"the", "NASA", "flew"},
		},
		{
			"mixed",
			[]Option{WithOption("F_MIXED", true)},
			"ask McBride about it",
			[]string{"ask", "about", "it"},
		},
		{
			"alnum",
			[]Option{WithOption("F_ALNUM", true)},
			"see fig3 and 42",
			[]string{"see", "and", "42"},
		},
		{
			"punct",
			[]Option{WithOption("F_PUNCT", true), WithOption("dropFinalDot", false)},
			"wait -- what now !!!",
			[]string{"wait", "--", "what", "now"},
		},
		{
			"punct spares word-internal marks",
			[]Option{WithOption("F_PUNCT", true)},
			"the dog's well-known U.S. trick",
			[]string{"the", "dog", "'s", "well-known", "U.S.", "trick"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			got, err := tok.Tokenize(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterCompaction(t *testing.T) {
	tok, err := New(WithOption("F_MINLENGTH", 4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := tok.Tokenize(context.Background(), "a bb ccc dddd")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []string{"dddd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
	for _, tk := range got {
		if tk == "" {
			t.Error("filtered output contains a blank token")
		}
	}
}
