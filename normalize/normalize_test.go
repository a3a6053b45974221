package normalize

import (
	"testing"
)

func TestNormalizerDispositions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		input    string
		expected string
	}{
		{
			"unify uppercase letters",
			Config{Dispositions: map[string]Disposition{"Lu": Unify}},
			"Hello World",
			"Aello Aorld",
		},
		{
			"unify lowercase letters",
			Config{Dispositions: map[string]Disposition{"Ll": Unify}},
			"Hello",
			"Haaaa",
		},
		{
			"unify digits",
			Config{Dispositions: map[string]Disposition{"Nd": Unify}},
			"room 101",
			"room 999",
		},
		{
			"unify other punctuation",
			Config{Dispositions: map[string]Disposition{"Po": Unify}},
			"wait, what?",
			"wait* what*",
		},
		{
			"delete digits",
			Config{Dispositions: map[string]Disposition{"Digit": Delete}},
			"a1b2c3",
			"abc",
		},
		{
			"space currency",
			Config{Dispositions: map[string]Disposition{"Sc": Space}},
			"$10",
			" 10",
		},
		{
			"strip accents",
			Config{Dispositions: map[string]Disposition{"Accent": Strip}},
			"café naïve",
			"cafe naive",
		},
		{
			"unify accents strips them",
			Config{Dispositions: map[string]Disposition{"Accent": Unify}},
			"résumé",
			"resume",
		},
		{
			"value of fractions",
			Config{Dispositions: map[string]Disposition{"No": Value}},
			"add ½ cup",
			"add 0.5 cup",
		},
		{
			"upper on lowercase",
			Config{Dispositions: map[string]Disposition{"Ll": Upper}},
			"Hello",
			"HELLO",
		},
		{
			"lower on uppercase",
			Config{Dispositions: map[string]Disposition{"Lu": Lower}},
			"Hello",
			"hello",
		},
		{
			"cover fans out to subcategories",
			Config{Dispositions: map[string]Disposition{"P": Unify}},
			"a-b (c)",
			"a-b (c)",
		},
		{
			"long alias resolves",
			Config{Dispositions: map[string]Disposition{"Uppercase_Letter": Unify}},
			"Go",
			"Ao",
		},
		{
			"nbsp to space",
			Config{Dispositions: map[string]Disposition{"Nbsp": Space}},
			"a\u00a0b",
			"a b",
		},
		{
			"soft hyphen deleted",
			Config{Dispositions: map[string]Disposition{"Soft_Hyphen": Delete}},
			"co\u00adoperate",
			"cooperate",
		},
		{
			"fullwidth to ascii",
			Config{Dispositions: map[string]Disposition{"Fullwidth": Unify}},
			"ＡＢＣ",
			"ABC",
		},
		{
			"ligature unify expands",
			Config{Dispositions: map[string]Disposition{"Ligature": Unify}},
			"ﬁle",
			"file",
		},
		{
			"keep is the default",
			Config{},
			"unchanged — даже так",
			"unchanged — даже так",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got := n.Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizerUnifyIdempotent(t *testing.T) {
	n, err := New(Config{Dispositions: map[string]Disposition{
		"L": Unify, "N": Unify, "P": Unify, "S": Unify,
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	once := n.Normalize("Mix 3 parts (flour), $2 worth!")
	twice := n.Normalize(once)
	if once != twice {
		t.Errorf("unify not idempotent: %q then %q", once, twice)
	}
}

func TestNormalizerConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown category", Config{Dispositions: map[string]Disposition{"Qq": Keep}}},
		{"unknown form", Config{Form: "NFX"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNormalizerForm(t *testing.T) {
	n, err := New(Config{Form: "NFKD"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// NFKD decomposes the precomposed e-acute into e plus a combining mark.
	got := n.Normalize("café")
	if got != "café" {
		t.Errorf("Normalize = %q, want %q", got, "café")
	}
}

func TestAsciiOnly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii", "hello", "hello"},
		{"drops non-ascii", "héllo wörld", "hllo wrld"},
		{"controls to space", "a\tb\nc", "a b c"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AsciiOnly(tc.input)
			if got != tc.expected {
				t.Errorf("AsciiOnly(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
