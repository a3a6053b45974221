package markup

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/jamesainslie/go-textkit/colorize"
)

func plain(opts ...Option) *Renderer {
	return New(append([]Option{WithWidth(40)}, opts...)...)
}

func TestRenderParagraphs(t *testing.T) {
	r := plain()

	in := "Run the tokenizer over one or more files.\n\nSecond paragraph."
	want := "Run the tokenizer over one or more\nfiles.\n\nSecond paragraph.\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(%q) = %q, want %q", in, got, want)
	}
}

func TestRenderJoinsContinuationLines(t *testing.T) {
	r := plain()

	if got := r.Render("first line\nsecond line"); got != "first line second line\n" {
		t.Errorf("Render(continuation) = %q", got)
	}
}

func TestRenderPreservesBlankRuns(t *testing.T) {
	r := plain()

	if got := r.Render("a\n\n\n\nb"); got != "a\n\n\n\nb\n" {
		t.Errorf("Render(blank runs) = %q", got)
	}
}

func TestRenderHeading(t *testing.T) {
	r := plain()

	if got := r.Render("=Usage=\n\nBody text."); got != "Usage\n\nBody text.\n" {
		t.Errorf("Render(heading) = %q", got)
	}
	if got := r.Render("== Deeper ==\ntext"); got != "Deeper\ntext\n" {
		t.Errorf("Render(level 2 heading) = %q", got)
	}
}

func TestRenderRule(t *testing.T) {
	r := plain()

	if got := r.Render("----"); got != strings.Repeat("-", 40)+"\n" {
		t.Errorf("Render(----) = %q", got)
	}
	if got := r.Render("===="); got != strings.Repeat("=", 40)+"\n" {
		t.Errorf("Render(====) = %q", got)
	}
}

func TestRenderLists(t *testing.T) {
	r := plain()

	in := strings.Join([]string{
		"* first point",
		"* second point that goes on long enough to wrap nicely",
		"** nested",
		"# alpha",
		"# beta",
	}, "\n")
	want := strings.Join([]string{
		"    * first point",
		"    * second point that goes on long",
		"      enough to wrap nicely",
		"        - nested",
		"    1. alpha",
		"    2. beta",
	}, "\n") + "\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(lists) =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderOrderedNesting(t *testing.T) {
	r := plain()

	in := "# one\n## sub\n## sub2\n# two\n## fresh"
	want := strings.Join([]string{
		"    1. one",
		"        a. sub",
		"        b. sub2",
		"    2. two",
		"        a. fresh",
	}, "\n") + "\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(ordered nesting) =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderHeadingResetsNumbering(t *testing.T) {
	r := plain()

	in := "# one\n\n=H=\n\n# again"
	want := "    1. one\n\nH\n\n    1. again\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(reset) = %q, want %q", got, want)
	}
}

func TestRenderDefinition(t *testing.T) {
	r := plain()

	in := ";--heavy:Use the full pipeline."
	want := "--heavy\n    Use the full pipeline.\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(definition) = %q, want %q", got, want)
	}

	if got := r.Render(";term"); got != "term\n" {
		t.Errorf("Render(bare term) = %q", got)
	}
}

func TestRenderIndent(t *testing.T) {
	r := plain()

	in := ": quoted words here\n:: deeper"
	want := "    quoted words here\n        deeper\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(indent) = %q, want %q", got, want)
	}
}

func TestRenderVerbatim(t *testing.T) {
	r := plain()

	in := "Example:\n\n    textkit --heavy a.txt\n    textkit --segment b.txt\nAfter."
	want := "Example:\n\n    textkit --heavy a.txt\n    textkit --segment b.txt\nAfter.\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(verbatim) = %q, want %q", got, want)
	}
}

func TestRenderVerbatimTabs(t *testing.T) {
	r := plain()

	if got := r.Render("\tcode line"); got != "        code line\n" {
		t.Errorf("Render(tab line) = %q", got)
	}
}

func TestRenderInlinePlain(t *testing.T) {
	r := plain()

	in := "mix of '''big''' and ''slant'' and `code` spans plus '''''both''''' here."
	want := "mix of big and slant and code spans plus\nboth here.\n"
	if got := r.Render(in); got != want {
		t.Errorf("Render(inline) = %q, want %q", got, want)
	}
}

func TestRenderSkipsCommentLines(t *testing.T) {
	r := plain()

	if got := r.Render("before\n<!-- hidden -->\nafter"); got != "before after\n" {
		t.Errorf("Render(comment) = %q", got)
	}
}

func TestRenderColorized(t *testing.T) {
	cm := colorize.New(colorize.WithProfile(termenv.ANSI))
	r := New(WithWidth(60), WithColors(cm))

	if got := r.Render("=Head="); got != "\x1b[1;34mHead\x1b[0m\n" {
		t.Errorf("Render(colored heading) = %q", got)
	}

	out := r.Render("a '''word''' and ''it'' and `code` here")
	for _, want := range []string{"\x1b[1mword\x1b[0m", "\x1b[3mit\x1b[0m", "\x1b[36mcode\x1b[0m"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render(colored inline) = %q, missing %q", out, want)
		}
	}

	if got := r.Render("* item"); !strings.Contains(got, "\x1b[1;34m*\x1b[0m item") {
		t.Errorf("Render(colored marker) = %q", got)
	}
}

func TestRenderWrapIgnoresEscapes(t *testing.T) {
	cm := colorize.New(colorize.WithProfile(termenv.ANSI))
	r := New(WithWidth(20), WithColors(cm))

	// Five styled words of visible width 3 plus separators fit in 19
	// columns; the sixth forces a wrap even though the byte length of
	// the first line is far past 20.
	out := r.Render("'''aaa''' '''bbb''' '''ccc''' '''ddd''' '''eee''' '''fff'''")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if got := cm.UncoloredLen(lines[0]); got != 19 {
		t.Errorf("visible width of first line = %d, want 19", got)
	}
}

func TestWidthEnv(t *testing.T) {
	t.Setenv("WIDTH", "30")

	r := New()
	if got := r.Render("----"); got != strings.Repeat("-", 30)+"\n" {
		t.Errorf("Render with WIDTH=30 = %q", got)
	}

	r = New(WithWidth(20))
	if got := r.Render("----"); got != strings.Repeat("-", 20)+"\n" {
		t.Errorf("WithWidth should beat WIDTH env, got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n     int
		style string
		want  string
	}{
		{1, "decimal", "1"},
		{3, "decimal", "3"},
		{1, "lower-alpha", "a"},
		{2, "lower-alpha", "b"},
		{27, "lower-alpha", "a"},
		{2, "upper-alpha", "B"},
		{1, "lower-roman", "i"},
		{4, "lower-roman", "iv"},
		{9, "lower-roman", "ix"},
		{14, "lower-roman", "xiv"},
		{40, "lower-roman", "xl"},
		{1990, "upper-roman", "MCMXC"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.n, tt.style); got != tt.want {
			t.Errorf("formatNumber(%d, %s) = %q, want %q", tt.n, tt.style, got, tt.want)
		}
	}
}
