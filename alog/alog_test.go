package alog

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/jamesainslie/go-textkit/colorize"
)

func TestVMsgGating(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithVerbose(1))

	l.VMsg(0, "zero")
	l.VMsg(1, "one")
	l.VMsg(2, "two")

	if got := buf.String(); got != "zero\none\n" {
		t.Errorf("output = %q, want %q", got, "zero\none\n")
	}
}

func TestVMsgFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.VMsg(0, "did %d of %d", 3, 5)

	if got := buf.String(); got != "did 3 of 5\n" {
		t.Errorf("output = %q", got)
	}
}

func TestHMsg(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.HMsg(0, "Phase")
	if got := buf.String(); got != "\n******* Phase\n" {
		t.Errorf("heading = %q", got)
	}

	buf.Reset()
	l.HMsg(1, "hidden")
	if buf.Len() != 0 {
		t.Errorf("suppressed heading wrote %q", buf.String())
	}
}

func TestEMsgCountsWhenSuppressed(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.EMsg(5, "quiet failure")
	if buf.Len() != 0 {
		t.Errorf("suppressed error wrote %q", buf.String())
	}
	if l.Errors() != 1 {
		t.Errorf("Errors() = %d, want 1", l.Errors())
	}

	l.EMsg(0, "seen")
	if got := buf.String(); got != "ERROR: seen\n" {
		t.Errorf("error output = %q", got)
	}
	if l.Errors() != 2 {
		t.Errorf("Errors() = %d, want 2", l.Errors())
	}
}

func TestIndentation(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.VMsg(0, "a")
	l.Push()
	l.VMsg(0, "b")
	l.Push()
	l.VMsg(0, "c")
	l.Pop()
	l.VMsg(0, "d")
	l.SetIndent(0)
	l.VMsg(0, "e")

	want := "a\n  b\n    c\n  d\ne\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	l.Pop()
	l.Pop()
	if l.Indent() != 0 {
		t.Errorf("Indent() after extra Pops = %d, want 0", l.Indent())
	}
}

func TestRule(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.Rule(0, "")
	if got := buf.String(); got != strings.Repeat("=", 79)+"\n" {
		t.Errorf("Rule(\"\") = %q", got)
	}

	buf.Reset()
	l.Rule(0, "-~")
	if got := buf.String(); got != strings.Repeat("-~", 39)+"\n" {
		t.Errorf("Rule(-~) = %q", got)
	}

	buf.Reset()
	l.Rule(1, "=")
	if buf.Len() != 0 {
		t.Errorf("suppressed rule wrote %q", buf.String())
	}

	narrow := New(WithWriter(&buf), WithRuleWidth(10))
	narrow.Rule(0, "=")
	if got := buf.String(); got != strings.Repeat("=", 10)+"\n" {
		t.Errorf("narrow rule = %q", got)
	}
}

func TestStats(t *testing.T) {
	l := New(WithWriter(&bytes.Buffer{}))

	l.Bump("words")
	l.Bump("words")
	l.BumpBy("bytes", 5)
	l.SetStat("files", 3)

	if got := l.Stat("words"); got != 2 {
		t.Errorf("Stat(words) = %d, want 2", got)
	}
	if got := l.Stat("bytes"); got != 5 {
		t.Errorf("Stat(bytes) = %d, want 5", got)
	}
	if got := l.Stat("files"); got != 3 {
		t.Errorf("Stat(files) = %d, want 3", got)
	}
	if got := l.Stat("nothing"); got != 0 {
		t.Errorf("Stat(nothing) = %d, want 0", got)
	}
}

func TestShowStats(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.Bump("tokens/word")
	l.Bump("tokens/word")
	l.Bump("tokens/punct")
	l.SetStat("files", 3)
	l.SetStat("empty", 0)

	l.ShowStats()

	want := "Summary of message statistics:\n" +
		fmt.Sprintf("%-30s%12d\n", "  files", 3) +
		fmt.Sprintf("%-30s%12d\n", "  tokens", 3) +
		fmt.Sprintf("%-30s%12d\n", "  tokens/punct", 1) +
		fmt.Sprintf("%-30s%12d\n", "  tokens/word", 2)
	if got := buf.String(); got != want {
		t.Errorf("ShowStats() =\n%q\nwant\n%q", got, want)
	}
}

func TestShowStatsGroupCollision(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.Bump("tokens")
	l.Bump("tokens/word")

	l.ShowStats()

	out := buf.String()
	if !strings.Contains(out, fmt.Sprintf("%-30s%12d\n", "  tokens", 1)) {
		t.Errorf("missing plain tokens line in %q", out)
	}
	if !strings.Contains(out, fmt.Sprintf("%-30s%12d\n", "  tokens [group]", 1)) {
		t.Errorf("missing group line in %q", out)
	}
}

func TestSlogExtraction(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithVerbose(2))

	l.Slog().Debug("deep detail")
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "deep detail") {
		t.Errorf("slog output = %q", out)
	}
}

func TestSlogFollowsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.Slog().Debug("hidden")
	l.Slog().Info("also hidden")
	if buf.Len() != 0 {
		t.Errorf("quiet slog wrote %q", buf.String())
	}

	l.Slog().Warn("warned")
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("warn output = %q", buf.String())
	}

	buf.Reset()
	l.SetVerbose(2)
	l.Slog().Debug("now visible")
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("debug after SetVerbose = %q", buf.String())
	}
}

func TestColoredMessages(t *testing.T) {
	var buf bytes.Buffer
	cm := colorize.New(colorize.WithProfile(termenv.ANSI))
	l := New(WithWriter(&buf), WithColors(cm))

	l.VMsg(0, "hello")
	if got := buf.String(); got != "\x1b[34mhello\x1b[0m\n" {
		t.Errorf("colored VMsg = %q", got)
	}

	buf.Reset()
	l.EMsg(0, "boom")
	if got := buf.String(); got != "\x1b[1;37;41mERROR: boom\x1b[0m\n" {
		t.Errorf("colored EMsg = %q", got)
	}

	buf.Reset()
	l.HMsg(0, "Head")
	if got := buf.String(); got != "\n\x1b[35;47m******* Head\x1b[0m\n" {
		t.Errorf("colored HMsg = %q", got)
	}
}
