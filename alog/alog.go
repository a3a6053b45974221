// Package alog is a small application logger for command-line tools:
// verbosity-gated human messages with persistent indentation, headings,
// rules, and named statistic counters, plus an extractable *slog.Logger
// for handing to library code. Human messages go straight to the
// writer; the slog side carries structured records at a level tied to
// the verbosity.
package alog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jamesainslie/go-textkit/colorize"
)

// Styles for the three message kinds when a color manager is attached.
const (
	vStyle = "blue"
	eStyle = "bold/white/red"
	hStyle = "magenta/white"
)

// Logger writes verbosity-gated messages and keeps statistic counters.
// All methods are safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	sl        *slog.Logger
	level     *slog.LevelVar
	verbose   int
	indent    int
	indentStr string
	width     int
	lineWidth int
	colors    *colorize.Manager
	stats     map[string]int
	errors    int
}

// Option adjusts a Logger under construction.
type Option func(*Logger)

// WithWriter sets the output destination (default os.Stderr).
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.w = w }
}

// WithVerbose sets the initial verbosity, typically the count of -v
// flags.
func WithVerbose(v int) Option {
	return func(l *Logger) { l.verbose = v }
}

// WithColors attaches a color manager for message decoration.
func WithColors(m *colorize.Manager) Option {
	return func(l *Logger) { l.colors = m }
}

// WithIndentString sets the string repeated per indentation level
// (default two spaces).
func WithIndentString(s string) Option {
	return func(l *Logger) { l.indentStr = s }
}

// WithRuleWidth sets the width of Rule output (default 79).
func WithRuleWidth(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.width = n
		}
	}
}

// New builds a Logger.
func New(opts ...Option) *Logger {
	l := &Logger{
		w:         os.Stderr,
		indentStr: "  ",
		width:     79,
		lineWidth: 30,
		stats:     make(map[string]int),
		level:     new(slog.LevelVar),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.level.Set(slogLevel(l.verbose))
	l.sl = slog.New(slog.NewTextHandler(l.w, &slog.HandlerOptions{Level: l.level}))
	return l
}

// slogLevel maps the verbosity counter onto slog levels: quiet runs at
// Warn, -v at Info, -vv and up at Debug.
func slogLevel(verbose int) slog.Level {
	switch {
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Slog returns the structured logger, for injection into library code.
func (l *Logger) Slog() *slog.Logger {
	return l.sl
}

// SetVerbose changes the verbosity; the structured side follows.
func (l *Logger) SetVerbose(v int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
	l.level.Set(slogLevel(v))
}

// Verbose returns the current verbosity.
func (l *Logger) Verbose() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

// VMsg prints a progress message when verbosity is at least level.
func (l *Logger) VMsg(level int, format string, args ...any) {
	l.msg(level, vStyle, "", false, format, args...)
}

// HMsg prints a heading, set off by a blank line and a star prefix,
// when verbosity is at least level.
func (l *Logger) HMsg(level int, format string, args ...any) {
	l.msg(level, hStyle, "******* ", true, format, args...)
}

// EMsg prints an error message when verbosity is at least level. The
// error count rises either way.
func (l *Logger) EMsg(level int, format string, args ...any) {
	l.mu.Lock()
	l.errors++
	l.mu.Unlock()
	l.msg(level, eStyle, "ERROR: ", false, format, args...)
}

// Errors returns how many times EMsg has been called, shown or not.
func (l *Logger) Errors() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

// Rule draws a horizontal line of ch when verbosity is at least level.
// Empty ch draws "=".
func (l *Logger) Rule(level int, ch string) {
	if ch == "" {
		ch = "="
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose < level {
		return
	}
	n := l.width / len([]rune(ch))
	if n < 1 {
		n = 1
	}
	fmt.Fprintln(l.w, strings.Repeat(ch, n))
}

func (l *Logger) msg(level int, style, prefix string, blankBefore bool, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose < level {
		return
	}
	line := strings.Repeat(l.indentStr, l.indent) + prefix + fmt.Sprintf(format, args...)
	if l.colors != nil {
		line = l.colors.Colorize(style, line)
	}
	if blankBefore {
		fmt.Fprintln(l.w)
	}
	fmt.Fprintln(l.w, line)
}

// Push raises the indentation applied to subsequent messages.
func (l *Logger) Push() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.indent++
}

// Pop lowers the indentation, stopping at zero.
func (l *Logger) Pop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.indent > 0 {
		l.indent--
	}
}

// SetIndent forces the indentation level.
func (l *Logger) SetIndent(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 {
		n = 0
	}
	l.indent = n
}

// Indent returns the current indentation level.
func (l *Logger) Indent() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indent
}

// Bump increments the named statistic, creating it at 1.
func (l *Logger) Bump(name string) {
	l.BumpBy(name, 1)
}

// BumpBy increments the named statistic by n.
func (l *Logger) BumpBy(name string, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats[name] += n
}

// SetStat forces the named statistic to v.
func (l *Logger) SetStat(name string, v int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats[name] = v
}

// Stat returns the named statistic, zero when never touched.
func (l *Logger) Stat(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats[name]
}

// ShowStats prints all non-zero statistics, sorted. Names containing
// "/" also accumulate into a total under the part before the slash, so
// Bump("tokens/word") and Bump("tokens/punct") report a combined
// "tokens" line.
func (l *Logger) ShowStats() {
	l.mu.Lock()
	defer l.mu.Unlock()

	display := make(map[string]int, len(l.stats))
	for name, v := range l.stats {
		display[name] = v
	}
	for name, v := range l.stats {
		group, _, found := strings.Cut(name, "/")
		if !found {
			continue
		}
		if _, taken := l.stats[group]; taken {
			group += " [group]"
		}
		display[group] += v
	}

	names := make([]string, 0, len(display))
	for name, v := range display {
		if v != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(l.w, "Summary of message statistics:")
	for _, name := range names {
		fmt.Fprintf(l.w, "%-*s%*d\n", l.lineWidth, "  "+name, 12, display[name])
	}
}
