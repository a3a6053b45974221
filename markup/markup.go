// Package markup renders a small wiki-style help dialect for terminal
// display. Line-initial codes mark block structure: =Title= headings,
// "*" and "#" list items, ":" indentation, ";term:def" definitions,
// "----" rules, and indented lines kept verbatim. Inline '''bold''',
// ''italic'', and `code` spans are styled when a color manager is
// attached and silently unwrapped when not. Everything else is
// paragraph text, joined across adjacent lines and wrapped to width
// with blank lines preserved.
package markup

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jamesainslie/go-textkit/colorize"
)

// Styles used when a color manager is attached. Bold italic renders as
// bold red since the grammar carries one effect per name.
const (
	headStyle       = "bold/blue"
	markerStyle     = "bold/blue"
	termStyle       = "bold"
	boldStyle       = "bold"
	italicStyle     = "italic"
	boldItalicStyle = "bold/red"
	codeStyle       = "cyan"
)

var (
	commentRe = regexp.MustCompile(`^\s*<!--.*-->\s*$`)
	ruleRe    = regexp.MustCompile(`^(-{3,}|={3,}|\*{3,})\s*$`)
	headRe    = regexp.MustCompile(`^(={1,6})\s*(.+?)\s*=+\s*$`)
	itemRe    = regexp.MustCompile(`^([*#]+)\s*(.*)$`)
	defRe     = regexp.MustCompile(`^;\s*([^:]+?)\s*(?::\s*(.*))?$`)
	indentRe  = regexp.MustCompile(`^(:+)\s*(.*)$`)

	boldItalicRe = regexp.MustCompile(`'''''(.*?)'''''`)
	boldRe       = regexp.MustCompile(`'''(.*?)'''`)
	italicRe     = regexp.MustCompile(`''(.*?)''`)
	codeRe       = regexp.MustCompile("`([^`]*)`")
)

var bullets = []string{"*", "-", "o", "."}

// numbering gives the ordered-list counter style per nesting level, the
// last entry covering everything deeper.
var numbering = []string{"decimal", "lower-alpha", "lower-roman"}

type blockType int

const (
	blockText blockType = iota
	blockHead
	blockItem
	blockIndent
	blockDef
	blockVerbatim
	blockRule
)

type block struct {
	typ     blockType
	text    string
	level   int
	ordered bool
	term    string
	lines   []string
	char    string
	blanks  int
}

// Renderer lays out marked-up text for a fixed-width display.
type Renderer struct {
	width      int
	indentSize int
	tabSize    int
	colors     *colorize.Manager
}

// Option adjusts a Renderer under construction.
type Option func(*Renderer)

// WithWidth sets the wrap width, overriding the WIDTH environment
// variable and the default of 80.
func WithWidth(w int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.width = w
		}
	}
}

// WithIndentSize sets the per-level indentation increment.
func WithIndentSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.indentSize = n
		}
	}
}

// WithColors attaches a color manager for headings, markers, and inline
// emphasis. Without one, output is plain text and inline markers are
// just removed.
func WithColors(m *colorize.Manager) Option {
	return func(r *Renderer) { r.colors = m }
}

// New builds a Renderer. Width comes from the WIDTH environment
// variable when set, else 80; WithWidth wins over both.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:      80,
		indentSize: 4,
		tabSize:    8,
	}
	if env := os.Getenv("WIDTH"); env != "" {
		if w, err := strconv.Atoi(env); err == nil && w > 0 {
			r.width = w
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out text and returns the display form. Output lines are
// newline-terminated; blank lines between input blocks are kept.
func (r *Renderer) Render(text string) string {
	blocks := r.parse(text)

	var out strings.Builder
	counts := make([]int, 12)
	for _, b := range blocks {
		for i := 0; i < b.blanks; i++ {
			out.WriteByte('\n')
		}
		switch b.typ {
		case blockHead:
			resetCounts(counts, 0)
			out.WriteString(r.style(headStyle, r.inline(b.text)))
			out.WriteByte('\n')
		case blockRule:
			out.WriteString(strings.Repeat(b.char, r.width))
			out.WriteByte('\n')
		case blockItem:
			r.renderItem(&out, b, counts)
		case blockIndent:
			pad := strings.Repeat(" ", r.indentSize*b.level)
			r.writeWrapped(&out, r.inline(b.text), pad, pad)
		case blockDef:
			out.WriteString(r.style(termStyle, r.inline(b.term)))
			out.WriteByte('\n')
			if b.text != "" {
				pad := strings.Repeat(" ", r.indentSize)
				r.writeWrapped(&out, r.inline(b.text), pad, pad)
			}
		case blockVerbatim:
			for _, line := range b.lines {
				out.WriteString(line)
				out.WriteByte('\n')
			}
		default:
			r.writeWrapped(&out, r.inline(b.text), "", "")
		}
	}
	return out.String()
}

// parse groups lines into blocks. Plain lines with no blank line
// between them continue the preceding paragraph or list item.
func (r *Renderer) parse(text string) []block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var blocks []block
	blanks := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		line = expandTabs(line, r.tabSize)

		if commentRe.MatchString(line) {
			continue
		}

		var b block
		switch {
		case line[0] == ' ':
			if blanks == 0 && len(blocks) > 0 && blocks[len(blocks)-1].typ == blockVerbatim {
				blocks[len(blocks)-1].lines = append(blocks[len(blocks)-1].lines, line)
				continue
			}
			b = block{typ: blockVerbatim, lines: []string{line}}
		case ruleRe.MatchString(line):
			b = block{typ: blockRule, char: line[:1]}
		case headRe.MatchString(line):
			m := headRe.FindStringSubmatch(line)
			b = block{typ: blockHead, text: m[2], level: len(m[1])}
		case line[0] == '*' || line[0] == '#':
			m := itemRe.FindStringSubmatch(line)
			b = block{typ: blockItem, text: m[2], level: len(m[1]), ordered: strings.HasSuffix(m[1], "#")}
		case line[0] == ';':
			m := defRe.FindStringSubmatch(line)
			if m == nil {
				b = block{typ: blockText, text: strings.TrimSpace(line)}
				break
			}
			b = block{typ: blockDef, term: m[1], text: m[2]}
		case line[0] == ':':
			m := indentRe.FindStringSubmatch(line)
			b = block{typ: blockIndent, text: m[2], level: len(m[1])}
		default:
			if blanks == 0 && len(blocks) > 0 {
				last := &blocks[len(blocks)-1]
				if last.typ == blockText || last.typ == blockItem {
					last.text += " " + strings.TrimSpace(line)
					continue
				}
			}
			b = block{typ: blockText, text: strings.TrimSpace(line)}
		}
		b.blanks = blanks
		blanks = 0
		blocks = append(blocks, b)
	}
	return blocks
}

func (r *Renderer) renderItem(out *strings.Builder, b block, counts []int) {
	pad := strings.Repeat(" ", r.indentSize*b.level)

	var marker string
	if b.ordered {
		if b.level < len(counts) {
			counts[b.level]++
			resetCounts(counts, b.level+1)
			marker = formatNumber(counts[b.level], numberStyle(b.level)) + "."
		}
	} else {
		marker = bullets[clamp(b.level-1, len(bullets))]
	}

	first := pad + r.style(markerStyle, marker) + " "
	cont := pad + strings.Repeat(" ", ansi.StringWidth(marker)+1)
	r.writeWrapped(out, r.inline(b.text), first, cont)
}

func (r *Renderer) writeWrapped(out *strings.Builder, text, first, cont string) {
	for _, line := range r.wrap(text, first, cont) {
		out.WriteString(line)
		out.WriteByte('\n')
	}
}

// wrap greedily fills lines up to the configured width, measuring with
// escape sequences ignored. A word longer than the width stays whole on
// its own line.
func (r *Renderer) wrap(text, first, cont string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		if strings.TrimSpace(first) == "" {
			return nil
		}
		return []string{strings.TrimRight(first, " ")}
	}

	var lines []string
	line := first + words[0]
	used := ansi.StringWidth(first) + ansi.StringWidth(words[0])
	for _, w := range words[1:] {
		wl := ansi.StringWidth(w)
		if used+1+wl <= r.width {
			line += " " + w
			used += 1 + wl
			continue
		}
		lines = append(lines, line)
		line = cont + w
		used = ansi.StringWidth(cont) + wl
	}
	return append(lines, line)
}

// inline applies the span markup, longest fences first so bold italic
// is not eaten by the shorter patterns.
func (r *Renderer) inline(text string) string {
	text = r.replaceSpan(text, boldItalicRe, 5, boldItalicStyle)
	text = r.replaceSpan(text, boldRe, 3, boldStyle)
	text = r.replaceSpan(text, italicRe, 2, italicStyle)
	text = r.replaceSpan(text, codeRe, 1, codeStyle)
	return text
}

func (r *Renderer) replaceSpan(text string, re *regexp.Regexp, fence int, style string) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return r.style(style, m[fence:len(m)-fence])
	})
}

func (r *Renderer) style(name, text string) string {
	if r.colors == nil {
		return text
	}
	return r.colors.Colorize(name, text)
}

func numberStyle(level int) string {
	return numbering[clamp(level-1, len(numbering))]
}

func formatNumber(n int, style string) string {
	switch style {
	case "lower-alpha":
		return string(rune('a' + (n-1)%26))
	case "upper-alpha":
		return string(rune('A' + (n-1)%26))
	case "lower-roman":
		return strings.ToLower(roman(n))
	case "upper-roman":
		return roman(n)
	default:
		return strconv.Itoa(n)
	}
}

var romanValues = []struct {
	n int
	s string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.n {
			b.WriteString(rv.s)
			n -= rv.n
		}
	}
	return b.String()
}

func resetCounts(counts []int, from int) {
	for i := from; i < len(counts); i++ {
		counts[i] = 0
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func expandTabs(line string, size int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := size - col%size
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
