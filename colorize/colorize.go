// Package colorize maps simple color names to ANSI terminal escapes for
// log and help-text decoration. Names follow an "effect/fg/bg" grammar:
// "red", "bold/red", "red/white", "bold/red/white", "/blue" for a bare
// background, "bold//blue" for an effect over a background, and "!bold"
// to switch an effect off again.
package colorize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// ErrUnknownName indicates a color name outside the grammar.
var ErrUnknownName = errors.New("colorize: unknown name")

// colorCodes holds the classic ANSI color numbers. Foreground escapes add
// 30, background escapes add 40; "default" selects the terminal's own
// color (39/49).
var colorCodes = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"default": 9,
}

// effectCodes holds the SGR attribute numbers. Adding 20 gives the code
// that turns the effect off, which is what "!effect" names produce.
var effectCodes = map[string]int{
	"bold":      1,
	"faint":     2,
	"italic":    3,
	"underline": 4,
	"blink":     5,
	"fblink":    6,
	"reverse":   7,
	"concealed": 8,
	"strike":    9,
}

const defaultColor = 9

// colorSpec is a parsed color name.
type colorSpec struct {
	effect  string
	negated bool
	fg, bg  string
	off     bool
}

// Manager resolves color names and renders text with them. The zero
// profile is termenv.ANSI; termenv.Ascii disables coloring entirely.
// Register aliases before sharing a Manager across goroutines.
type Manager struct {
	profile  termenv.Profile
	renderer *lipgloss.Renderer
	effects  map[string]int
	aliases  map[string]colorSpec
}

// Option adjusts a Manager under construction.
type Option func(*Manager)

// WithProfile sets the color profile. termenv.Ascii turns all rendering
// into plain text.
func WithProfile(p termenv.Profile) Option {
	return func(m *Manager) { m.profile = p }
}

// WithEffects restricts the usable effects to the named subset. Names
// outside the standard set are ignored.
func WithEffects(names ...string) Option {
	return func(m *Manager) { m.effects = lo.PickByKeys(effectCodes, names) }
}

// New builds a Manager. When the NOBLINK environment variable is set,
// the blink and fblink effects are removed no matter what the options
// said.
func New(opts ...Option) *Manager {
	m := &Manager{
		profile: termenv.ANSI,
		aliases: make(map[string]colorSpec),
	}
	m.effects = make(map[string]int, len(effectCodes))
	for name, code := range effectCodes {
		m.effects[name] = code
	}

	for _, opt := range opts {
		opt(m)
	}

	if _, noBlink := os.LookupEnv("NOBLINK"); noBlink {
		delete(m.effects, "blink")
		delete(m.effects, "fblink")
	}

	m.renderer = lipgloss.NewRenderer(io.Discard)
	m.renderer.SetColorProfile(m.profile)
	return m
}

// Colorize renders text in the named color. Unknown names come back as
// "<name>text</name>" whatever the profile, so a bad name shows up in
// the output instead of vanishing.
func (m *Manager) Colorize(name, text string) string {
	spec, ok := m.lookup(name)
	if !ok {
		return "<" + name + ">" + text + "</" + name + ">"
	}
	if m.profile == termenv.Ascii {
		return text
	}
	return m.render(spec, text)
}

// Uncolorize strips ANSI escape sequences from s.
func (m *Manager) Uncolorize(s string) string {
	return ansi.Strip(s)
}

// UncoloredLen returns the display width of s with escape sequences
// ignored.
func (m *Manager) UncoloredLen(s string) int {
	return ansi.StringWidth(s)
}

// IsName reports whether name is resolvable.
func (m *Manager) IsName(name string) bool {
	_, ok := m.lookup(name)
	return ok
}

// String returns the escape sequence that switches to the named color,
// or "" for unknown names and the Ascii profile.
func (m *Manager) String(name string) string {
	spec, ok := m.lookup(name)
	if !ok || m.profile == termenv.Ascii {
		return ""
	}
	return "\x1b[" + strings.Join(m.codes(spec), ";") + "m"
}

// AddAlias makes newName a synonym for oldName. The meaning is captured
// at registration, so redefining oldName later does not move the alias.
func (m *Manager) AddAlias(newName, oldName string) error {
	spec, ok := m.lookup(oldName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, oldName)
	}
	m.aliases[newName] = spec
	return nil
}

// Names returns the base color and effect vocabulary plus registered
// aliases, sorted. Combinations are not enumerated.
func (m *Manager) Names() []string {
	names := []string{"off"}
	names = append(names, lo.Keys(colorCodes)...)
	for _, name := range lo.Keys(m.effects) {
		names = append(names, name, "!"+name)
	}
	names = append(names, lo.Keys(m.aliases)...)
	sort.Strings(names)
	return names
}

func (m *Manager) lookup(name string) (colorSpec, bool) {
	if spec, ok := m.aliases[name]; ok {
		return spec, true
	}
	return m.parse(name)
}

// parse maps a name onto the grammar. Empty segments carry meaning:
// "/red" is a background, "bold//blue" an effect over a background.
func (m *Manager) parse(name string) (colorSpec, bool) {
	if name == "off" {
		return colorSpec{off: true}, true
	}

	parts := strings.Split(name, "/")
	switch len(parts) {
	case 1:
		if m.isColor(parts[0]) {
			return colorSpec{fg: parts[0]}, true
		}
		if effect, negated, ok := m.parseEffect(parts[0]); ok {
			return colorSpec{effect: effect, negated: negated}, true
		}
	case 2:
		if parts[0] == "" && m.isColor(parts[1]) {
			return colorSpec{bg: parts[1]}, true
		}
		if effect, negated, ok := m.parseEffect(parts[0]); ok && m.isColor(parts[1]) {
			return colorSpec{effect: effect, negated: negated, fg: parts[1]}, true
		}
		if m.isColor(parts[0]) && m.isColor(parts[1]) {
			return colorSpec{fg: parts[0], bg: parts[1]}, true
		}
	case 3:
		effect, negated, ok := m.parseEffect(parts[0])
		if !ok {
			return colorSpec{}, false
		}
		if parts[1] == "" && m.isColor(parts[2]) {
			return colorSpec{effect: effect, negated: negated, bg: parts[2]}, true
		}
		if m.isColor(parts[1]) && m.isColor(parts[2]) {
			return colorSpec{effect: effect, negated: negated, fg: parts[1], bg: parts[2]}, true
		}
	}
	return colorSpec{}, false
}

func (m *Manager) isColor(name string) bool {
	_, ok := colorCodes[name]
	return ok
}

func (m *Manager) parseEffect(name string) (effect string, negated bool, ok bool) {
	negated = strings.HasPrefix(name, "!")
	effect = strings.TrimPrefix(name, "!")
	_, ok = m.effects[effect]
	return effect, negated, ok
}

// codes returns the SGR numbers for a spec in effect, foreground,
// background order.
func (m *Manager) codes(spec colorSpec) []string {
	if spec.off {
		return []string{"0"}
	}
	var out []string
	if spec.effect != "" {
		code := m.effects[spec.effect]
		if spec.negated {
			code += 20
		}
		out = append(out, strconv.Itoa(code))
	}
	if spec.fg != "" {
		out = append(out, strconv.Itoa(30+colorCodes[spec.fg]))
	}
	if spec.bg != "" {
		out = append(out, strconv.Itoa(40+colorCodes[spec.bg]))
	}
	return out
}

// render styles text through lipgloss where it has a setter for the
// attribute and falls back to a raw SGR prefix for the codes it does
// not model (fblink, concealed, negated effects, the default color).
func (m *Manager) render(spec colorSpec, text string) string {
	if spec.off {
		return "\x1b[0m" + text + "\x1b[0m"
	}

	style := m.renderer.NewStyle()
	styled := false
	var raw []string

	if spec.effect != "" {
		code := m.effects[spec.effect]
		switch {
		case spec.negated:
			raw = append(raw, strconv.Itoa(20+code))
		case spec.effect == "bold":
			style, styled = style.Bold(true), true
		case spec.effect == "faint":
			style, styled = style.Faint(true), true
		case spec.effect == "italic":
			style, styled = style.Italic(true), true
		case spec.effect == "underline":
			style, styled = style.Underline(true), true
		case spec.effect == "blink":
			style, styled = style.Blink(true), true
		case spec.effect == "reverse":
			style, styled = style.Reverse(true), true
		case spec.effect == "strike":
			style, styled = style.Strikethrough(true), true
		default:
			raw = append(raw, strconv.Itoa(code))
		}
	}
	if spec.fg != "" {
		if n := colorCodes[spec.fg]; n == defaultColor {
			raw = append(raw, "39")
		} else {
			style, styled = style.Foreground(lipgloss.Color(strconv.Itoa(n))), true
		}
	}
	if spec.bg != "" {
		if n := colorCodes[spec.bg]; n == defaultColor {
			raw = append(raw, "49")
		} else {
			style, styled = style.Background(lipgloss.Color(strconv.Itoa(n))), true
		}
	}

	out := text
	if styled {
		out = style.Render(text)
	}
	if len(raw) > 0 {
		prefix := "\x1b[" + strings.Join(raw, ";") + "m"
		if styled {
			out = prefix + out
		} else {
			out = prefix + out + "\x1b[0m"
		}
	}
	return out
}
