// Package normalize implements the character-class normalization stage of
// the tokenizer pipeline: per-category dispositions over Unicode general
// categories and custom character classes, plus the general Unicode
// preparation passes (punctuation regularization, ligature expansion,
// normalization forms) and escape expansion.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Config selects the behavior of a Normalizer.
type Config struct {
	// Dispositions maps category names (short codes or long aliases) to
	// the action taken on their characters. Absent categories keep.
	Dispositions map[string]Disposition

	// AsciiOnly short-circuits category handling: non-ASCII characters
	// are discarded and control characters become spaces.
	AsciiOnly bool

	// Regularize reduces variant spaces, dashes, quotes, and ellipses to
	// plain ASCII forms before category handling.
	Regularize bool

	// Ligatures expands Latin ligature characters before category handling.
	Ligatures bool

	// Form is the Unicode normalization form applied before category
	// handling: "", "NFC", "NFD", "NFKC", or "NFKD".
	Form string
}

type step struct {
	cat  Category
	disp Disposition
}

// Normalizer applies a configured set of dispositions. Configuration is
// validated up front; Normalize itself cannot fail.
type Normalizer struct {
	steps      []step
	asciiOnly  bool
	regularize bool
	ligatures  bool
	form       norm.Form
	hasForm    bool
}

// New validates cfg and builds a Normalizer. Unknown category names and
// malformed forms error here, not during Normalize.
func New(cfg Config) (*Normalizer, error) {
	n := &Normalizer{
		asciiOnly:  cfg.AsciiOnly,
		regularize: cfg.Regularize,
		ligatures:  cfg.Ligatures,
	}

	if cfg.Form != "" {
		f, err := ParseForm(cfg.Form)
		if err != nil {
			return nil, err
		}
		n.form = f
		n.hasForm = true
	}

	resolved := make(map[string]Disposition, len(cfg.Dispositions))
	for name, d := range cfg.Dispositions {
		canonical, members, ok := ResolveName(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		if members != nil {
			for _, m := range members {
				resolved[m] = d
			}
			continue
		}
		resolved[canonical] = d
	}

	// Apply in registration order regardless of map order.
	for _, cat := range categories {
		d, ok := resolved[cat.Name]
		if !ok || d == Keep {
			continue
		}
		n.steps = append(n.steps, step{cat: cat, disp: d})
	}

	return n, nil
}

// Normalize runs the configured passes over s.
func (n *Normalizer) Normalize(s string) string {
	if n.asciiOnly {
		return AsciiOnly(s)
	}
	if n.regularize {
		s = Regularize(s)
	}
	if n.ligatures {
		s = ExpandLigatures(s)
	}
	if n.hasForm {
		s = n.form.String(s)
	}
	for _, st := range n.steps {
		s = apply(s, st.cat, st.disp)
	}
	return s
}

func apply(s string, cat Category, d Disposition) string {
	if d == Keep {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !cat.Matches(r) {
			b.WriteRune(r)
			continue
		}
		switch d {
		case Unify:
			b.WriteString(cat.Substitute(r))
		case Delete:
			// dropped
		case Space:
			b.WriteByte(' ')
		case Strip:
			b.WriteString(stripMarks(r))
		case Decompose:
			b.WriteString(norm.NFKD.String(string(r)))
		case Value:
			if v, ok := numericValue(r); ok {
				b.WriteString(v)
			} else {
				b.WriteRune(r)
			}
		case Upper:
			b.WriteRune(unicode.ToUpper(r))
		case Lower:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// AsciiOnly discards all non-ASCII characters and turns control
// characters, including CR, LF, FF, VT, and TAB, into spaces.
func AsciiOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r > 0x7F:
			// dropped
		case r < 0x20 || r == 0x7F:
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
