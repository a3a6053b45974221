package normalize

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Category is one normalization class: a name, a rune matcher, and the
// canonical substitute the Unify disposition writes for each match.
// When unify is set, it overrides Sub with a per-rune mapping (used by
// classes like Fullwidth whose canonical form depends on the rune).
type Category struct {
	Name string
	Sub  string
	is   func(rune) bool
	uni  func(rune) string
}

// Matches reports whether r belongs to the category.
func (c Category) Matches(r rune) bool { return c.is(r) }

// Substitute returns the canonical replacement for r under Unify.
func (c Category) Substitute(r rune) string {
	if c.uni != nil {
		return c.uni(r)
	}
	return c.Sub
}

func inTable(t *unicode.RangeTable) func(rune) bool {
	return func(r rune) bool { return unicode.Is(t, r) }
}

// unassigned reports whether r is in no Unicode general category (Cn).
// The unicode package carries no table for Cn, so it is the complement
// of the seven cover categories.
func unassigned(r rune) bool {
	return !unicode.In(r, unicode.C, unicode.L, unicode.M, unicode.N,
		unicode.P, unicode.S, unicode.Z)
}

// accented reports whether r is a combining mark or decomposes to one.
func accented(r rune) bool {
	if unicode.Is(unicode.Mn, r) {
		return true
	}
	d := norm.NFKD.String(string(r))
	if d == string(r) {
		return false
	}
	for _, dr := range d {
		if unicode.Is(unicode.Mn, dr) {
			return true
		}
	}
	return false
}

// stripMarks decomposes r and drops the combining marks, so "é" becomes "e".
func stripMarks(r rune) string {
	var out []rune
	for _, dr := range norm.NFKD.String(string(r)) {
		if !unicode.Is(unicode.Mn, dr) {
			out = append(out, dr)
		}
	}
	return string(out)
}

// ligatures maps Latin ligature and digraph characters to their expansions.
var ligatures = map[rune]string{
	0x0132: "IJ",
	0x0133: "ij",
	0x0152: "OE",
	0x0153: "oe",
	0xA7F9: "oe",
	0xFB00: "ff",
	0xFB01: "fi",
	0xFB02: "fl",
	0xFB03: "ffi",
	0xFB04: "ffl",
	0xFB05: "st",
	0xFB06: "st",
}

func isLigature(r rune) bool {
	_, ok := ligatures[r]
	return ok
}

func expandLigature(r rune) string {
	if s, ok := ligatures[r]; ok {
		return s
	}
	return string(r)
}

// toHalfwidth maps a fullwidth-forms rune to its ASCII counterpart where
// one exists, falling back to compatibility decomposition.
func toHalfwidth(r rune) string {
	if r >= 0xFF01 && r <= 0xFF5E {
		return string(r - 0xFF01 + 0x21)
	}
	if r == 0x3000 {
		return " "
	}
	return norm.NFKD.String(string(r))
}

const (
	softHyphen          = 0x00AD
	mongolianSoftHyphen = 0x1806
)

// categories is the fixed registration-order table. The Unicode general
// categories come first, then the custom classes. Dispositions apply in
// this order.
var categories = []Category{
	{Name: "Cc", Sub: "?", is: inTable(unicode.Cc)},
	{Name: "Cf", Sub: "?", is: inTable(unicode.Cf)},
	{Name: "Cn", Sub: "?", is: unassigned},
	{Name: "Co", Sub: "?", is: inTable(unicode.Co)},
	{Name: "Cs", Sub: "?", is: inTable(unicode.Cs)},
	{Name: "Ll", Sub: "a", is: inTable(unicode.Ll)},
	{Name: "Lm", Sub: "A", is: inTable(unicode.Lm)},
	{Name: "Lo", Sub: "A", is: inTable(unicode.Lo)},
	{Name: "Lt", Sub: "Fi", is: inTable(unicode.Lt)},
	{Name: "Lu", Sub: "A", is: inTable(unicode.Lu)},
	{Name: "Mc", Sub: " ", is: inTable(unicode.Mc)},
	{Name: "Me", Sub: " ", is: inTable(unicode.Me)},
	{Name: "Mn", Sub: " ", is: inTable(unicode.Mn)},
	{Name: "Nd", Sub: "9", is: inTable(unicode.Nd)},
	{Name: "Nl", Sub: "9", is: inTable(unicode.Nl)},
	{Name: "No", Sub: "9", is: inTable(unicode.No)},
	{Name: "Pc", Sub: "_", is: inTable(unicode.Pc)},
	{Name: "Pd", Sub: "-", is: inTable(unicode.Pd)},
	{Name: "Pe", Sub: ")", is: inTable(unicode.Pe)},
	{Name: "Pf", Sub: "'", is: inTable(unicode.Pf)},
	{Name: "Pi", Sub: "`", is: inTable(unicode.Pi)},
	{Name: "Po", Sub: "*", is: inTable(unicode.Po)},
	{Name: "Ps", Sub: "(", is: inTable(unicode.Ps)},
	{Name: "Sc", Sub: "$", is: inTable(unicode.Sc)},
	{Name: "Sk", Sub: "#", is: inTable(unicode.Sk)},
	{Name: "Sm", Sub: "=", is: inTable(unicode.Sm)},
	{Name: "So", Sub: "#", is: inTable(unicode.So)},
	{Name: "Zl", Sub: " ", is: inTable(unicode.Zl)},
	{Name: "Zp", Sub: " ", is: inTable(unicode.Zp)},
	{Name: "Zs", Sub: " ", is: inTable(unicode.Zs)},

	{Name: "Accent", Sub: "", is: accented, uni: stripMarks},
	{Name: "Control_0", Sub: " ", is: func(r rune) bool { return r <= 0x1F }},
	{Name: "Control_1", Sub: " ", is: func(r rune) bool { return r >= 0x80 && r <= 0x9F }},
	{Name: "Digit", Sub: "9", is: func(r rune) bool { return r >= '0' && r <= '9' }},
	{Name: "Fullwidth", Sub: "", is: func(r rune) bool { return r >= 0xFF00 && r <= 0xFFEF || r == 0x3000 }, uni: toHalfwidth},
	{Name: "Ligature", Sub: "", is: isLigature, uni: expandLigature},
	{Name: "Math", Sub: "=", is: inTable(unicode.Sm)},
	{Name: "Nbsp", Sub: " ", is: func(r rune) bool { return r == 0xA0 }},
	{Name: "Soft_Hyphen", Sub: "", is: func(r rune) bool { return r == softHyphen || r == mongolianSoftHyphen }},
}

// Categories returns the category table in registration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup resolves a category by short code or long alias.
func Lookup(name string) (Category, bool) {
	if alias, ok := longNames[name]; ok {
		name = alias
	}
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Covers maps cover-category names to the subcategories they fan out to.
// Setting a cover is shorthand for setting every member.
var Covers = map[string][]string{
	"C":  {"Cc", "Cf", "Cn", "Co", "Cs"},
	"L":  {"Ll", "Lm", "Lo", "Lt", "Lu"},
	"LC": {"Ll", "Lt", "Lu"},
	"M":  {"Mc", "Me", "Mn"},
	"N":  {"Nd", "Nl", "No"},
	"P":  {"Pc", "Pd", "Pe", "Pf", "Pi", "Po", "Ps"},
	"S":  {"Sc", "Sk", "Sm", "So"},
	"Z":  {"Zl", "Zp", "Zs"},
}

// longNames maps the spelled-out Unicode category names to short codes.
// Cover aliases map to cover names and fan out like them.
var longNames = map[string]string{
	"Other":                 "C",
	"Control":               "Cc",
	"Format":                "Cf",
	"Unassigned":            "Cn",
	"Private_Use":           "Co",
	"Surrogate":             "Cs",
	"Letter":                "L",
	"Cased_Letter":          "LC",
	"Lowercase_Letter":      "Ll",
	"Modifier_Letter":       "Lm",
	"Other_Letter":          "Lo",
	"Titlecase_Letter":      "Lt",
	"Uppercase_Letter":      "Lu",
	"Mark":                  "M",
	"Spacing_Mark":          "Mc",
	"Enclosing_Mark":        "Me",
	"Nonspacing_Mark":       "Mn",
	"Number":                "N",
	"Decimal_Number":        "Nd",
	"Letter_Number":         "Nl",
	"Other_Number":          "No",
	"Punctuation":           "P",
	"Connector_Punctuation": "Pc",
	"Dash_Punctuation":      "Pd",
	"Close_Punctuation":     "Pe",
	"Final_Punctuation":     "Pf",
	"Initial_Punctuation":   "Pi",
	"Other_Punctuation":     "Po",
	"Open_Punctuation":      "Ps",
	"Symbol":                "S",
	"Currency_Symbol":       "Sc",
	"Modifier_Symbol":       "Sk",
	"Math_Symbol":           "Sm",
	"Other_Symbol":          "So",
	"Separator":             "Z",
	"Line_Separator":        "Zl",
	"Paragraph_Separator":   "Zp",
	"Space_Separator":       "Zs",
}

// ResolveName canonicalizes an option name: long aliases become short
// codes, and cover names are reported as such with their members.
func ResolveName(name string) (canonical string, members []string, ok bool) {
	if alias, found := longNames[name]; found {
		name = alias
	}
	if members, found := Covers[name]; found {
		return name, members, true
	}
	if _, found := Lookup(name); found {
		return name, nil, true
	}
	return "", nil, false
}
