package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	ellipsisRunes = map[rune]bool{
		0x0EAF: true, // LAO ELLIPSIS
		0x1801: true, // MONGOLIAN ELLIPSIS
		0x2026: true, // HORIZONTAL ELLIPSIS
		0x22EE: true, // VERTICAL ELLIPSIS
		0x22EF: true, // MIDLINE HORIZONTAL ELLIPSIS
	}

	deleteRunes = map[rune]bool{
		0x00AD: true, // SOFT HYPHEN
		0x1806: true, // MONGOLIAN TODO SOFT HYPHEN
		0x2027: true, // HYPHENATION POINT
	}

	doubleRunes = map[rune]bool{
		0x2014: true, // EM DASH
		0x30A0: true, // KATAKANA-HIRAGANA DOUBLE HYPHEN
		0xFE58: true, // SMALL EM DASH
	}
)

// Regularize reduces typographic variants to plain ASCII forms: ellipses
// to commas, space separators to spaces, dashes to hyphens, curly and
// angle quotes to straight quotes, em dashes to "--", and soft hyphens
// removed. Clause-level dashes are checked before the general dash class
// so they keep their double form.
func Regularize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case ellipsisRunes[r]:
			b.WriteByte(',')
		case deleteRunes[r]:
			// dropped
		case doubleRunes[r]:
			b.WriteString("--")
		case unicode.Is(unicode.Pd, r):
			b.WriteByte('-')
		case unicode.Is(unicode.Pi, r), unicode.Is(unicode.Pf, r):
			b.WriteByte('"')
		case unicode.Is(unicode.Zs, r):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExpandLigatures replaces Latin ligature and digraph characters with
// their letter sequences.
func ExpandLigatures(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(expandLigature(r))
	}
	return b.String()
}

// ParseForm maps a normalization form name to its x/text form.
func ParseForm(name string) (norm.Form, error) {
	switch name {
	case "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	}
	return 0, fmt.Errorf("unknown normalization form %q", name)
}

var entityPattern = regexp.MustCompile(`&[#\w]\w+;`)

// HasEntitySyntax reports whether s appears to contain unexpanded XML or
// HTML entity references.
func HasEntitySyntax(s string) bool {
	return entityPattern.MatchString(s)
}
