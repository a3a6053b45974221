package normalize

import (
	"strings"
	"unicode"
)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ShortenRuns caps runs of the same repeated word character at max
// occurrences, so "aaaaaaaargh" with max 3 becomes "aaargh". A max below
// two leaves s unchanged.
func ShortenRuns(s string, max int) string {
	if max < 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev && isWordRune(r) {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= max {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShortenSpaces caps runs of consecutive white-space characters, not
// necessarily all the same, at max occurrences. A max below two leaves s
// unchanged.
func ShortenSpaces(s string, max int) string {
	if max < 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			run++
			if run > max {
				continue
			}
		} else {
			run = 0
		}
		b.WriteRune(r)
	}
	return b.String()
}
