// Package lexicon carries English-specific token data: irregular
// contractions and their expansions, productive contraction suffixes,
// personal titles, abbreviations, calendar names, and ISO 3166 country
// codes. Tokenizers consult it when splitting or expanding contractions
// and when deciding whether a trailing period belongs to an
// abbreviation.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// foldedContractions indexes the irregular table by lowercased key so
// capitalized forms still match.
var foldedContractions = func() map[string]string {
	m := make(map[string]string, len(contractions))
	for k, v := range contractions {
		m[strings.ToLower(k)] = v
	}
	return m
}()

// foldApostrophes maps typographic apostrophes to ASCII so table
// lookups see one spelling.
func foldApostrophes(s string) string {
	return strings.ReplaceAll(s, "’", "'")
}

// Expansion returns the written-out form of an irregular contraction.
// Matching is case-insensitive; a capitalized input capitalizes the
// expansion.
func Expansion(word string) (string, bool) {
	w := foldApostrophes(word)
	if exp, ok := contractions[w]; ok {
		return exp, true
	}
	exp, ok := foldedContractions[strings.ToLower(w)]
	if !ok {
		return "", false
	}
	if first, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(first) {
		return upperFirst(exp), true
	}
	return exp, true
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ExpandContractions rewrites every contraction in s to its expanded
// form: irregular forms through the table, then the productive
// suffixes (n't, 've, 'll, 'n) after any word. Unrecognized words pass
// through untouched.
func ExpandContractions(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordPart(r) {
			b.WriteRune(r)
			i += size
			continue
		}
		j := i + size
		for j < len(s) {
			r2, sz := utf8.DecodeRuneInString(s[j:])
			if !isWordPart(r2) {
				break
			}
			j += sz
		}
		b.WriteString(expandWord(s[i:j]))
		i = j
	}
	return b.String()
}

// isWordPart covers the characters a contraction candidate may span,
// including hyphens for forms like "tug-o'-war".
func isWordPart(r rune) bool {
	return r == '_' || r == '\'' || r == '’' || r == '-' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

func expandWord(w string) string {
	if exp, ok := Expansion(w); ok {
		return exp
	}
	// Double contractions like "they'd've" shed one suffix at a time,
	// so the stem is expanded again.
	if stem, exp, ok := expandSuffix(w); ok {
		return expandWord(stem) + " " + exp
	}
	return w
}

// expandSuffix applies the semi-regular suffix rules to a word the
// irregular table does not know.
func expandSuffix(word string) (stem, exp string, ok bool) {
	w := foldApostrophes(word)
	for _, se := range suffixExpansions {
		if !strings.HasSuffix(w, se.Suffix) {
			continue
		}
		st := w[:len(w)-len(se.Suffix)]
		if !endsInWordRune(st) {
			continue
		}
		return st, se.Expansion, true
	}
	return "", "", false
}

// SplitSuffix detaches a trailing contraction suffix ('ll 've 're 's
// 'd 't) from word without expanding it, returning the stem and the
// suffix.
func SplitSuffix(word string) (stem, suffix string, ok bool) {
	w := foldApostrophes(word)
	for _, suf := range splitSuffixes {
		if !strings.HasSuffix(w, suf) {
			continue
		}
		st := w[:len(w)-len(suf)]
		if !endsInWordRune(st) {
			continue
		}
		return st, suf, true
	}
	return "", "", false
}

func endsInWordRune(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsAbbreviation reports whether w, with or without its final period,
// is a known abbreviation. Matching is case-sensitive.
func IsAbbreviation(w string) bool {
	_, ok := abbrs[trimFinalDot(w)]
	return ok
}

// IsTitle reports whether w is a personal title such as "Dr" or
// "Reverend". Matching is case-sensitive.
func IsTitle(w string) bool {
	_, ok := titles[trimFinalDot(w)]
	return ok
}

// IsMonth reports whether w names a month, spelled out or abbreviated.
func IsMonth(w string) bool {
	return inFolded(foldedMonths, trimFinalDot(w))
}

// IsWeekday reports whether w names a day of the week, spelled out or
// abbreviated.
func IsWeekday(w string) bool {
	return inFolded(foldedWeekdays, trimFinalDot(w))
}

// IsRelativeDay reports whether w is a relative day word like
// "yesterday".
func IsRelativeDay(w string) bool {
	return inFolded(relativeDays, w)
}

// IsDayPart reports whether w names a part of the day like "noon" or
// "vespers".
func IsDayPart(w string) bool {
	return inFolded(dayParts, w)
}

// IsUnitPrefix reports whether w is a metric prefix like "kilo".
func IsUnitPrefix(w string) bool {
	return inFolded(unitPrefixes, w)
}

var (
	foldedMonths   = foldSet(months)
	foldedWeekdays = foldSet(weekdays)
)

func foldSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[strings.ToLower(k)] = struct{}{}
	}
	return out
}

func inFolded(s map[string]struct{}, w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

func trimFinalDot(w string) string {
	return strings.TrimSuffix(w, ".")
}

// WordList is a set of words loaded from a dictionary file, matched
// case-insensitively.
type WordList map[string]struct{}

// ReadWordList reads a newline-delimited word list. Blank lines and
// lines starting with # are skipped.
func ReadWordList(r io.Reader) (WordList, error) {
	wl := make(WordList)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wl[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return wl, nil
}

// LoadWordList reads a word list from a file.
func LoadWordList(path string) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return ReadWordList(f)
}

// Contains reports whether word is in the list.
func (w WordList) Contains(word string) bool {
	_, ok := w[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the list.
func (w WordList) Len() int { return len(w) }
