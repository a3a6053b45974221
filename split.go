package textkit

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jamesainslie/go-textkit/lexicon"
	"github.com/jamesainslie/go-textkit/normalize"
)

// wordCh is the word-character class the splitting passes use. RE2's
// \w stops at ASCII, so the class is spelled out. Marks are included
// so decomposed accents ride with their base letter.
const wordCh = `\p{L}\p{M}\p{N}_`

var (
	// dashRunRe finds clause dashes written as two or more hyphens.
	dashRunRe = regexp.MustCompile(`--+`)

	// hyphenatedRe pairs the word characters around an inner hyphen.
	hyphenatedRe = regexp.MustCompile(`([` + wordCh + `])-([` + wordCh + `])`)

	// genitiveRe finds a genitive 's at a word end, straight or curly.
	genitiveRe = regexp.MustCompile(`([` + wordCh + `])['` + "’" + `]s\b`)

	// contractedRe finds the detachable contraction suffixes at a word
	// end.
	contractedRe = regexp.MustCompile(`([` + wordCh + `])['` + "’" + `](ll|ve|re|s|d|t)\b`)

	// abbrevRe re-joins single letters spaced around periods, as in
	// "U . S ." when an earlier pass spaced the periods out.
	abbrevRe = regexp.MustCompile(`\b(\w) \. (\w) \.(\s|$)`)

	// leadPunctRe finds punctuation glued to a word start. Hash and at
	// signs stay glued so tags and mentions survive splitting.
	leadPunctRe = regexp.MustCompile(`(\s+)([^` + wordCh + `\s#@]+)([` + wordCh + `])`)

	// trailPunctRe finds punctuation glued to a word end. Periods stay
	// glued here; dropFinalDot decides them per token.
	trailPunctRe = regexp.MustCompile(`([` + wordCh + `])([^` + wordCh + `\s.]+)(\s|$)`)
)

// specialRunChars are the characters whose runs of three or more
// collapse to a spaced triple, like " ... " or " ### ".
var specialRunChars = []string{".", "/", "*", `\`, "#", "=", "?", "!"}

type specialRun struct {
	re          *regexp.Regexp
	replacement string
}

var specialRuns = buildSpecialRuns()

func buildSpecialRuns() []specialRun {
	out := make([]specialRun, 0, len(specialRunChars))
	for _, c := range specialRunChars {
		out = append(out, specialRun{
			re:          regexp.MustCompile(`(` + regexp.QuoteMeta(c) + `\s*){3,}`),
			replacement: " " + strings.Repeat(c, 3) + " ",
		})
	}
	return out
}

// splitTokens turns prepared text into tokens per TOKENTYPE. The
// special and S_* passes run in every mode; word refinement only in
// words mode.
func (t *Tokenizer) splitTokens(s string) []string {
	s = splitSpecials(s)
	s = t.splitHyphenated(s)
	s = t.splitGenitives(s)
	s = t.splitContractedForms(s)

	switch t.reg.str("TOKENTYPE") {
	case "chars":
		tokens := make([]string, 0, utf8.RuneCountInString(s))
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
		return tokens
	case "none":
		if s == "" {
			return nil
		}
		return []string{s}
	default:
		return t.refineTokens(t.splitWords(s))
	}
}

// splitSpecials spaces out clause dashes and collapses long runs of
// rule-like punctuation to triples.
func splitSpecials(s string) string {
	s = dashRunRe.ReplaceAllString(s, " -- ")
	for _, sp := range specialRuns {
		s = sp.re.ReplaceAllString(s, sp.replacement)
	}
	return s
}

// splitHyphenated applies the S_HYPHENATED disposition to inner
// hyphens. The scan is single-pass, so "a-b-c" yields "a - b-c" under
// unify.
func (t *Tokenizer) splitHyphenated(s string) string {
	switch t.reg.disp("S_HYPHENATED") {
	case normalize.Unify:
		return hyphenatedRe.ReplaceAllString(s, "$1 - $2")
	case normalize.Space:
		return hyphenatedRe.ReplaceAllString(s, "$1 $2")
	case normalize.Delete:
		return hyphenatedRe.ReplaceAllString(s, "$1$2")
	}
	return s
}

// splitGenitives applies the S_GENITIVE disposition to word-final 's.
func (t *Tokenizer) splitGenitives(s string) string {
	switch t.reg.disp("S_GENITIVE") {
	case normalize.Unify:
		return genitiveRe.ReplaceAllString(s, "$1 's")
	case normalize.Space:
		return genitiveRe.ReplaceAllString(s, "$1 s")
	case normalize.Delete:
		return genitiveRe.ReplaceAllString(s, "$1")
	}
	return s
}

// splitContractedForms applies the S_CONTRACTION disposition. Unify
// expands contractions to their full words from the English lexicon;
// space detaches the suffix; delete drops it.
func (t *Tokenizer) splitContractedForms(s string) string {
	switch t.reg.disp("S_CONTRACTION") {
	case normalize.Unify:
		return lexicon.ExpandContractions(s)
	case normalize.Space:
		return contractedRe.ReplaceAllString(s, "$1 '$2")
	case normalize.Delete:
		return contractedRe.ReplaceAllString(s, "$1")
	}
	return s
}

// splitWords separates punctuation glued to word edges and splits on
// whitespace runs. Leading punctuation needs preceding whitespace, so
// a mark at the very start of the text stays attached.
func (t *Tokenizer) splitWords(s string) []string {
	s = abbrevRe.ReplaceAllString(s, "${1}.${2}.${3}")
	s = leadPunctRe.ReplaceAllString(s, " $2 $3")
	s = trailPunctRe.ReplaceAllString(s, "$1 $2 ")
	return strings.Fields(s)
}

// refineTokens applies the per-token splits: contraction suffixes,
// possessives, and final periods.
func (t *Tokenizer) refineTokens(tokens []string) []string {
	splitC := t.reg.flag("splitContractions")
	splitP := t.reg.flag("splitPossessives")
	dropDot := t.reg.flag("dropFinalDot")
	if !splitC && !splitP && !dropDot {
		return tokens
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, refineToken(tok, splitC, splitP, dropDot)...)
	}
	return out
}

func refineToken(tok string, splitC, splitP, dropDot bool) []string {
	var suffixes []string
	for {
		stem, suffix, ok := lexicon.SplitSuffix(tok)
		if !ok {
			break
		}
		if suffix == "'s" {
			if !splitP {
				break
			}
		} else if !splitC {
			break
		}
		suffixes = append([]string{suffix}, suffixes...)
		tok = stem
	}

	// Plural possessives end in a bare apostrophe.
	if splitP {
		if r, size := utf8.DecodeLastRuneInString(tok); (r == '\'' || r == '’') && len(tok) > size {
			suffixes = append([]string{string(r)}, suffixes...)
			tok = tok[:len(tok)-size]
		}
	}

	if dropDot {
		tok = trimFinalPeriod(tok)
	}
	return append([]string{tok}, suffixes...)
}

// trimFinalPeriod drops a single trailing period from a token unless
// the token is a known abbreviation or carries interior periods like
// "U.S.".
func trimFinalPeriod(tok string) string {
	if len(tok) > 1 && strings.HasSuffix(tok, ".") &&
		!strings.Contains(tok[:len(tok)-1], ".") &&
		!lexicon.IsAbbreviation(tok) {
		return tok[:len(tok)-1]
	}
	return tok
}
