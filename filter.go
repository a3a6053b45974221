package textkit

import (
	"unicode"
	"unicode/utf8"
)

// tokenShape classifies the casing of an all-letter token.
type tokenShape int

const (
	shapeNone tokenShape = iota
	shapeUpper
	shapeLower
	shapeTitle
	shapeMixed
)

// shapeOf reports the casing shape of an all-letter token. Combining
// marks are transparent. The shapes are disjoint: a single capital is
// upper, not title, and mixed is whatever remains, including caseless
// scripts.
func shapeOf(tok string) tokenShape {
	upper, lower, total := 0, 0, 0
	firstIsUpper := false
	for i, r := range tok {
		if unicode.IsMark(r) {
			continue
		}
		if !unicode.IsLetter(r) {
			return shapeNone
		}
		total++
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			upper++
			if i == 0 {
				firstIsUpper = true
			}
		case unicode.IsLower(r):
			lower++
		}
	}
	switch {
	case total == 0:
		return shapeNone
	case upper == total:
		return shapeUpper
	case lower == total:
		return shapeLower
	case firstIsUpper && upper == 1:
		return shapeTitle
	default:
		return shapeMixed
	}
}

// filterTokens blanks unwanted tokens per the F_* options, then
// compacts the survivors into a fresh slice.
func (t *Tokenizer) filterTokens(tokens []string) []string {
	for i, tok := range tokens {
		if t.unwanted(tok) {
			tokens[i] = ""
		}
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// unwanted applies the filter chain to one token, first match wins.
func (t *Tokenizer) unwanted(tok string) bool {
	n := utf8.RuneCountInString(tok)
	switch {
	case n < t.reg.num("F_MINLENGTH"):
		return true
	case t.reg.num("F_MAXLENGTH") > 0 && n > t.reg.num("F_MAXLENGTH"):
		return true
	case t.dict != nil && t.dict.Contains(tok):
		return true
	case t.reg.flag("F_SPACE") && allSpace(tok):
		return true
	}

	shape := shapeOf(tok)
	switch {
	case t.reg.flag("F_UPPER") && shape == shapeUpper:
		return true
	case t.reg.flag("F_LOWER") && shape == shapeLower:
		return true
	case t.reg.flag("F_TITLE") && shape == shapeTitle:
		return true
	case t.reg.flag("F_MIXED") && shape == shapeMixed:
		return true
	case t.reg.flag("F_ALNUM") && hasDigitAndLetter(tok):
		return true
	case t.reg.flag("F_PUNCT") && hasHardPunct(tok):
		return true
	}
	return false
}

func allSpace(tok string) bool {
	for _, r := range tok {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func hasDigitAndLetter(tok string) bool {
	hasDigit, hasLetter := false, false
	for _, r := range tok {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	return hasDigit && hasLetter
}

// hasHardPunct reports whether tok contains punctuation beyond the
// word-internal set: period, apostrophe, and hyphen.
func hasHardPunct(tok string) bool {
	for _, r := range tok {
		if isWordRune(r) || r == '.' || r == '\'' || r == '-' {
			continue
		}
		return true
	}
	return false
}
