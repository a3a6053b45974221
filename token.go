package textkit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jamesainslie/go-textkit/lexicon"
)

// TokenType labels what kind of text a token holds.
type TokenType int

const (
	// TypeWord is a token containing at least one letter, digit, or
	// underscore and matching no non-word class.
	TypeWord TokenType = iota
	// TypeNumber is an integer, decimal, or exponential number.
	TypeNumber
	// TypeTime is a clock time such as 09:09 or 9:30 p.m. EST.
	TypeTime
	// TypeDate is an ISO-style date or a year with an era marker.
	TypeDate
	// TypeFraction is a slashed or precomposed vulgar fraction.
	TypeFraction
	// TypeCurrency is a currency sign followed by an amount.
	TypeCurrency
	// TypePercent is a number followed by a percent-family sign.
	TypePercent
	// TypeEmoticon is a punctuation-art face such as :) or ;-<.
	TypeEmoticon
	// TypeHashtag is a #-prefixed tag.
	TypeHashtag
	// TypeUser is an @-prefixed mention.
	TypeUser
	// TypeEmail is an email address.
	TypeEmail
	// TypeURL is a scheme-prefixed URI.
	TypeURL
	// TypePunct is a token with no word runes at all.
	TypePunct
	// TypeSpace is a token of nothing but whitespace. These only occur
	// in chars mode, where every rune becomes a token.
	TypeSpace
)

var typeNames = [...]string{
	"word", "number", "time", "date", "fraction", "currency", "percent",
	"emoticon", "hashtag", "user", "email", "url", "punct", "space",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(typeNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return typeNames[tt]
}

// Token is one tokenized unit with its classified type.
type Token struct {
	Text string
	Type TokenType
}

func (t Token) String() string { return t.Text }

// Host returns the host part of a URL or email token, and "" for every
// other type.
func (t Token) Host() string {
	switch t.Type {
	case TypeURL:
		i := strings.Index(t.Text, "://")
		if i < 0 {
			return ""
		}
		rest := t.Text[i+3:]
		if j := strings.IndexAny(rest, "/?#:"); j >= 0 {
			rest = rest[:j]
		}
		return rest
	case TypeEmail:
		return t.Text[strings.LastIndexByte(t.Text, '@')+1:]
	}
	return ""
}

// Country reports the country a URL or email token points at, going by
// the host's two-letter country domain.
func (t Token) Country() (lexicon.Country, bool) {
	host := t.Host()
	if host == "" {
		return lexicon.Country{}, false
	}
	i := strings.LastIndexByte(host, '.')
	if i < 0 {
		return lexicon.Country{}, false
	}
	tld := host[i+1:]
	if len(tld) != 2 {
		return lexicon.Country{}, false
	}
	return lexicon.CountryByAlpha2(tld)
}

type tokenClass struct {
	re  *regexp.Regexp
	typ TokenType
}

// tokenClasses anchors every non-word pattern so a token must match it
// whole. The slice keeps stage order, which puts the more specific
// classes first.
var tokenClasses = buildTokenClasses()

func buildTokenClasses() []tokenClass {
	types := map[string]TokenType{
		"T_TIME":     TypeTime,
		"T_DATE":     TypeDate,
		"T_FRACTION": TypeFraction,
		"T_NUMBER":   TypeNumber,
		"T_CURRENCY": TypeCurrency,
		"T_PERCENT":  TypePercent,
		"T_EMOTICON": TypeEmoticon,
		"T_HASHTAG":  TypeHashtag,
		"T_EMAIL":    TypeEmail,
		"T_USER":     TypeUser,
		"T_URI":      TypeURL,
	}
	out := make([]tokenClass, 0, len(nonWordStages))
	for _, st := range nonWordStages {
		out = append(out, tokenClass{
			re:  regexp.MustCompile(`^(?:` + st.Pattern + `)$`),
			typ: types[st.Name],
		})
	}
	return out
}

// Classify reports the type of a single token. A token matching no
// non-word class is a word when it contains a word rune, whitespace
// when it holds nothing else, and punctuation otherwise.
func Classify(text string) TokenType {
	for _, tc := range tokenClasses {
		if tc.re.MatchString(text) {
			return tc.typ
		}
	}
	for _, r := range text {
		if isWordRune(r) {
			return TypeWord
		}
	}
	if text != "" && allSpace(text) {
		return TypeSpace
	}
	return TypePunct
}

// isWordRune mirrors the splitting passes' word class over the full
// rune range.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r) || r == '_'
}
