package textkit

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-textkit/lexicon"
	"github.com/jamesainslie/go-textkit/normalize"
)

var (
	// simpleDashRe finds clause dashes and ellipses in their common
	// spellings.
	simpleDashRe = regexp.MustCompile(`(--+|\x{2014}|\x{FE58}|\.\.\.\.?|\x{2026})`)

	// simpleLeadRe finds quote and opening-bracket clusters glued to a
	// word start.
	simpleLeadRe = regexp.MustCompile("(\\s|^)([\"`" + `\p{Pi}\p{Ps}]+)`)

	// simpleTrailRe finds closing and clause punctuation glued to a
	// word end. Colons inside times and URLs are safe because the
	// cluster must touch trailing space or the end of the text.
	simpleTrailRe = regexp.MustCompile("([\"`" + `:;,.?!\p{Pf}\p{Pe}]+)(\s|$)`)

	// simpleContractionRe finds apostrophe suffixes at a word end,
	// including the bare plural possessive apostrophe.
	simpleContractionRe = regexp.MustCompile(`([` + wordCh + `])('(?:s|d|t|ll|ve|re)?)(\s|$)`)

	// spaceAllUnitRe splits a punctuation cluster into units: dot runs
	// and dash runs move whole, everything else one character at a
	// time.
	spaceAllUnitRe = regexp.MustCompile(`([^.-]|\.+|-+)`)
)

// SimpleTokenizer splits text on whitespace after spacing out
// punctuation. It has none of Tokenizer's option machinery and suits
// plain prose.
type SimpleTokenizer struct {
	form         norm.Form
	hasForm      bool
	breakHyphens bool
	fancy        bool
	logger       *slog.Logger
}

// SimpleOption configures a SimpleTokenizer.
type SimpleOption func(*simpleConfig)

type simpleConfig struct {
	form         string
	breakHyphens bool
	fancy        bool
	logger       *slog.Logger
}

func defaultSimpleConfig() simpleConfig {
	return simpleConfig{
		form:   "NFKD",
		logger: slog.Default(),
	}
}

// WithSimpleForm sets the Unicode normalization form (default "NFKD").
// The empty string disables normalization.
func WithSimpleForm(form string) SimpleOption {
	return func(c *simpleConfig) {
		c.form = form
	}
}

// WithBreakHyphens splits hyphenated words into their parts.
func WithBreakHyphens(enabled bool) SimpleOption {
	return func(c *simpleConfig) {
		c.breakHyphens = enabled
	}
}

// WithFancyContractions expands contractions through the English
// lexicon instead of detaching their suffixes.
func WithFancyContractions(enabled bool) SimpleOption {
	return func(c *simpleConfig) {
		c.fancy = enabled
	}
}

// WithSimpleLogger sets the logger (default: slog.Default()).
func WithSimpleLogger(l *slog.Logger) SimpleOption {
	return func(c *simpleConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewSimple creates a SimpleTokenizer.
func NewSimple(opts ...SimpleOption) (*SimpleTokenizer, error) {
	cfg := defaultSimpleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := &SimpleTokenizer{
		breakHyphens: cfg.breakHyphens,
		fancy:        cfg.fancy,
		logger:       cfg.logger,
	}
	if cfg.form != "" {
		f, err := normalize.ParseForm(cfg.form)
		if err != nil {
			return nil, err
		}
		st.form = f
		st.hasForm = true
	}
	return st, nil
}

// Tokenize splits text into tokens.
func (st *SimpleTokenizer) Tokenize(ctx context.Context, s string) ([]string, error) {
	if st.hasForm {
		s = st.form.String(s)
	}
	// Soft hyphens just get in the way.
	s = strings.ReplaceAll(s, "­", "")

	s = simpleDashRe.ReplaceAllString(s, " $1 ")
	s = simpleLeadRe.ReplaceAllStringFunc(s, func(m string) string {
		lead, cluster := splitLead(m)
		return lead + spaceAll(cluster)
	})
	s = simpleTrailRe.ReplaceAllStringFunc(s, func(m string) string {
		cluster, trail := splitTrail(m)
		return spaceAll(cluster) + trail
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if st.fancy {
		s = lexicon.ExpandContractions(s)
	} else {
		s = simpleContractionRe.ReplaceAllString(s, "$1 $2$3")
	}
	if st.breakHyphens {
		s = hyphenatedRe.ReplaceAllString(s, "$1 - $2")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := strings.FieldsFunc(s, unicode.IsSpace)
	st.logger.Debug("simple tokenized", "count", len(tokens))
	return tokens, nil
}

// splitLead separates the whitespace rune, if any, that anchored a
// leading punctuation match from the cluster itself.
func splitLead(m string) (lead, cluster string) {
	if m == "" {
		return "", ""
	}
	r, size := utf8.DecodeRuneInString(m)
	if unicode.IsSpace(r) {
		return m[:size], m[size:]
	}
	return "", m
}

// splitTrail separates a trailing punctuation cluster from the
// whitespace rune, if any, that anchored it.
func splitTrail(m string) (cluster, trail string) {
	if m == "" {
		return "", ""
	}
	r, size := utf8.DecodeLastRuneInString(m)
	if unicode.IsSpace(r) {
		return m[:len(m)-size], m[len(m)-size:]
	}
	return m, ""
}

// spaceAll spaces a punctuation cluster apart, keeping dot and dash
// runs together as units.
func spaceAll(cluster string) string {
	return spaceAllUnitRe.ReplaceAllString(cluster, " $1") + " "
}
