package textkit

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-textkit/normalize"
)

// Segmenter tokenizes at Unicode word boundaries (UAX #29) after the
// shared Unicode preparation passes. It trades the heavy pipeline's
// configurability for standard boundary behavior.
type Segmenter struct {
	regularize bool
	ligatures  bool
	form       norm.Form
	hasForm    bool
	logger     *slog.Logger
}

// SegmenterOption configures a Segmenter.
type SegmenterOption func(*segmenterConfig)

type segmenterConfig struct {
	regularize bool
	ligatures  bool
	form       string
	logger     *slog.Logger
}

func defaultSegmenterConfig() segmenterConfig {
	return segmenterConfig{
		regularize: true,
		ligatures:  true,
		form:       "NFKD",
		logger:     slog.Default(),
	}
}

// WithRegularize toggles punctuation regularization (default on).
func WithRegularize(enabled bool) SegmenterOption {
	return func(c *segmenterConfig) {
		c.regularize = enabled
	}
}

// WithLigatures toggles ligature expansion (default on).
func WithLigatures(enabled bool) SegmenterOption {
	return func(c *segmenterConfig) {
		c.ligatures = enabled
	}
}

// WithForm sets the Unicode normalization form (default "NFKD"). The
// empty string disables normalization.
func WithForm(form string) SegmenterOption {
	return func(c *segmenterConfig) {
		c.form = form
	}
}

// WithSegmenterLogger sets the logger (default: slog.Default()).
func WithSegmenterLogger(l *slog.Logger) SegmenterOption {
	return func(c *segmenterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewSegmenter creates a Segmenter.
func NewSegmenter(opts ...SegmenterOption) (*Segmenter, error) {
	cfg := defaultSegmenterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sg := &Segmenter{
		regularize: cfg.regularize,
		ligatures:  cfg.ligatures,
		logger:     cfg.logger,
	}
	if cfg.form != "" {
		f, err := normalize.ParseForm(cfg.form)
		if err != nil {
			return nil, err
		}
		sg.form = f
		sg.hasForm = true
	}
	return sg, nil
}

// Tokenize splits text at Unicode word boundaries, dropping whitespace
// segments. Unexpanded entity syntax errors when regularization is on,
// since entities would otherwise tokenize as raw punctuation.
func (sg *Segmenter) Tokenize(ctx context.Context, s string) ([]string, error) {
	if sg.regularize {
		if normalize.HasEntitySyntax(s) {
			return nil, ErrEntitySyntax
		}
		s = normalize.Regularize(s)
	}
	if sg.ligatures {
		s = normalize.ExpandLigatures(s)
	}
	if sg.hasForm {
		s = sg.form.String(s)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tokens []string
	iter := words.FromString(s)
	for iter.Next() {
		seg := iter.Value()
		if strings.TrimSpace(seg) == "" {
			continue
		}
		tokens = append(tokens, fixFinalDot(seg))
	}
	sg.logger.Debug("segmented", "count", len(tokens))
	return tokens, nil
}

// fixFinalDot drops a lone trailing period from a multi-rune segment,
// keeping dotted abbreviations like "U.S." whole.
func fixFinalDot(seg string) string {
	if utf8.RuneCountInString(seg) < 2 {
		return seg
	}
	if !strings.HasSuffix(seg, ".") {
		return seg
	}
	if strings.Contains(seg[:len(seg)-1], ".") {
		return seg
	}
	return seg[:len(seg)-1]
}
