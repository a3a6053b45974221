package textkit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jamesainslie/go-textkit/lexicon"
	"github.com/jamesainslie/go-textkit/normalize"
)

// Tokenizer is the heavily configurable tokenizer. Every knob is a
// named option reachable through Set; New starts from the defaults.
// A Tokenizer is safe for concurrent use: Set calls serialize against
// running tokenizations.
type Tokenizer struct {
	mu     sync.RWMutex
	reg    *registry
	norm   *normalize.Normalizer
	dict   lexicon.WordList
	logger *slog.Logger
}

// New creates a Tokenizer with every option at its default, then
// applies opts in order.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tokenizer{
		reg:    newRegistry(),
		logger: cfg.logger,
	}
	for _, p := range cfg.presets {
		if err := t.set(p.name, p.value); err != nil {
			return nil, err
		}
	}
	if err := t.rebuildNormalizer(); err != nil {
		return nil, err
	}
	return t, nil
}

// Set changes one option. Unknown names and out-of-range values error
// without changing anything. Category covers such as "P" and long
// Unicode aliases such as "Uppercase_Letter" fan out to their member
// categories.
func (t *Tokenizer) Set(name string, value any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.set(name, value); err != nil {
		return err
	}
	return t.rebuildNormalizer()
}

func (t *Tokenizer) set(name string, value any) error {
	if name == "F_DICT" {
		path, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: F_DICT: want string, got %T", ErrInvalidValue, value)
		}
		return t.loadDict(path)
	}
	return t.reg.set(name, value)
}

// loadDict reads the word list right away so a bad path fails the Set
// call instead of the first Tokenize.
func (t *Tokenizer) loadDict(path string) error {
	if path == "" {
		if err := t.reg.set("F_DICT", ""); err != nil {
			return err
		}
		t.dict = nil
		return nil
	}
	wl, err := lexicon.LoadWordList(path)
	if err != nil {
		return fmt.Errorf("%w: F_DICT: %v", ErrInvalidValue, err)
	}
	if err := t.reg.set("F_DICT", path); err != nil {
		return err
	}
	t.dict = wl
	return nil
}

// Get returns one option's current value as its native type. Cover
// names are not readable since their members may disagree.
func (t *Tokenizer) Get(name string) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, err := t.reg.get(name)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// GetValue returns one option's current value with its kind tag, for
// callers that dispatch on option type rather than name.
func (t *Tokenizer) GetValue(name string) (Value, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.reg.get(name)
}

// rebuildNormalizer recomputes the normalization pass from the current
// option values. Called with the write lock held.
func (t *Tokenizer) rebuildNormalizer() error {
	disps := make(map[string]normalize.Disposition)
	for _, c := range normalize.Categories() {
		if d := t.reg.disp(c.Name); d != normalize.Keep {
			disps[c.Name] = d
		}
	}
	n, err := normalize.New(normalize.Config{
		Dispositions: disps,
		AsciiOnly:    t.reg.flag("Ascii_Only"),
		Regularize:   t.reg.flag("unicodePunct"),
		Ligatures:    t.reg.flag("expandLigatures"),
		Form:         t.reg.str("normalize"),
	})
	if err != nil {
		return err
	}
	t.norm = n
	return nil
}

// Tokenize runs the full pipeline over s and returns the token texts.
// The context is checked between stages, so cancellation cuts long
// inputs short.
func (t *Tokenizer) Tokenize(ctx context.Context, s string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.run(ctx, s)
}

// TokenizeTypes runs the pipeline and classifies every token.
func (t *Tokenizer) TokenizeTypes(ctx context.Context, s string) ([]Token, error) {
	texts, err := t.Tokenize(ctx, s)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, len(texts))
	for i, text := range texts {
		tokens[i] = Token{Text: text, Type: Classify(text)}
	}
	return tokens, nil
}

func (t *Tokenizer) run(ctx context.Context, s string) ([]string, error) {
	verbose := t.reg.flag("TVERBOSE")

	s = t.expand(s)
	if verbose {
		t.logger.Debug("expanded", "text", s)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s = t.norm.Normalize(s)
	if verbose {
		t.logger.Debug("normalized", "text", s)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s = t.shorten(s)

	s, err := t.nonWordTokens(s)
	if err != nil {
		return nil, err
	}
	if verbose {
		t.logger.Debug("nonword classes mapped", "text", s)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := t.splitTokens(s)
	tokens = t.filterTokens(tokens)
	tokens = t.applyCase(tokens)
	if verbose {
		t.logger.Debug("tokenized", "count", len(tokens))
	}
	return tokens, nil
}

// expand resolves escape syntaxes back to the characters they encode.
func (t *Tokenizer) expand(s string) string {
	if t.reg.flag("X_BACKSLASH") {
		s = normalize.ExpandBackslash(s)
	}
	if t.reg.flag("X_URI") {
		s = normalize.ExpandPercent(s)
	}
	if t.reg.flag("X_ENTITY") {
		s = normalize.ExpandEntities(s)
	}
	return s
}

// shorten caps absurd character and whitespace runs. Maxima below two
// leave the text alone.
func (t *Tokenizer) shorten(s string) string {
	if n := t.reg.num("N_CHAR"); n > 1 {
		s = normalize.ShortenRuns(s, n)
	}
	if n := t.reg.num("N_SPACE"); n > 1 {
		s = normalize.ShortenSpaces(s, n)
	}
	return s
}

// applyCase folds token case last, after the shape filters have seen
// the original casing.
func (t *Tokenizer) applyCase(tokens []string) []string {
	switch t.reg.str("caseHandling") {
	case "lower":
		for i, tok := range tokens {
			tokens[i] = strings.ToLower(tok)
		}
	case "upper":
		for i, tok := range tokens {
			tokens[i] = strings.ToUpper(tok)
		}
	}
	return tokens
}
