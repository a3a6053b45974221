// Package textkit provides Unicode-aware tokenization for natural
// language text.
//
// The heavy Tokenizer runs a staged pipeline: escape expansion, Unicode
// normalization with per-category dispositions, run shortening,
// non-word token handling (times, dates, numbers, URLs, and friends),
// word splitting, and token filtering. Every stage is driven by named
// options set through Set or preset with WithOption.
//
// # Quick Start
//
//	tok, err := textkit.New(textkit.WithOption("caseHandling", "lower"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens, err := tok.Tokenize(ctx, "I'm running-fast!!! See http://x.com/a/b now.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(strings.Join(tokens, " | "))
//
// Two lighter variants cover common cases without the option machinery:
// SimpleTokenizer spaces out punctuation and splits on whitespace, and
// Segmenter follows UAX #29 word boundaries.
//
// # Thread Safety
//
// Tokenizer is safe for concurrent use; Set calls serialize against
// running tokenizations. For worker fan-out without lock contention,
// Pool hands each goroutine its own instance.
package textkit
