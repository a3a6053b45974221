package bench

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	textkit "github.com/jamesainslie/go-textkit"
)

// Runner is anything that can turn text into tokens. textkit.Pool,
// textkit.SimpleTokenizer, and textkit.Segmenter all satisfy it.
type Runner interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
}

// EvaluateCase runs one case through r and scores the output.
func EvaluateCase(ctx context.Context, r Runner, c Case) (Metrics, error) {
	predicted, err := r.Tokenize(ctx, c.Text)
	if err != nil {
		return Metrics{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	return Evaluate(predicted, c.Gold), nil
}

// EvaluateCorpus scores every case in a corpus, spreading the work
// across the given number of workers, and aggregates the raw counts
// into one Metrics.
func EvaluateCorpus(ctx context.Context, r Runner, corpus *Corpus, workers int) (Metrics, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		mu       sync.Mutex
		tp       int
		fp       int
		fn       int
		firstErr error
	)

	cases := make(chan Case)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range cases {
				m, err := EvaluateCase(ctx, r, c)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					tp += m.TruePositives
					fp += m.FalsePositives
					fn += m.FalseNegatives
				}
				mu.Unlock()
			}
		}()
	}

	for _, c := range corpus.Cases {
		cases <- c
	}
	close(cases)
	wg.Wait()

	if firstErr != nil {
		return Metrics{}, firstErr
	}
	return Score(tp, fp, fn), nil
}

// SweepResult holds aggregate metrics for one option profile.
type SweepResult struct {
	Profile string
	Metrics Metrics
}

// Sweep evaluates every corpus under each option profile and returns
// the results sorted by F1, best first. Each profile gets its own
// tokenizer pool of the given size.
func Sweep(ctx context.Context, corpora []*Corpus, profiles []*textkit.Profile, poolSize int) ([]SweepResult, error) {
	var results []SweepResult

	for _, p := range profiles {
		pool, err := textkit.NewPool(poolSize, poolOptions(p)...)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.Name, err)
		}

		var totalTP, totalFP, totalFN int
		for _, corpus := range corpora {
			m, err := EvaluateCorpus(ctx, pool, corpus, poolSize)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("profile %s: %w", p.Name, err)
			}
			totalTP += m.TruePositives
			totalFP += m.FalsePositives
			totalFN += m.FalseNegatives
		}
		pool.Close()

		results = append(results, SweepResult{
			Profile: p.Name,
			Metrics: Score(totalTP, totalFP, totalFN),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.F1 > results[j].Metrics.F1
	})
	return results, nil
}

// poolOptions converts a profile's option map into tokenizer options,
// applied in sorted key order so covers land before their members.
func poolOptions(p *textkit.Profile) []textkit.Option {
	keys := lo.Keys(p.Options)
	sort.Strings(keys)

	opts := make([]textkit.Option, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, textkit.WithOption(k, p.Options[k]))
	}
	return opts
}
