package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	textkit "github.com/jamesainslie/go-textkit"
	"github.com/jamesainslie/go-textkit/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory of YAML corpus files")
		variant   = flag.String("variant", "simple", "Tokenizer variant: simple, heavy, or segment")
		profiles  = flag.String("profiles", "", "Comma-separated TOML profiles to sweep (heavy pipeline)")
		poolSize  = flag.Int("pool", 4, "Tokenizer pool size and worker count")
	)
	flag.Parse()

	corpora, err := bench.LoadCorpusDir(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(corpora) == 0 {
		fmt.Fprintf(os.Stderr, "error: no corpora in %s\n", *corpusDir)
		os.Exit(1)
	}
	cases := 0
	for _, c := range corpora {
		cases += len(c.Cases)
	}
	fmt.Printf("Loaded %d corpora (%d cases) from %s\n\n", len(corpora), cases, *corpusDir)

	ctx := context.Background()

	if *profiles != "" {
		runSweep(ctx, corpora, strings.Split(*profiles, ","), *poolSize)
	} else {
		runSingle(ctx, corpora, *variant, *poolSize)
	}
}

func runSingle(ctx context.Context, corpora []*bench.Corpus, variant string, poolSize int) {
	runner, cleanup, err := buildRunner(variant, poolSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating tokenizer: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	fmt.Printf("Evaluation (variant=%s)\n", variant)
	fmt.Println(strings.Repeat("-", 58))
	fmt.Printf("%-20s %-8s %-8s %-8s %-8s\n", "Corpus", "Cases", "Prec", "Rec", "F1")

	var totalTP, totalFP, totalFN int
	for _, corpus := range corpora {
		m, err := bench.EvaluateCorpus(ctx, runner, corpus, poolSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error evaluating %s: %v\n", corpus.Name, err)
			os.Exit(1)
		}
		fmt.Printf("%-20s %-8d %-8.2f %-8.2f %-8.2f\n",
			corpus.Name, len(corpus.Cases), m.Precision, m.Recall, m.F1)
		totalTP += m.TruePositives
		totalFP += m.FalsePositives
		totalFN += m.FalseNegatives
	}

	fmt.Println(strings.Repeat("-", 58))
	m := bench.Score(totalTP, totalFP, totalFN)
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f\n", m.Precision, m.Recall, m.F1)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", totalTP, totalFP, totalFN)
}

func runSweep(ctx context.Context, corpora []*bench.Corpus, paths []string, poolSize int) {
	profiles := make([]*textkit.Profile, 0, len(paths))
	for _, raw := range paths {
		path := strings.TrimSpace(raw)
		p, err := textkit.LoadProfile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading %s: %v\n", path, err)
			os.Exit(1)
		}
		if p.Name == "" {
			base := filepath.Base(path)
			p.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		profiles = append(profiles, p)
	}

	fmt.Println("Profile Sweep Results")
	fmt.Println(strings.Repeat("-", 58))
	fmt.Printf("%-20s %-8s %-8s %-8s\n", "Profile", "Prec", "Rec", "F1")

	results, err := bench.Sweep(ctx, corpora, profiles, poolSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-20s %-8.2f %-8.2f %-8.2f\n",
			r.Profile, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1)
	}

	fmt.Println(strings.Repeat("-", 58))
	if len(results) > 0 {
		fmt.Printf("Best: %s (F1: %.2f)\n", results[0].Profile, results[0].Metrics.F1)
	}
}

func buildRunner(variant string, poolSize int) (bench.Runner, func(), error) {
	switch variant {
	case "simple":
		st, err := textkit.NewSimple()
		if err != nil {
			return nil, nil, err
		}
		return st, func() {}, nil
	case "heavy":
		pool, err := textkit.NewPool(poolSize)
		if err != nil {
			return nil, nil, err
		}
		return pool, func() { _ = pool.Close() }, nil
	case "segment":
		sg, err := textkit.NewSegmenter()
		if err != nil {
			return nil, nil, err
		}
		return sg, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown variant %q", variant)
}
