//go:build ignore

// Bootstrap YAML gold corpora from raw text files.
//
// Each non-blank line of every .txt file under -in becomes one case,
// with the simple tokenizer's output as provisional gold. Hand-correct
// the YAML before trusting the scores.
//
// Usage: go run ./scripts/prepare-corpus.go [-in DIR] [-out DIR] [-max N]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	textkit "github.com/jamesainslie/go-textkit"
	"github.com/jamesainslie/go-textkit/internal/bench"
)

func main() {
	inDir := flag.String("in", "testdata/raw", "Directory of raw .txt files")
	outDir := flag.String("out", "testdata/corpus", "Directory for YAML corpora")
	maxCases := flag.Int("max", 40, "Cases to keep per file")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*inDir, "*.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No .txt files in %s\n", *inDir)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	tok, err := textkit.NewSimple()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tokenizer: %v\n", err)
		os.Exit(1)
	}

	for _, path := range files {
		base := strings.TrimSuffix(filepath.Base(path), ".txt")
		outPath := filepath.Join(*outDir, base+".yaml")

		fmt.Printf("Processing %s...\n", base)
		if err := processFile(tok, path, outPath, base, *maxCases); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", base, err)
			continue
		}
		fmt.Printf("  -> %s\n", outPath)
	}

	fmt.Println("\nDone! Review the gold fields before benchmarking.")
}

func processFile(tok *textkit.SimpleTokenizer, inPath, outPath, name string, maxCases int) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	defer f.Close()

	corpus := bench.Corpus{Name: name}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ctx := context.Background()
	for scanner.Scan() && len(corpus.Cases) < maxCases {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		gold, err := tok.Tokenize(ctx, line)
		if err != nil {
			return fmt.Errorf("tokenizing: %w", err)
		}
		if len(gold) == 0 {
			continue
		}

		corpus.Cases = append(corpus.Cases, bench.Case{
			Name: fmt.Sprintf("%s-%d", name, len(corpus.Cases)+1),
			Text: line,
			Gold: gold,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	if len(corpus.Cases) == 0 {
		return fmt.Errorf("no usable lines")
	}

	data, err := yaml.Marshal(&corpus)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	return os.WriteFile(outPath, data, 0o644)
}
