// Package bench scores tokenizer output against hand-labeled corpora.
package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one labeled example: an input and the tokens it should yield.
type Case struct {
	Name string   `yaml:"name"`
	Text string   `yaml:"text"`
	Gold []string `yaml:"gold"`
}

// Corpus is a named collection of cases from one YAML file:
//
//	name: smoke
//	cases:
//	  - name: greeting
//	    text: "Hello, world!"
//	    gold: ["Hello", ",", "world", "!"]
type Corpus struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// LoadCorpus reads one corpus file. A missing corpus name falls back to
// the file name; unnamed cases take their position.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	if len(c.Cases) == 0 {
		return nil, fmt.Errorf("corpus %s: no cases", path)
	}

	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for i := range c.Cases {
		if c.Cases[i].Name == "" {
			c.Cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return &c, nil
}

// LoadCorpusDir loads every .yaml and .yml corpus in a directory.
func LoadCorpusDir(dir string) ([]*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var corpora []*Corpus
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		c, err := LoadCorpus(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		corpora = append(corpora, c)
	}
	return corpora, nil
}
