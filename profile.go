package textkit

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
)

// Profile is a reusable bundle of option settings loaded from TOML:
//
//	name = "search-indexing"
//
//	[options]
//	caseHandling = "lower"
//	N_CHAR = 3
//	T_URI = "unify"
type Profile struct {
	// Name labels the profile in logs and benchmark output.
	Name string `toml:"name"`

	// Options maps option names to values, exactly as Set takes them.
	Options map[string]any `toml:"options"`
}

// LoadProfile reads a TOML profile from path.
func LoadProfile(path string) (*Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return &p, nil
}

// Apply sets every option in the profile on t. Names apply in sorted
// order, which puts category covers like "P" before members like "Pd",
// so a profile can set a cover broadly and then narrow single
// categories.
func (p *Profile) Apply(t *Tokenizer) error {
	names := lo.Keys(p.Options)
	sort.Strings(names)
	for _, name := range names {
		if err := t.Set(name, p.Options[name]); err != nil {
			return err
		}
	}
	return nil
}

// ApplyProfile loads the TOML profile at path and applies it to t.
func ApplyProfile(t *Tokenizer, path string) error {
	p, err := LoadProfile(path)
	if err != nil {
		return err
	}
	if err := p.Apply(t); err != nil {
		return fmt.Errorf("profile %s: %w", path, err)
	}
	return nil
}
