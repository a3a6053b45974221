package textkit

import (
	"errors"
	"testing"

	"github.com/jamesainslie/go-textkit/normalize"
)

func TestRegistryDefaults(t *testing.T) {
	r := newRegistry()
	tests := []struct {
		name string
		want any
	}{
		{"unicodePunct", true},
		{"expandLigatures", true},
		{"normalize", "NFKD"},
		{"dropFinalDot", true},
		{"splitContractions", true},
		{"splitPossessives", true},
		{"caseHandling", "keep"},
		{"assignTypes", false},
		{"TVERBOSE", false},
		{"TOKENTYPE", "words"},
		{"X_BACKSLASH", false},
		{"Ascii_Only", false},
		{"Nbsp", normalize.Space},
		{"Soft_Hyphen", normalize.Delete},
		{"Accent", normalize.Keep},
		{"Lu", normalize.Keep},
		{"N_CHAR", 0},
		{"T_URI", normalize.Keep},
		{"S_GENITIVE", normalize.Keep},
		{"F_MINLENGTH", 0},
		{"F_DICT", ""},
		{"F_PUNCT", false},
	}
	for _, tt := range tests {
		v, err := r.get(tt.name)
		if err != nil {
			t.Errorf("get(%q) error: %v", tt.name, err)
			continue
		}
		if v.Interface() != tt.want {
			t.Errorf("get(%q) = %v, want %v", tt.name, v.Interface(), tt.want)
		}
	}
}

func TestRegistrySet(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		value   any
		want    any
		wantErr error
	}{
		{"int from string", "N_CHAR", "4", 4, nil},
		{"int native", "N_CHAR", 4, 4, nil},
		{"int garbage", "N_CHAR", "four", nil, ErrInvalidValue},
		{"bool from string", "TVERBOSE", "true", true, nil},
		{"bool from int flag", "TVERBOSE", 1, true, nil},
		{"bool garbage", "TVERBOSE", "maybe", nil, ErrInvalidValue},
		{"disp from string", "T_TIME", "unify", normalize.Unify, nil},
		{"disp native", "T_TIME", normalize.Delete, normalize.Delete, nil},
		{"stage rejects strip", "T_TIME", "strip", nil, ErrInvalidValue},
		{"stage rejects value", "S_CONTRACTION", "value", nil, ErrInvalidValue},
		{"category allows strip", "Lu", "strip", normalize.Strip, nil},
		{"category allows value", "Nd", "value", normalize.Value, nil},
		{"tokentype keyword", "TOKENTYPE", "chars", "chars", nil},
		{"tokentype garbage", "TOKENTYPE", "letters", nil, ErrInvalidValue},
		{"case keyword", "caseHandling", "lower", "lower", nil},
		{"case garbage", "caseHandling", "title", nil, ErrInvalidValue},
		{"form empty", "normalize", "", "", nil},
		{"form NFC", "normalize", "NFC", "NFC", nil},
		{"form garbage", "normalize", "NFX", nil, ErrInvalidValue},
		{"unknown option", "nope", true, nil, ErrUnknownOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry()
			err := r.set(tt.option, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("set(%q, %v) error = %v, want %v", tt.option, tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("set(%q, %v) error: %v", tt.option, tt.value, err)
			}
			v, err := r.get(tt.option)
			if err != nil {
				t.Fatalf("get(%q) error: %v", tt.option, err)
			}
			if v.Interface() != tt.want {
				t.Errorf("get(%q) = %v, want %v", tt.option, v.Interface(), tt.want)
			}
		})
	}
}

func TestRegistryCoverFanOut(t *testing.T) {
	r := newRegistry()
	if err := r.set("P", "space"); err != nil {
		t.Fatalf("set(P) error: %v", err)
	}
	for _, member := range []string{"Pc", "Pd", "Pe", "Pf", "Pi", "Po", "Ps"} {
		v, err := r.get(member)
		if err != nil {
			t.Fatalf("get(%q) error: %v", member, err)
		}
		if v.Disposition() != normalize.Space {
			t.Errorf("get(%q) = %v, want space", member, v.Disposition())
		}
	}

	// A cover is write-only: its members may disagree.
	if _, err := r.get("P"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("get(P) error = %v, want ErrUnknownOption", err)
	}

	if err := r.set("LC", "upper"); err != nil {
		t.Fatalf("set(LC) error: %v", err)
	}
	for _, member := range []string{"Ll", "Lt", "Lu"} {
		v, err := r.get(member)
		if err != nil {
			t.Fatalf("get(%q) error: %v", member, err)
		}
		if v.Disposition() != normalize.Upper {
			t.Errorf("get(%q) = %v, want upper", member, v.Disposition())
		}
	}
}

func TestRegistryLongAliases(t *testing.T) {
	r := newRegistry()
	if err := r.set("Uppercase_Letter", "delete"); err != nil {
		t.Fatalf("set(Uppercase_Letter) error: %v", err)
	}
	v, err := r.get("Lu")
	if err != nil {
		t.Fatalf("get(Lu) error: %v", err)
	}
	if v.Disposition() != normalize.Delete {
		t.Errorf("get(Lu) = %v, want delete", v.Disposition())
	}

	// Long alias reads work for single categories, not covers.
	if _, err := r.get("Uppercase_Letter"); err != nil {
		t.Errorf("get(Uppercase_Letter) error: %v", err)
	}
	if _, err := r.get("Letter"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("get(Letter) error = %v, want ErrUnknownOption", err)
	}
}

func TestOptionNames(t *testing.T) {
	names := OptionNames()
	if len(names) != len(optionTable) {
		t.Fatalf("OptionNames() has %d entries, want %d", len(names), len(optionTable))
	}
	if names[0] != "unicodePunct" {
		t.Errorf("names[0] = %q, want unicodePunct", names[0])
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			t.Errorf("duplicate option name %q", name)
		}
		index[name] = i
	}
	for _, name := range []string{"TOKENTYPE", "Ascii_Only", "Cc", "Zs", "Nbsp",
		"N_CHAR", "T_TIME", "T_URI", "S_GENITIVE", "F_PUNCT"} {
		if _, ok := index[name]; !ok {
			t.Errorf("OptionNames() missing %q", name)
		}
	}
	// Stage options keep their pipeline order.
	if index["T_TIME"] > index["T_DATE"] || index["T_DATE"] > index["T_URI"] {
		t.Error("non-word stage options out of order")
	}
}
