package textkit

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-textkit/normalize"
)

// Kind is the value type an option accepts.
type Kind int

const (
	// KindBool marks a boolean option.
	KindBool Kind = iota
	// KindInt marks an integer option.
	KindInt
	// KindString marks a string option.
	KindString
	// KindDisposition marks an option holding a disposition keyword.
	KindDisposition
)

// Value is the tagged union an option holds.
type Value struct {
	kind Kind
	b    bool
	i    int
	s    string
	d    normalize.Disposition
}

func boolValue(b bool) Value { return Value{kind: KindBool, b: b} }
func intValue(i int) Value   { return Value{kind: KindInt, i: i} }
func strValue(s string) Value {
	return Value{kind: KindString, s: s}
}
func dispValue(d normalize.Disposition) Value {
	return Value{kind: KindDisposition, d: d}
}

// Kind returns the value's type tag.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload.
func (v Value) Int() int { return v.i }

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// Disposition returns the disposition payload.
func (v Value) Disposition() normalize.Disposition { return v.d }

// Interface returns the payload as its native Go type.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindString:
		return v.s
	default:
		return v.d
	}
}

// optionSpec declares one registry entry. Allowed restricts disposition
// options to a keyword subset; nil admits every keyword.
type optionSpec struct {
	Name    string
	Kind    Kind
	Default Value
	Allowed []normalize.Disposition
}

// stageDisps are the dispositions the non-word and splitting stages
// understand: those stages can keep, placeholder, delete, or blank a
// match, nothing else.
var stageDisps = []normalize.Disposition{
	normalize.Keep, normalize.Unify, normalize.Delete, normalize.Space,
}

// optionTable is the full registry in registration order. Defining the
// same name twice is a programming error and fails at startup.
var optionTable = buildOptionTable()

func buildOptionTable() []optionSpec {
	specs := []optionSpec{
		// general preparation
		{Name: "unicodePunct", Kind: KindBool, Default: boolValue(true)},
		{Name: "expandLigatures", Kind: KindBool, Default: boolValue(true)},
		{Name: "normalize", Kind: KindString, Default: strValue("NFKD")},
		{Name: "dropFinalDot", Kind: KindBool, Default: boolValue(true)},
		{Name: "splitContractions", Kind: KindBool, Default: boolValue(true)},
		{Name: "splitPossessives", Kind: KindBool, Default: boolValue(true)},
		{Name: "caseHandling", Kind: KindString, Default: strValue("keep")},
		{Name: "assignTypes", Kind: KindBool, Default: boolValue(false)},

		{Name: "TVERBOSE", Kind: KindBool, Default: boolValue(false)},
		{Name: "TOKENTYPE", Kind: KindString, Default: strValue("words")},

		// stage 1: expand
		{Name: "X_BACKSLASH", Kind: KindBool, Default: boolValue(false)},
		{Name: "X_URI", Kind: KindBool, Default: boolValue(false)},
		{Name: "X_ENTITY", Kind: KindBool, Default: boolValue(false)},

		// stage 2: normalize
		{Name: "Ascii_Only", Kind: KindBool, Default: boolValue(false)},
	}

	for _, c := range normalize.Categories() {
		d := normalize.Keep
		switch c.Name {
		case "Nbsp":
			d = normalize.Space
		case "Soft_Hyphen":
			d = normalize.Delete
		}
		specs = append(specs, optionSpec{
			Name: c.Name, Kind: KindDisposition, Default: dispValue(d),
		})
	}

	// stage 3: shorten
	specs = append(specs,
		optionSpec{Name: "N_CHAR", Kind: KindInt, Default: intValue(0)},
		optionSpec{Name: "N_SPACE", Kind: KindInt, Default: intValue(0)},
	)

	// stage 4: non-word tokens
	for _, st := range nonWordStages {
		specs = append(specs, optionSpec{
			Name: st.Name, Kind: KindDisposition,
			Default: dispValue(normalize.Keep), Allowed: stageDisps,
		})
	}

	// stage 5: splitting specials
	for _, name := range []string{"S_CONTRACTION", "S_HYPHENATED", "S_GENITIVE"} {
		specs = append(specs, optionSpec{
			Name: name, Kind: KindDisposition,
			Default: dispValue(normalize.Keep), Allowed: stageDisps,
		})
	}

	// stage 6: filters
	specs = append(specs,
		optionSpec{Name: "F_MINLENGTH", Kind: KindInt, Default: intValue(0)},
		optionSpec{Name: "F_MAXLENGTH", Kind: KindInt, Default: intValue(0)},
		optionSpec{Name: "F_DICT", Kind: KindString, Default: strValue("")},
	)
	for _, name := range []string{
		"F_SPACE", "F_UPPER", "F_LOWER", "F_TITLE", "F_MIXED",
		"F_ALNUM", "F_PUNCT",
	} {
		specs = append(specs, optionSpec{
			Name: name, Kind: KindBool, Default: boolValue(false),
		})
	}
	return specs
}

var optionSpecs = func() map[string]optionSpec {
	m := make(map[string]optionSpec, len(optionTable))
	for _, s := range optionTable {
		if _, dup := m[s.Name]; dup {
			panic(fmt.Errorf("%w: %s", ErrDuplicateOption, s.Name))
		}
		m[s.Name] = s
	}
	return m
}()

// OptionNames returns every registered option name in registration
// order.
func OptionNames() []string {
	return lo.Map(optionTable, func(s optionSpec, _ int) string {
		return s.Name
	})
}

// registry holds one tokenizer's option values.
type registry struct {
	values map[string]Value
}

func newRegistry() *registry {
	values := make(map[string]Value, len(optionTable))
	for _, s := range optionTable {
		values[s.Name] = s.Default
	}
	return &registry{values: values}
}

// set updates one option. Cover names (L, P, ...) and long Unicode
// aliases (Uppercase_Letter, ...) fan out to their member categories.
func (r *registry) set(name string, value any) error {
	if spec, ok := optionSpecs[name]; ok {
		return r.setOne(spec, value)
	}
	canonical, members, ok := normalize.ResolveName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	if members == nil {
		return r.setOne(optionSpecs[canonical], value)
	}
	for _, m := range members {
		if err := r.setOne(optionSpecs[m], value); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) setOne(spec optionSpec, value any) error {
	v, err := coerce(spec, value)
	if err != nil {
		return err
	}
	r.values[spec.Name] = v
	return nil
}

// get returns one option's value. Cover names are not readable since
// their members may disagree.
func (r *registry) get(name string) (Value, error) {
	if v, ok := r.values[name]; ok {
		return v, nil
	}
	canonical, members, ok := normalize.ResolveName(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	if members != nil {
		return Value{}, fmt.Errorf("%w: %q names a category cover, not a single option",
			ErrUnknownOption, name)
	}
	return r.values[canonical], nil
}

// Typed accessors for pipeline internals. The names are fixed at
// compile time, so a miss is a programming error.

func (r *registry) flag(name string) bool {
	return r.values[name].Bool()
}

func (r *registry) num(name string) int {
	return r.values[name].Int()
}

func (r *registry) str(name string) string {
	return r.values[name].Str()
}

func (r *registry) disp(name string) normalize.Disposition {
	return r.values[name].Disposition()
}

// coerce converts value to the spec's kind, accepting native Go values
// or their string renderings, and validates option-specific keyword
// sets.
func coerce(spec optionSpec, value any) (Value, error) {
	switch spec.Kind {
	case KindBool:
		b, err := coerceBool(value)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, spec.Name, err)
		}
		return boolValue(b), nil

	case KindInt:
		i, err := coerceInt(value)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, spec.Name, err)
		}
		return intValue(i), nil

	case KindString:
		s, ok := value.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s: want string, got %T",
				ErrInvalidValue, spec.Name, value)
		}
		if err := validateString(spec.Name, s); err != nil {
			return Value{}, err
		}
		return strValue(s), nil

	default:
		d, err := coerceDisposition(value)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, spec.Name, err)
		}
		if spec.Allowed != nil && !lo.Contains(spec.Allowed, d) {
			return Value{}, fmt.Errorf("%w: %s does not support disposition %q",
				ErrInvalidValue, spec.Name, d)
		}
		return dispValue(d), nil
	}
}

func coerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		// 0/1 style flags
		return v != 0, nil
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("want bool, got %T", value)
}

func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	}
	return 0, fmt.Errorf("want int, got %T", value)
}

func coerceDisposition(value any) (normalize.Disposition, error) {
	switch v := value.(type) {
	case normalize.Disposition:
		if v < normalize.Keep || v > normalize.Decompose {
			return normalize.Keep, fmt.Errorf("unknown disposition %d", int(v))
		}
		return v, nil
	case string:
		return normalize.ParseDisposition(v)
	}
	return normalize.Keep, fmt.Errorf("want disposition, got %T", value)
}

// validateString enforces the keyword sets of the string options. F_DICT
// takes any path; the tokenizer loads and checks it on Set.
func validateString(name, s string) error {
	switch name {
	case "normalize":
		if s == "" {
			return nil
		}
		if _, err := normalize.ParseForm(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
		}
	case "caseHandling":
		switch s {
		case "keep", "lower", "upper":
		default:
			return fmt.Errorf("%w: caseHandling must be keep, lower, or upper, not %q",
				ErrInvalidValue, s)
		}
	case "TOKENTYPE":
		switch s {
		case "words", "chars", "none":
		default:
			return fmt.Errorf("%w: TOKENTYPE must be words, chars, or none, not %q",
				ErrInvalidValue, s)
		}
	}
	return nil
}
