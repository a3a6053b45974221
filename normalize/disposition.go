package normalize

import "fmt"

// Disposition selects what happens to the characters of a category
// during normalization.
type Disposition int

const (
	// Keep leaves matching characters unchanged.
	Keep Disposition = iota
	// Unify replaces every matching character with the category's
	// canonical substitute.
	Unify
	// Delete removes matching characters.
	Delete
	// Space replaces matching characters with a single space.
	Space
	// Strip decomposes matching characters (NFKD) and drops combining marks.
	Strip
	// Value replaces characters carrying a Unicode numeric value with
	// that value's decimal rendering.
	Value
	// Upper case-folds matching characters to upper case.
	Upper
	// Lower case-folds matching characters to lower case.
	Lower
	// Decompose decomposes matching characters (NFKD) and leaves them so.
	Decompose
)

var dispositionNames = []string{
	Keep:      "keep",
	Unify:     "unify",
	Delete:    "delete",
	Space:     "space",
	Strip:     "strip",
	Value:     "value",
	Upper:     "upper",
	Lower:     "lower",
	Decompose: "decompose",
}

func (d Disposition) String() string {
	if d < 0 || int(d) >= len(dispositionNames) {
		return fmt.Sprintf("Disposition(%d)", int(d))
	}
	return dispositionNames[d]
}

// ParseDisposition maps a keyword to its Disposition.
func ParseDisposition(s string) (Disposition, error) {
	for d, name := range dispositionNames {
		if s == name {
			return Disposition(d), nil
		}
	}
	return Keep, fmt.Errorf("unknown disposition %q", s)
}
