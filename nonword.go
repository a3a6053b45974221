package textkit

import (
	"github.com/jamesainslie/go-textkit/normalize"
)

// nonWordStage describes one non-word token class: the option that
// controls it, the pattern that finds it, and the placeholder that
// stands in for matches under the unify disposition. Each placeholder
// matches its own pattern, so unify is idempotent.
type nonWordStage struct {
	Name        string
	Pattern     string
	Placeholder string
}

// Stage order matters: emails must run before @-mentions and dates
// before bare numbers, or the later pattern eats the earlier one's
// parts.
var nonWordStages = []nonWordStage{
	{
		Name:        "T_TIME",
		Pattern:     `\b[012]?\d:[0-5]\d(:[0-5]\d)?\s*(a\.?m\.?|p\.?m\.?)?(\s?[ECMP][SD]T)?\b`,
		Placeholder: "09:09",
	},
	{
		Name:        "T_DATE",
		Pattern:     `\b([12]\d\d\d[-/][0-3]?\d[-/][0-3]?\d|[12]\d\d\d ?(AD|BC|CE|BCE))\b`,
		Placeholder: "2009-09-09",
	},
	{
		Name:        "T_FRACTION",
		Pattern:     `\b(\d+-)?\d+/\d+\b|` + fractionChars,
		Placeholder: "9/9",
	},
	{
		Name:        "T_NUMBER",
		Pattern:     `[-+]?\b\d+(\.\d+)?([Ee][-+]?\d+)?\b`,
		Placeholder: "9999",
	},
	{
		Name:        "T_CURRENCY",
		Pattern:     currencyChars + `\d+(\.\d+)?[KMB]?\b`,
		Placeholder: "$99",
	},
	{
		Name:        "T_PERCENT",
		Pattern:     `\b\d+(\.\d+)?` + percentChars,
		Placeholder: "99%",
	},
	{
		Name:        "T_EMOTICON",
		Pattern:     `[-:;]+[(){}<>]`,
		Placeholder: ":)",
	},
	{
		Name:        "T_HASHTAG",
		Pattern:     `\B#\pL+\b`,
		Placeholder: "#nine",
	},
	{
		Name:        "T_EMAIL",
		Pattern:     `\b\w+@\w+(\.\w+)+\b`,
		Placeholder: "u@nine.com",
	},
	{
		Name:        "T_USER",
		Pattern:     `\B@\w+\b`,
		Placeholder: "@nine",
	},
	{
		Name:        "T_URI",
		Pattern:     `\b(shttp|http|https|ftp|mailto)://[-~?\[\]()&@+\w.:/$#]+\w\b`,
		Placeholder: "http://www.nine.com",
	},
}

// fractionChars covers the precomposed vulgar fractions and the
// fraction sign. The class sits outside the \b alternative since word
// boundaries are undefined next to these symbols.
const fractionChars = `[\x{00BC}-\x{00BE}\x{0B72}-\x{0B77}` +
	`\x{0C78}-\x{0C7E}\x{0D73}-\x{0D75}\x{2044}\x{2150}-\x{215F}` +
	`\x{2189}\x{2CFD}\x{A830}-\x{A835}\x{10E7B}-\x{10E7E}]`

// currencyChars covers the common standalone currency signs plus the
// Currency Symbols block and the halfwidth/fullwidth forms.
const currencyChars = `[$\x{00A3}\x{00A4}\x{0E3F}\x{17DB}` +
	`\x{20A0}-\x{20CF}\x{FE69}\x{FF04}\x{FFE1}]`

// percentChars covers percent, per-mille, and per-myriad signs in
// their ASCII, Arabic, and wide forms.
const percentChars = `[%\x{2030}\x{2031}\x{0609}\x{060A}` +
	`\x{066A}\x{FE6A}\x{FF05}]`

// nonWordTokens applies every non-keep stage in order, rewriting
// matches per the stage's disposition.
func (t *Tokenizer) nonWordTokens(s string) (string, error) {
	for _, st := range nonWordStages {
		d := t.reg.disp(st.Name)
		if d == normalize.Keep {
			continue
		}
		re, err := cachedRegexp(st.Pattern)
		if err != nil {
			return "", err
		}
		// Literal replacement: "$99" must not read as a group reference.
		switch d {
		case normalize.Unify:
			s = re.ReplaceAllLiteralString(s, st.Placeholder)
		case normalize.Delete:
			s = re.ReplaceAllLiteralString(s, "")
		default:
			s = re.ReplaceAllLiteralString(s, " ")
		}
	}
	return s, nil
}
