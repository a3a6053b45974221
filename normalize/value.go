package normalize

import "strconv"

// fractionValues carries the numeric values Unicode assigns to vulgar
// fraction characters. Unicode files these under Number, other.
var fractionValues = map[rune]float64{
	0x00BC: 1.0 / 4, // VULGAR FRACTION ONE QUARTER
	0x00BD: 1.0 / 2, // VULGAR FRACTION ONE HALF
	0x00BE: 3.0 / 4, // VULGAR FRACTION THREE QUARTERS
	0x2150: 1.0 / 7,
	0x2151: 1.0 / 9,
	0x2152: 1.0 / 10,
	0x2153: 1.0 / 3,
	0x2154: 2.0 / 3,
	0x2155: 1.0 / 5,
	0x2156: 2.0 / 5,
	0x2157: 3.0 / 5,
	0x2158: 4.0 / 5,
	0x2159: 1.0 / 6,
	0x215A: 5.0 / 6,
	0x215B: 1.0 / 8,
	0x215C: 3.0 / 8,
	0x215D: 5.0 / 8,
	0x215E: 7.0 / 8,
	0x2189: 0, // VULGAR FRACTION ZERO THIRDS
}

// digitBases lists the first code point of decimal-digit runs whose
// members carry values 0 through 9.
var digitBases = []rune{
	0x0030, // ASCII
	0x0660, // Arabic-Indic
	0x06F0, // Extended Arabic-Indic
	0x0966, // Devanagari
	0x09E6, // Bengali
	0xFF10, // Fullwidth
}

// numericValue renders the Unicode numeric value of r in decimal, for
// digits in common decimal runs, superscripts, and vulgar fractions.
func numericValue(r rune) (string, bool) {
	for _, base := range digitBases {
		if r >= base && r <= base+9 {
			return string('0' + (r - base)), true
		}
	}
	switch r {
	case 0x00B9:
		return "1", true // SUPERSCRIPT ONE
	case 0x00B2:
		return "2", true
	case 0x00B3:
		return "3", true
	}
	if v, ok := fractionValues[r]; ok {
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
