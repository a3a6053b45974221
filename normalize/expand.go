package normalize

import (
	"html"
	"strings"
	"unicode/utf8"
)

// ExpandBackslash decodes backslash escapes left behind by other file
// formats: \n \t \r \f \v \a \b \\ \' \" \0, octal \ooo, hex \xhh, and
// Unicode \uhhhh / \Uhhhhhhhh. Malformed escapes pass through untouched.
func ExpandBackslash(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		switch e := s[i+1]; e {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case '\\', '\'', '"':
			b.WriteByte(e)
			i += 2
		case 'x':
			if v, n := hexRune(s[i+2:], 2); n == 2 {
				b.WriteRune(v)
				i += 4
			} else {
				b.WriteByte(c)
				i++
			}
		case 'u':
			if v, n := hexRune(s[i+2:], 4); n == 4 {
				b.WriteRune(v)
				i += 6
			} else {
				b.WriteByte(c)
				i++
			}
		case 'U':
			if v, n := hexRune(s[i+2:], 8); n == 8 && utf8.ValidRune(v) {
				b.WriteRune(v)
				i += 10
			} else {
				b.WriteByte(c)
				i++
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := octalRune(s[i+1:])
			b.WriteRune(v)
			i += 1 + n
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func hexRune(s string, want int) (rune, int) {
	var v rune
	n := 0
	for n < want && n < len(s) {
		d, ok := hexDigit(s[n])
		if !ok {
			break
		}
		v = v<<4 | rune(d)
		n++
	}
	return v, n
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func octalRune(s string) (rune, int) {
	var v rune
	n := 0
	for n < 3 && n < len(s) && s[n] >= '0' && s[n] <= '7' {
		v = v<<3 | rune(s[n]-'0')
		n++
	}
	return v, n
}

// ExpandPercent decodes %hh escapes as used in URIs. Unlike net/url it is
// lenient: malformed sequences pass through untouched while valid ones
// around them still decode.
func ExpandPercent(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b []byte
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := hexDigit(s[i+1])
			lo, ok2 := hexDigit(s[i+2])
			if ok1 && ok2 {
				b = append(b, byte(hi<<4|lo))
				i += 3
				continue
			}
		}
		b = append(b, s[i])
		i++
	}
	return string(b)
}

// ExpandEntities decodes HTML and XML named entities and numeric
// character references.
func ExpandEntities(s string) string {
	return html.UnescapeString(s)
}
