package normalize

import (
	"testing"
)

func TestExpandBackslash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no escapes", "plain text", "plain text"},
		{"newline", `a\nb`, "a\nb"},
		{"tab", `a\tb`, "a\tb"},
		{"carriage return", `a\rb`, "a\rb"},
		{"escaped backslash", `a\\b`, `a\b`},
		{"escaped quote", `say \"hi\"`, `say "hi"`},
		{"hex escape", `\x41\x42`, "AB"},
		{"short unicode escape", `café`, "café"},
		{"long unicode escape", `\U0001F600`, "\U0001F600"},
		{"octal escape", `\101\102`, "AB"},
		{"two digit octal", `\77`, "?"},
		{"malformed hex kept literal", `\xZZ`, `\xZZ`},
		{"malformed unicode kept literal", `\u12`, `\u12`},
		{"trailing backslash kept", `end\`, `end\`},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandBackslash(tc.input)
			if got != tc.expected {
				t.Errorf("ExpandBackslash(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestExpandPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no escapes", "plain", "plain"},
		{"space", "a%20b", "a b"},
		{"utf8 pair", "caf%C3%A9", "café"},
		{"plus left alone", "a+b", "a+b"},
		{"bare percent kept", "100% done", "100% done"},
		{"trailing percent kept", "50%", "50%"},
		{"bad hex kept", "%zz", "%zz"},
		{"mixed", "q=%22go%22 now", `q="go" now`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandPercent(tc.input)
			if got != tc.expected {
				t.Errorf("ExpandPercent(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestExpandEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"named", "Tom &amp; Jerry", "Tom & Jerry"},
		{"decimal", "&#233;", "é"},
		{"hex", "&#xE9;", "é"},
		{"angle brackets", "&lt;b&gt;", "<b>"},
		{"unknown left alone", "&bogus;", "&bogus;"},
		{"no entities", "plain", "plain"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandEntities(tc.input)
			if got != tc.expected {
				t.Errorf("ExpandEntities(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
