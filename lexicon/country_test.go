package lexicon

import (
	"sort"
	"testing"
)

func TestCountryByAlpha2(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		alpha3  string
		numeric int
		found   bool
	}{
		{"uppercase", "FJ", "FJI", 242, true},
		{"lowercase folds", "de", "DEU", 276, true},
		{"mixed case", "Us", "USA", 840, true},
		{"unknown", "XX", "", 0, false},
		{"alpha3 is not alpha2", "FJI", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := CountryByAlpha2(tc.code)
			if ok != tc.found {
				t.Fatalf("CountryByAlpha2(%q) found = %v, want %v", tc.code, ok, tc.found)
			}
			if c.Alpha3 != tc.alpha3 || c.Numeric != tc.numeric {
				t.Errorf("CountryByAlpha2(%q) = %+v, want alpha3 %q numeric %d",
					tc.code, c, tc.alpha3, tc.numeric)
			}
		})
	}
}

func TestCountryByAlpha3(t *testing.T) {
	c, ok := CountryByAlpha3("nzl")
	if !ok {
		t.Fatal("CountryByAlpha3(\"nzl\") not found")
	}
	if c.Name != "New Zealand" {
		t.Errorf("Name = %q, want %q", c.Name, "New Zealand")
	}
	if _, ok := CountryByAlpha3("ZZZ"); ok {
		t.Error("CountryByAlpha3(\"ZZZ\") found = true, want false")
	}
}

func TestCountryCodes(t *testing.T) {
	codes := CountryCodes()
	if len(codes) != len(countries) {
		t.Fatalf("len = %d, want %d", len(codes), len(countries))
	}
	if !sort.StringsAreSorted(codes) {
		t.Error("codes are not sorted")
	}
	for _, code := range codes {
		if len(code) != 2 {
			t.Errorf("code %q is not two letters", code)
		}
	}
}
