package phone

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"five digits", "12345", false},
		{"six digits", "123456", true},
		{"fifteen digits", "123456789012345", true},
		{"sixteen digits", "1234567890123456", false},
		{"formatted", "(555) 123-4567", true},
		{"letters ignored", "abc123def456", true},
		{"only punctuation", "()- -()", false},
		{"digits spread over noise", "1-2-3-4-5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateNumber(tt.raw))
		})
	}
}

func TestValidateNumber_MatchesDigitCount(t *testing.T) {
	inputs := []string{"+44 20 7946 0958", "x", "0000000", "12 34 56 78 90 12 34 56", "☎ 555 0100 22"}
	for _, in := range inputs {
		n := DigitCount(in)
		assert.Equal(t, n >= 6 && n <= 15, ValidateNumber(in), in)
	}
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "+44 7911 123456", FormatDisplay("GB", "7911 123456"))
	assert.Equal(t, "+1 555-0100", FormatDisplay("US", "555-0100"))
	assert.Equal(t, "+40", FormatDisplay("RO", ""))
	assert.Equal(t, "+48 600 100 200", FormatDisplay("PL", "600 100 200  "))
}

func TestFormatDisplay_UnknownCode(t *testing.T) {
	assert.Equal(t, "555 0100", FormatDisplay("XX", "  555 0100 "))
	assert.Equal(t, "555 0100", FormatDisplay("", "555 0100"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", Sanitize("(555) 123-4567"))
	assert.Equal(t, "5551234567", Sanitize("+555.123.4567"))
	assert.Equal(t, "12", Sanitize("1a2b"))
	assert.Equal(t, strings.Repeat("1", MaxInputLength), Sanitize(strings.Repeat("1", 30)))
}

func TestCountries_SortedByName(t *testing.T) {
	list := Countries()
	require.Len(t, list, 76)

	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	}))
	assert.Equal(t, "Algeria", list[0].Name)
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("NZ")
	require.True(t, ok)
	assert.Equal(t, "+64", c.Dial)

	_, ok = Lookup("nz")
	assert.False(t, ok)

	_, ok = Lookup(DefaultCountryCode)
	assert.True(t, ok)
}
