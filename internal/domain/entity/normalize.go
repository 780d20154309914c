package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName case-folds, strips diacritics, trims and collapses inner
// whitespace so "  São   Paulo " and "sao paulo" compare equal.
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// CacheKey builds the geocode cache key "city|state" from normalized text.
func CacheKey(city string, state State) string {
	return NormalizeName(city) + "|" + strings.ToLower(string(state))
}
