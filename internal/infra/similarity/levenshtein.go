// Package similarity scores string likeness for fuzzy municipality matching.
package similarity

import (
	"math"
	"unicode/utf8"

	"locator/internal/domain/service"

	"github.com/agnivade/levenshtein"
)

// Ratio returns 100 * (1 - editDistance / longerLength), rounded to the nearest integer.
// Inputs are compared as given; callers normalize them first.
func Ratio(a, b string) int {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)

	return int(math.Round(100 * (1 - float64(dist)/float64(maxLen))))
}

// NewLevenshtein returns the Levenshtein ratio as a Similarity capability.
func NewLevenshtein() service.Similarity {
	return service.SimilarityFunc(Ratio)
}
