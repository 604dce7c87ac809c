package strkit

import (
	"math"
	"unicode/utf8"
)

// DefaultSimilarityDigits is the rounding precision used by StringSimilarity
const DefaultSimilarityDigits = 3

// Distance computes the Levenshtein distance between a and b, the minimum
// number of single rune insertions, deletions or substitutions needed to turn
// a into b. The comparison is case-sensitive and works on code points.
//
// Only two rows of the matrix are kept, so the space used is O(min(len(a), len(b))).
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// keep the shorter string on the row axis
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns the similarity of a and b as a percentage in [0, 100],
// rounded to the given number of decimal places.
//
// A nil pointer means the value is absent. Two absent values are 100% similar
// while one absent value against a present one scores 0, even when the present
// value is empty.
func Similarity(a, b *string, digits int) float64 {
	switch {
	case a == nil && b == nil:
		return 100.0
	case a == nil || b == nil:
		return 0.0
	}

	maxLen := max(utf8.RuneCountInString(*a), utf8.RuneCountInString(*b))
	if maxLen == 0 {
		return 100.0
	}

	score := float64(maxLen-Distance(*a, *b)) / float64(maxLen) * 100
	return roundHalfAwayFromZero(score, digits)
}

// StringSimilarity is Similarity for two present values with DefaultSimilarityDigits.
func StringSimilarity(a, b string) float64 {
	return Similarity(&a, &b, DefaultSimilarityDigits)
}

func roundHalfAwayFromZero(v float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}

	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
