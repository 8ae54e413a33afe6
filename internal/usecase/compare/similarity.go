package compare

import (
	"context"
	"strings"
)

// currency symbols and thousands separators stripped before comparison
var normalizeReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// Normalize prepares a raw field value for comparison: currency symbols
// and thousands separators are stripped, whitespace runs collapse to a
// single space, the result is trimmed and lowercased.
func Normalize(v string) string {
	v = normalizeReplacer.Replace(v)
	v = strings.Join(strings.Fields(v), " ")
	return strings.ToLower(v)
}

// TokenOverlap is the default scoring strategy. Values equal after
// normalization score 1.0; otherwise the score is the Jaccard coefficient
// over the distinct whitespace tokens of each side. Single-token values
// (dates, IDs, currency codes) therefore behave like exact matching, while
// multi-word values such as counterparty names tolerate reordering and
// partial overlap.
type TokenOverlap struct{}

// Score implements Scorer.
func (TokenOverlap) Score(_ context.Context, a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 1.0
	}

	setA := tokenSet(na)
	setB := tokenSet(nb)

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
