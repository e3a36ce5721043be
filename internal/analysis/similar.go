package analysis

import (
	"github.com/hbollon/go-edlib"
)

// DefaultSimilarityThreshold flags only near-identical spellings; below
// this, pattern pairs are too different to be likely typos.
const DefaultSimilarityThreshold = 0.92

// SimilarPair is a pair of distinct, non-equivalent patterns whose
// spellings are close enough to suggest a typo (e.g. "build/" vs
// "biuld/"). Score is Jaro-Winkler similarity in [0, 1].
type SimilarPair struct {
	A     string
	B     string
	Score float64
}

// FindSimilar scans unordered pairs of patterns for near-duplicates.
// Pairs that are already equivalent or conflicting are skipped: those are
// handled by deduplication and conflict reporting, not typo detection.
// Results are advisory only and never feed back into optimization.
func (az *Analyzer) FindSimilar(patterns []string, threshold float64) []SimilarPair {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}

	var pairs []SimilarPair
	for i, p1 := range patterns {
		for _, p2 := range patterns[i+1:] {
			if p1 == p2 || az.AreEquivalent(p1, p2) || az.AreConflicting(p1, p2) {
				continue
			}
			score, err := edlib.StringsSimilarity(p1, p2, edlib.JaroWinkler)
			if err != nil {
				continue
			}
			if float64(score) >= threshold {
				pairs = append(pairs, SimilarPair{A: p1, B: p2, Score: float64(score)})
			}
		}
	}
	return pairs
}
