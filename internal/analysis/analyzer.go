// Package analysis derives semantic properties from gitignore patterns
// and defines the equivalence and conflict relations used by the
// optimizer.
//
// The equivalence rule is deliberately narrow: two patterns are
// equivalent when their normalized forms match, or when their de-negated
// bases differ by exactly one leading-slash or exactly one trailing-slash
// change. The relation is applied pairwise only and is not transitively
// closed; "build" ~ "build/" and "build" ~ "/build", but "/build" and
// "build/" are not equivalent to each other. Downstream behavior depends
// on this narrowness, so it must not be widened to full glob semantics.
package analysis

import (
	"runtime"
	"strings"
)

// PatternType is a heuristic classification of what a pattern targets.
// It is derived from the pattern text alone, not from real glob matching.
type PatternType int

const (
	// TypeFile is a plain name with no wildcard, dot, or trailing slash.
	TypeFile PatternType = iota
	// TypeDirectory is a pattern ending in '/'.
	TypeDirectory
	// TypeBoth is a pattern with wildcards or a literal '.', which can
	// name either files or directories.
	TypeBoth
)

// String returns a human-readable name for the pattern type.
func (t PatternType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeBoth:
		return "file or directory"
	default:
		return "unknown"
	}
}

// Analysis is the semantic descriptor computed for a single pattern.
// It is a pure value derived on demand; nothing stores or mutates it.
type Analysis struct {
	Original   string
	Normalized string
	Type       PatternType

	Negated   bool // leading unescaped '!'
	Anchored  bool // base starts with '/'
	Wildcard  bool // base contains '*', '?' or '['
	Globstar  bool // base contains "**"
	CaseSense bool // gitignore patterns are case-sensitive

	MatchesFiles bool
	MatchesDirs  bool
}

// Base returns the normalized pattern without its negation prefix.
func (a Analysis) Base() string {
	if a.Negated {
		return a.Normalized[1:]
	}
	return a.Normalized
}

// Analyzer computes pattern analyses. The zero value is not usable;
// construct with NewAnalyzer. An Analyzer carries no per-call state and
// is safe to share across goroutines.
type Analyzer struct {
	normalize bool
}

// NewAnalyzer creates an analyzer with normalization enabled.
func NewAnalyzer() *Analyzer {
	return &Analyzer{normalize: true}
}

// Normalize trims trailing whitespace and collapses runs of '/' into a
// single separator. Globstar segments contain no slashes themselves, so
// only consecutive separator slashes collapse ("a//**//b" becomes
// "a/**/b"). On Windows, backslashes are converted to forward slashes
// for comparison purposes only; stored originals are never rewritten.
func (az *Analyzer) Normalize(pattern string) string {
	if !az.normalize {
		return pattern
	}

	normalized := strings.TrimRight(pattern, " \t")

	if runtime.GOOS == "windows" {
		normalized = strings.ReplaceAll(normalized, `\`, "/")
	}

	if !strings.Contains(normalized, "//") {
		return normalized
	}
	var b strings.Builder
	b.Grow(len(normalized))
	prevSlash := false
	for _, ch := range normalized {
		if ch == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Analyze computes the semantic descriptor for a pattern. It is a pure
// function with no failure mode.
func (az *Analyzer) Analyze(pattern string) Analysis {
	normalized := az.Normalize(pattern)

	negated := strings.HasPrefix(normalized, "!")
	base := normalized
	if negated {
		base = base[1:]
	}

	a := Analysis{
		Original:   pattern,
		Normalized: normalized,
		Negated:    negated,
		Anchored:   strings.HasPrefix(base, "/"),
		Wildcard:   strings.ContainsAny(base, "*?["),
		Globstar:   strings.Contains(base, "**"),
		CaseSense:  true,
	}

	switch {
	case strings.HasSuffix(base, "/"):
		a.Type = TypeDirectory
	case a.Wildcard || strings.Contains(base, "."):
		a.Type = TypeBoth
	default:
		a.Type = TypeFile
	}

	a.MatchesFiles = a.Type == TypeFile || a.Type == TypeBoth
	a.MatchesDirs = a.Type == TypeDirectory || a.Type == TypeBoth

	return a
}

// AreEquivalent reports whether two patterns denote the same ignore rule.
// A pattern and its negation are never equivalent: negation changes the
// rule's identity. The predicate is symmetric.
func (az *Analyzer) AreEquivalent(p1, p2 string) bool {
	a1 := az.Analyze(p1)
	a2 := az.Analyze(p2)

	if a1.Negated != a2.Negated {
		return false
	}
	if a1.Normalized == a2.Normalized {
		return true
	}
	return basesEquivalent(a1.Base(), a2.Base())
}

// AreConflicting reports whether exactly one of the pair negates the
// other's equivalent base rule. The predicate is symmetric.
func (az *Analyzer) AreConflicting(p1, p2 string) bool {
	a1 := az.Analyze(p1)
	a2 := az.Analyze(p2)

	if a1.Negated == a2.Negated {
		return false
	}
	b1, b2 := a1.Base(), a2.Base()
	return b1 == b2 || basesEquivalent(b1, b2)
}

// basesEquivalent applies the one-hop slash rule: the bases must be
// identical, or differ by exactly one trailing slash, or exactly one
// leading slash. Differing by both at once is not equivalence.
func basesEquivalent(b1, b2 string) bool {
	if b1 == b2 {
		return true
	}

	// Trailing slash: "build/" vs "build".
	if strings.HasSuffix(b1, "/") && b2 == b1[:len(b1)-1] {
		return true
	}
	if strings.HasSuffix(b2, "/") && b1 == b2[:len(b2)-1] {
		return true
	}

	// Leading slash: "/build" vs "build".
	if strings.HasPrefix(b1, "/") && b2 == b1[1:] {
		return true
	}
	if strings.HasPrefix(b2, "/") && b1 == b2[1:] {
		return true
	}

	return false
}

// GroupByBase buckets patterns by their normalized de-negated base.
// Within each group, input order is preserved.
func (az *Analyzer) GroupByBase(patterns []string) map[string][]string {
	groups := make(map[string][]string)
	for _, p := range patterns {
		base := az.Analyze(p).Base()
		groups[base] = append(groups[base], p)
	}
	return groups
}

// Representatives picks one pattern per base group, preferring the
// shortest spelling. Ties keep the earlier pattern.
func (az *Analyzer) Representatives(patterns []string) []string {
	groups := az.GroupByBase(patterns)

	// Deterministic output order: first appearance of each base.
	seen := make(map[string]bool, len(groups))
	out := make([]string, 0, len(groups))
	for _, p := range patterns {
		base := az.Analyze(p).Base()
		if seen[base] {
			continue
		}
		seen[base] = true

		rep := groups[base][0]
		for _, candidate := range groups[base][1:] {
			if len(candidate) < len(rep) {
				rep = candidate
			}
		}
		out = append(out, rep)
	}
	return out
}
