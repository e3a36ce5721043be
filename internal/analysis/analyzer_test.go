package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	az := NewAnalyzer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "build/", "build/"},
		{"trailing spaces", "build/   ", "build/"},
		{"trailing tabs", "*.log\t", "*.log"},
		{"double slash collapses", "foo//bar", "foo/bar"},
		{"slash run collapses", "foo///bar", "foo/bar"},
		{"globstar survives", "a//**//b", "a/**/b"},
		{"leading whitespace kept", "  build/", "  build/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, az.Normalize(tc.input))
		})
	}
}

func TestAnalyze(t *testing.T) {
	az := NewAnalyzer()

	tests := []struct {
		name     string
		pattern  string
		typ      PatternType
		negated  bool
		anchored bool
		wildcard bool
		globstar bool
	}{
		{"plain file", "README", TypeFile, false, false, false, false},
		{"dotted name", "*.log", TypeBoth, false, false, true, false},
		{"directory", "build/", TypeDirectory, false, false, false, false},
		{"negation", "!important.log", TypeBoth, true, false, false, false},
		{"anchored", "/dist", TypeFile, false, true, false, false},
		{"anchored negation", "!/dist", TypeFile, true, true, false, false},
		{"globstar", "**/logs", TypeFile, false, false, true, true},
		{"question mark", "file?.txt", TypeBoth, false, false, true, false},
		{"char class", "*.py[cod]", TypeBoth, false, false, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := az.Analyze(tc.pattern)
			assert.Equal(t, tc.typ, a.Type)
			assert.Equal(t, tc.negated, a.Negated)
			assert.Equal(t, tc.anchored, a.Anchored)
			assert.Equal(t, tc.wildcard, a.Wildcard)
			assert.Equal(t, tc.globstar, a.Globstar)
			assert.True(t, a.CaseSense)
			assert.Equal(t, tc.pattern, a.Original)
		})
	}
}

func TestAnalyze_MatchFlags(t *testing.T) {
	az := NewAnalyzer()

	dir := az.Analyze("build/")
	assert.False(t, dir.MatchesFiles)
	assert.True(t, dir.MatchesDirs)

	file := az.Analyze("README")
	assert.True(t, file.MatchesFiles)
	assert.False(t, file.MatchesDirs)

	both := az.Analyze("*.log")
	assert.True(t, both.MatchesFiles)
	assert.True(t, both.MatchesDirs)
}

func TestAnalysis_Base(t *testing.T) {
	az := NewAnalyzer()
	assert.Equal(t, "build/", az.Analyze("!build/").Base())
	assert.Equal(t, "build/", az.Analyze("build/").Base())
}

func TestAreEquivalent(t *testing.T) {
	az := NewAnalyzer()

	tests := []struct {
		name       string
		p1, p2     string
		equivalent bool
	}{
		{"identical", "*.log", "*.log", true},
		{"trailing whitespace", "*.log", "*.log  ", true},
		{"trailing slash one hop", "build", "build/", true},
		{"leading slash one hop", "build", "/build", true},
		{"both slashes is two hops", "/build", "build/", false},
		{"case differs", "build/", "BUILD/", false},
		{"negation never equivalent", "foo", "!foo", false},
		{"both negated same base", "!build", "!build/", true},
		{"different names", "dist/", "build/", false},
		{"double slash normalization", "foo//bar", "foo/bar", true},
		{"wildcard vs literal", "*.log", "a.log", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equivalent, az.AreEquivalent(tc.p1, tc.p2))
			assert.Equal(t, tc.equivalent, az.AreEquivalent(tc.p2, tc.p1), "must be symmetric")
		})
	}
}

func TestAreConflicting(t *testing.T) {
	az := NewAnalyzer()

	tests := []struct {
		name        string
		p1, p2      string
		conflicting bool
	}{
		{"pattern and its negation", "foo", "!foo", true},
		{"negation with slash hop", "build/", "!build", true},
		{"negation with leading slash", "/dist", "!dist", true},
		{"same polarity never conflicts", "foo", "foo", false},
		{"both negated", "!foo", "!foo", false},
		{"unrelated bases", "foo", "!bar", false},
		{"two hops is not a conflict", "/build", "!build/", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflicting, az.AreConflicting(tc.p1, tc.p2))
			assert.Equal(t, tc.conflicting, az.AreConflicting(tc.p2, tc.p1), "must be symmetric")
		})
	}
}

func TestGroupByBase(t *testing.T) {
	az := NewAnalyzer()

	groups := az.GroupByBase([]string{"build/", "!build/", "*.log", "build/"})
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"build/", "!build/", "build/"}, groups["build/"])
	assert.Equal(t, []string{"*.log"}, groups["*.log"])
}

func TestRepresentatives(t *testing.T) {
	az := NewAnalyzer()

	// Shortest spelling wins; ties keep the earlier pattern; output is
	// in first-appearance order of bases.
	reps := az.Representatives([]string{"build/ ", "build/", "*.log", "!build/"})
	assert.Equal(t, []string{"build/", "*.log"}, reps)
}

func TestSummarize(t *testing.T) {
	az := NewAnalyzer()

	s := az.Summarize([]string{"*.log", "build/", "!build/", "/dist", "**/cache"})
	assert.Equal(t, 5, s.TotalPatterns)
	assert.Equal(t, 2, s.DirectoryPatterns) // build/ and !build/
	assert.Equal(t, 1, s.NegationPatterns)
	assert.Equal(t, 1, s.AbsolutePatterns)
	assert.Equal(t, 2, s.WildcardPatterns)
	assert.Equal(t, 1, s.GlobstarPatterns)
	assert.True(t, s.HasConflicts())
	assert.Equal(t, 1, s.ConflictCount())
}
