package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/category"
)

func TestForPattern_ExactTable(t *testing.T) {
	g := NewGenerator()
	az := analysis.NewAnalyzer()

	tests := []struct {
		pattern  string
		expected string
	}{
		{"node_modules/", "Node.js dependencies"},
		{"__pycache__/", "Python cache directory"},
		{".DS_Store", "macOS system files"},
		{"*.log", "Log files"},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			comment, ok := g.ForPattern(tc.pattern, az.Analyze(tc.pattern))
			require.True(t, ok)
			assert.Equal(t, tc.expected, comment)
		})
	}
}

func TestForPattern_WildcardTable(t *testing.T) {
	g := NewGenerator()
	az := analysis.NewAnalyzer()

	comment, ok := g.ForPattern("npm-debug.log.1", az.Analyze("npm-debug.log.1"))
	require.True(t, ok)
	assert.Equal(t, "NPM debug logs", comment)
}

func TestForPattern_SynthesizedFallback(t *testing.T) {
	g := NewGenerator()
	az := analysis.NewAnalyzer()

	tests := []struct {
		pattern  string
		expected string
	}{
		{"zzzdir/", "Ignore directory"},
		{"zzzfile", "Ignore file"},
		{"!zzzfile", "Don't ignore file"},
		{"/zzzfile", "Ignore file from root"},
		{"zzz-br[xy]", "Ignore file or directory with wildcards"},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			comment, ok := g.ForPattern(tc.pattern, az.Analyze(tc.pattern))
			require.True(t, ok)
			assert.Equal(t, tc.expected, comment)
		})
	}
}

func TestForCategory(t *testing.T) {
	g := NewGenerator()

	comment, ok := g.ForCategory(category.Language("Python"))
	require.True(t, ok)
	assert.Equal(t, "Python language files", comment)

	_, ok = g.ForCategory(category.Framework("React"))
	assert.False(t, ok)
}

func TestDetailed(t *testing.T) {
	g := NewGenerator()
	az := analysis.NewAnalyzer()

	detailed := g.Detailed("*.pyc", az.Analyze("*.pyc"), category.Language("Python"))
	assert.Equal(t, "Python bytecode files; Python language files; Contains wildcards", detailed)

	detailed = g.Detailed("!/zzzfile", az.Analyze("!/zzzfile"), category.Uncategorized())
	assert.Equal(t, "Don't ignore file from root; Absolute path; Negation pattern", detailed)
}
