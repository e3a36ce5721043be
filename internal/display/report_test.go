package display

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/category"
	"github.com/standardbeagle/gix/internal/comments"
	"github.com/standardbeagle/gix/internal/optimize"
	"github.com/standardbeagle/gix/internal/parser"
)

func TestFormatOptimization_Text(t *testing.T) {
	before := parser.Parse("*.log\n*.log\nbuild/")
	after := optimize.Optimize(before)

	rf := NewReportFormatter(ReporterOptions{Format: "text"})
	out := rf.FormatOptimization(".gitignore", before, after)

	assert.Contains(t, out, "Optimized .gitignore")
	assert.Contains(t, out, "Patterns: 3 -> 2 (1 removed)")
	assert.Contains(t, out, "Duplicates found: 1")
}

func TestFormatOptimization_VerboseListsDuplicateLines(t *testing.T) {
	before := parser.Parse("*.log\nbuild/\n*.log")
	after := optimize.Optimize(before)

	rf := NewReportFormatter(ReporterOptions{Format: "text", Verbose: true})
	out := rf.FormatOptimization(".gitignore", before, after)

	assert.Contains(t, out, "*.log at lines 1, 3")
}

func TestFormatOptimization_JSON(t *testing.T) {
	before := parser.Parse("*.log\n*.log")
	after := optimize.Optimize(before)

	rf := NewReportFormatter(ReporterOptions{Format: "json"})
	out := rf.FormatOptimization(".gitignore", before, after)

	var report struct {
		Path           string           `json:"path"`
		PatternsBefore int              `json:"patterns_before"`
		PatternsAfter  int              `json:"patterns_after"`
		Duplicates     map[string][]int `json:"duplicates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, ".gitignore", report.Path)
	assert.Equal(t, 2, report.PatternsBefore)
	assert.Equal(t, 1, report.PatternsAfter)
	assert.Equal(t, []int{1, 2}, report.Duplicates["*.log"])
}

func TestFormatOptimization_Compact(t *testing.T) {
	before := parser.Parse("*.log\n*.log")
	after := optimize.Optimize(before)

	rf := NewReportFormatter(ReporterOptions{Format: "compact"})
	out := rf.FormatOptimization(".gitignore", before, after)

	assert.Equal(t, ".gitignore: 2->1 patterns, 1 removed\n", out)
}

func TestFormatAnalysis(t *testing.T) {
	az := analysis.NewAnalyzer()
	summary := az.Summarize([]string{"*.log", "build/", "!build"})

	rf := NewReportFormatter(ReporterOptions{Format: "text"})
	out := rf.FormatAnalysis(".gitignore", &summary)

	assert.Contains(t, out, "Analysis of .gitignore")
	assert.Contains(t, out, "Patterns: 3")
	assert.Contains(t, out, "Conflicts: 1")
	assert.Contains(t, out, "build/ conflicts with !build")
}

func TestFormatConflicts(t *testing.T) {
	rf := NewReportFormatter(ReporterOptions{Format: "text"})

	assert.Equal(t, "No conflicts detected\n", rf.FormatConflicts(nil))

	out := rf.FormatConflicts([]analysis.Conflict{{A: "foo", B: "!foo"}})
	assert.Contains(t, out, "Conflicts: 1")
	assert.Contains(t, out, "foo conflicts with !foo")
}

func TestFormatSimilar(t *testing.T) {
	rf := NewReportFormatter(ReporterOptions{Format: "text"})

	assert.Empty(t, rf.FormatSimilar(nil))

	out := rf.FormatSimilar([]analysis.SimilarPair{{A: "build/", B: "biuld/", Score: 0.95}})
	assert.Contains(t, out, "build/ ~ biuld/ (0.95)")
}

func TestFormatCategories(t *testing.T) {
	c := category.NewCategorizer()
	summary := c.Summarize([]string{"*.pyc", "__pycache__/", ".DS_Store"})

	rf := NewReportFormatter(ReporterOptions{Format: "text"})
	out := rf.FormatCategories(&summary)

	assert.Contains(t, out, "Categories (3 patterns)")
	assert.Contains(t, out, "Language: Python")
	assert.Contains(t, out, "OS: macOS")
}

func TestAnnotatePatterns(t *testing.T) {
	file := parser.Parse("node_modules/\nzzzdir/")
	az := analysis.NewAnalyzer()
	gen := comments.NewGenerator()

	out := AnnotatePatterns(file, gen, az)
	assert.Contains(t, out, "node_modules/\n  # Node.js dependencies")
	assert.Contains(t, out, "zzzdir/\n  # Ignore directory")
}

func TestGroupedByCategory(t *testing.T) {
	file := parser.Parse("*.pyc\n.DS_Store\n__pycache__/")
	out := GroupedByCategory(file, category.NewCategorizer())

	assert.Equal(t, "# Python\n*.pyc\n__pycache__/\n\n# macOS\n.DS_Store\n", out)
}

func TestDryRunDiff(t *testing.T) {
	before := parser.Parse("*.log\n*.log\nbuild/")
	after := optimize.Optimize(before)

	out := DryRunDiff(before, after)
	assert.Contains(t, out, "- *.log (line 2)")
	assert.NotContains(t, out, "line 1")

	unchanged := parser.Parse("*.log")
	assert.Equal(t, "No changes\n", DryRunDiff(unchanged, optimize.Optimize(unchanged)))
}

func TestDryRunDiff_AggressiveShowsCommentsAndBlanks(t *testing.T) {
	before := parser.Parse("# logs\n*.log\n\n\n# logs\nbuild/")
	after := optimize.OptimizeAggressive(before)

	out := DryRunDiff(before, after)
	assert.Contains(t, out, "- (blank, line 4)")
	assert.Contains(t, out, "- # logs (line 5)")
	assert.NotContains(t, out, "line 2")
}
