// Package display renders optimization and analysis results for the
// terminal.
package display

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/category"
	"github.com/standardbeagle/gix/internal/comments"
	"github.com/standardbeagle/gix/internal/types"
)

// ReportFormatter formats results for display
type ReportFormatter struct {
	options ReporterOptions
}

// ReporterOptions controls report formatting
type ReporterOptions struct {
	Format  string // "text", "json", "compact"
	Verbose bool   // Show per-pattern detail
	Indent  string // Indentation string
}

// NewReportFormatter creates a new report formatter
func NewReportFormatter(options ReporterOptions) *ReportFormatter {
	if options.Indent == "" {
		options.Indent = "  "
	}
	return &ReportFormatter{options: options}
}

// FormatOptimization formats a before/after optimization report.
func (rf *ReportFormatter) FormatOptimization(path string, before, after *types.File) string {
	switch rf.options.Format {
	case "json":
		return rf.optimizationJSON(path, before, after)
	case "compact":
		return rf.optimizationCompact(path, before, after)
	default:
		return rf.optimizationText(path, before, after)
	}
}

func (rf *ReportFormatter) optimizationText(path string, before, after *types.File) string {
	var sb strings.Builder

	removed := before.Stats.PatternLines - after.Stats.PatternLines
	sb.WriteString(fmt.Sprintf("Optimized %s\n", path))
	sb.WriteString(fmt.Sprintf("Patterns: %d -> %d (%d removed)\n",
		before.Stats.PatternLines, after.Stats.PatternLines, removed))
	sb.WriteString(fmt.Sprintf("Lines: %d -> %d\n",
		before.Stats.TotalLines, after.Stats.TotalLines))

	dups := before.FindDuplicates()
	if len(dups) > 0 {
		sb.WriteString(fmt.Sprintf("Duplicates found: %d\n", len(dups)))
		if rf.options.Verbose {
			for _, pattern := range sortedKeys(dups) {
				lines := dups[pattern]
				sb.WriteString(fmt.Sprintf("%s%s at lines %s\n",
					rf.options.Indent, pattern, joinInts(lines)))
			}
		}
	}

	return sb.String()
}

func (rf *ReportFormatter) optimizationCompact(path string, before, after *types.File) string {
	removed := before.Stats.PatternLines - after.Stats.PatternLines
	return fmt.Sprintf("%s: %d->%d patterns, %d removed\n",
		path, before.Stats.PatternLines, after.Stats.PatternLines, removed)
}

func (rf *ReportFormatter) optimizationJSON(path string, before, after *types.File) string {
	report := struct {
		Path           string           `json:"path"`
		PatternsBefore int              `json:"patterns_before"`
		PatternsAfter  int              `json:"patterns_after"`
		LinesBefore    int              `json:"lines_before"`
		LinesAfter     int              `json:"lines_after"`
		Duplicates     map[string][]int `json:"duplicates,omitempty"`
	}{
		Path:           path,
		PatternsBefore: before.Stats.PatternLines,
		PatternsAfter:  after.Stats.PatternLines,
		LinesBefore:    before.Stats.TotalLines,
		LinesAfter:     after.Stats.TotalLines,
		Duplicates:     before.FindDuplicates(),
	}
	return marshalJSON(report)
}

// FormatAnalysis formats an analysis summary for a file.
func (rf *ReportFormatter) FormatAnalysis(path string, summary *analysis.Summary) string {
	if rf.options.Format == "json" {
		report := struct {
			Path            string              `json:"path"`
			Total           int                 `json:"total_patterns"`
			Files           int                 `json:"file_patterns"`
			Directories     int                 `json:"directory_patterns"`
			Negations       int                 `json:"negations"`
			Absolute        int                 `json:"absolute"`
			Wildcards       int                 `json:"wildcards"`
			Globstars       int                 `json:"globstars"`
			Conflicts       int                 `json:"conflicts"`
			ConflictDetails []analysis.Conflict `json:"conflict_details,omitempty"`
		}{
			Path:        path,
			Total:       summary.TotalPatterns,
			Files:       summary.FilePatterns,
			Directories: summary.DirectoryPatterns,
			Negations:   summary.NegationPatterns,
			Absolute:    summary.AbsolutePatterns,
			Wildcards:   summary.WildcardPatterns,
			Globstars:   summary.GlobstarPatterns,
			Conflicts:   summary.ConflictCount(),
		}
		if rf.options.Verbose {
			report.ConflictDetails = summary.Conflicts
		}
		return marshalJSON(report)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analysis of %s\n", path))
	sb.WriteString(fmt.Sprintf("Patterns: %d (%d files, %d directories, %d both)\n",
		summary.TotalPatterns, summary.FilePatterns, summary.DirectoryPatterns, summary.BothPatterns))
	sb.WriteString(fmt.Sprintf("Negations: %d, Absolute: %d, Wildcards: %d, Globstars: %d\n",
		summary.NegationPatterns, summary.AbsolutePatterns, summary.WildcardPatterns, summary.GlobstarPatterns))

	if summary.HasConflicts() {
		sb.WriteString(fmt.Sprintf("Conflicts: %d\n", summary.ConflictCount()))
		for _, c := range summary.Conflicts {
			sb.WriteString(fmt.Sprintf("%s%s conflicts with %s\n",
				rf.options.Indent, c.A, c.B))
		}
	}

	return sb.String()
}

// FormatCategories formats a category summary.
func (rf *ReportFormatter) FormatCategories(summary *category.Summary) string {
	if rf.options.Format == "json" {
		counts := make(map[string]int, len(summary.Counts))
		for cat, n := range summary.Counts {
			counts[cat.DisplayName()] = n
		}
		report := struct {
			Total      int            `json:"total_patterns"`
			Categories map[string]int `json:"categories"`
		}{Total: summary.TotalPatterns, Categories: counts}
		return marshalJSON(report)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Categories (%d patterns)\n", summary.TotalPatterns))
	for _, cc := range summary.Top(0) {
		sb.WriteString(fmt.Sprintf("%s%-24s %d\n",
			rf.options.Indent, cc.Category.DisplayName(), cc.Count))
	}
	return sb.String()
}

// FormatConflicts renders detected rule conflicts.
func (rf *ReportFormatter) FormatConflicts(conflicts []analysis.Conflict) string {
	if len(conflicts) == 0 {
		return "No conflicts detected\n"
	}

	if rf.options.Format == "json" {
		return marshalJSON(conflicts)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Conflicts: %d\n", len(conflicts)))
	for _, c := range conflicts {
		sb.WriteString(fmt.Sprintf("%s%s conflicts with %s\n", rf.options.Indent, c.A, c.B))
	}
	return sb.String()
}

// FormatSimilar renders near-duplicate pattern pairs.
func (rf *ReportFormatter) FormatSimilar(pairs []analysis.SimilarPair) string {
	if len(pairs) == 0 {
		return ""
	}

	if rf.options.Format == "json" {
		return marshalJSON(pairs)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similar patterns: %d pairs (possible typos)\n", len(pairs)))
	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("%s%s ~ %s (%.2f)\n", rf.options.Indent, p.A, p.B, p.Score))
	}
	return sb.String()
}

// AnnotatePatterns returns the file's pattern lines each followed by a
// generated explanatory comment line.
func AnnotatePatterns(file *types.File, gen *comments.Generator, az *analysis.Analyzer) string {
	var sb strings.Builder
	for _, entry := range file.Patterns() {
		a := az.Analyze(entry.Pattern)
		comment, _ := gen.ForPattern(entry.Pattern, a)
		sb.WriteString(fmt.Sprintf("%s\n", entry.Pattern))
		sb.WriteString(fmt.Sprintf("  # %s\n", comment))
	}
	return sb.String()
}

// DryRunDiff renders what an optimization would change without writing.
// Removed lines of every kind are listed, so aggressive-mode comment and
// blank-line drops show up too. after must be the result of optimizing
// before: surviving entries keep their source line numbers.
func DryRunDiff(before, after *types.File) string {
	kept := make(map[int]bool, len(after.Entries))
	for _, e := range after.Entries {
		kept[e.Line] = true
	}

	var sb strings.Builder
	for _, e := range before.Entries {
		if kept[e.Line] {
			continue
		}
		if e.IsBlank() {
			sb.WriteString(fmt.Sprintf("- (blank, line %d)\n", e.Line))
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s (line %d)\n", e.Original, e.Line))
	}
	if sb.Len() == 0 {
		return "No changes\n"
	}
	return sb.String()
}

// GroupedByCategory renders the file's patterns grouped under category
// section headers, in first-seen category order.
func GroupedByCategory(file *types.File, cat *category.Categorizer) string {
	patterns := file.PatternStrings()
	grouped := cat.CategorizeAll(patterns)

	seen := make(map[category.Category]bool, len(grouped))
	var sb strings.Builder
	for _, p := range patterns {
		c := cat.Categorize(p)
		if seen[c] {
			continue
		}
		seen[c] = true

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(c.SectionHeader())
		sb.WriteString("\n")
		for _, member := range grouped[c] {
			sb.WriteString(member)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func marshalJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data) + "\n"
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
