// Package optimize deduplicates gitignore files by pattern equivalence
// while preserving layout.
//
// Standard mode is a stable dedup: the first occurrence of each
// equivalence class survives with its original spelling, and every
// comment and blank line is kept in place. Aggressive mode additionally
// drops repeated comments (trimmed exact match only) and collapses runs
// of blank lines. Neither mode can fail on a well-formed File.
package optimize

import (
	"strings"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/types"
)

// Optimizer walks a parsed file once and rebuilds it without redundant
// entries. Safe for repeated use; it holds no per-call state beyond the
// analyzer.
type Optimizer struct {
	analyzer *analysis.Analyzer
}

// New creates an optimizer over the given analyzer.
func New(az *analysis.Analyzer) *Optimizer {
	return &Optimizer{analyzer: az}
}

// Optimize removes patterns equivalent to an earlier accepted pattern.
// Comments and blank lines always survive in their original relative
// positions. The input file is not modified.
func (o *Optimizer) Optimize(file *types.File) *types.File {
	optimized := types.NewFile()
	var accepted []string

	for _, entry := range file.Entries {
		switch entry.Kind {
		case types.EntryPattern:
			if !o.seenEquivalent(accepted, entry.Pattern) {
				accepted = append(accepted, entry.Pattern)
				optimized.Append(entry)
			}
		case types.EntryComment, types.EntryBlank:
			optimized.Append(entry)
		}
	}

	return optimized
}

// OptimizeAggressive applies the standard pattern rule and additionally
// dedups comments by trimmed text (exact match, case- and
// whitespace-sensitive) and keeps at most one blank line per run.
func (o *Optimizer) OptimizeAggressive(file *types.File) *types.File {
	return o.OptimizeAggressiveN(file, 1)
}

// OptimizeAggressiveN is OptimizeAggressive with a configurable cap on
// consecutive blank lines. A limit below 1 behaves as 1.
func (o *Optimizer) OptimizeAggressiveN(file *types.File, blankRunLimit int) *types.File {
	if blankRunLimit < 1 {
		blankRunLimit = 1
	}

	optimized := types.NewFile()
	var accepted []string
	seenComments := make(map[string]bool)
	blankRun := 0

	for _, entry := range file.Entries {
		switch entry.Kind {
		case types.EntryPattern:
			if !o.seenEquivalent(accepted, entry.Pattern) {
				accepted = append(accepted, entry.Pattern)
				optimized.Append(entry)
				blankRun = 0
			}
		case types.EntryComment:
			trimmed := strings.TrimSpace(entry.Comment)
			if !seenComments[trimmed] {
				seenComments[trimmed] = true
				optimized.Append(entry)
				blankRun = 0
			}
		case types.EntryBlank:
			if blankRun < blankRunLimit {
				blankRun++
				optimized.Append(entry)
			}
		}
	}

	return optimized
}

// OptimizeWithConflicts runs the standard optimization and also reports
// every conflicting pattern pair in the input. Conflict detection never
// changes which entries are kept: a pattern and its negation are not
// equivalent, so both always survive dedup.
func (o *Optimizer) OptimizeWithConflicts(file *types.File) (*types.File, []analysis.Conflict) {
	conflicts := o.analyzer.FindConflicts(file.PatternStrings())
	return o.Optimize(file), conflicts
}

// seenEquivalent tests the pattern against every accepted pattern in
// first-seen order.
func (o *Optimizer) seenEquivalent(accepted []string, pattern string) bool {
	for _, prev := range accepted {
		if o.analyzer.AreEquivalent(pattern, prev) {
			return true
		}
	}
	return false
}

// Optimize is a convenience wrapper using a default analyzer.
func Optimize(file *types.File) *types.File {
	return New(analysis.NewAnalyzer()).Optimize(file)
}

// OptimizeAggressive is a convenience wrapper using a default analyzer.
func OptimizeAggressive(file *types.File) *types.File {
	return New(analysis.NewAnalyzer()).OptimizeAggressive(file)
}

// OptimizeWithConflicts is a convenience wrapper using a default
// analyzer.
func OptimizeWithConflicts(file *types.File) (*types.File, []analysis.Conflict) {
	return New(analysis.NewAnalyzer()).OptimizeWithConflicts(file)
}
