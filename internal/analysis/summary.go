package analysis

// Summary aggregates the analyses of a set of patterns. It is a plain
// fold over Analysis values and carries no invariants beyond being a
// consistent sum of its inputs.
type Summary struct {
	TotalPatterns     int
	FilePatterns      int
	DirectoryPatterns int
	BothPatterns      int

	NegationPatterns int
	AbsolutePatterns int
	WildcardPatterns int
	GlobstarPatterns int

	CaseSensitivePatterns   int
	CaseInsensitivePatterns int

	Conflicts []Conflict
	Analyses  []Analysis
}

// Add folds one pattern analysis into the summary.
func (s *Summary) Add(a Analysis) {
	s.TotalPatterns++

	switch a.Type {
	case TypeFile:
		s.FilePatterns++
	case TypeDirectory:
		s.DirectoryPatterns++
	case TypeBoth:
		s.BothPatterns++
	}

	if a.Negated {
		s.NegationPatterns++
	}
	if a.Anchored {
		s.AbsolutePatterns++
	}
	if a.Wildcard {
		s.WildcardPatterns++
	}
	if a.Globstar {
		s.GlobstarPatterns++
	}
	if a.CaseSense {
		s.CaseSensitivePatterns++
	} else {
		s.CaseInsensitivePatterns++
	}

	s.Analyses = append(s.Analyses, a)
}

// HasConflicts reports whether any conflicting pair was recorded.
func (s *Summary) HasConflicts() bool { return len(s.Conflicts) > 0 }

// ConflictCount returns the number of conflicting pairs.
func (s *Summary) ConflictCount() int { return len(s.Conflicts) }

// Summarize analyzes every pattern and folds the results, including the
// pairwise conflict scan.
func (az *Analyzer) Summarize(patterns []string) Summary {
	var summary Summary
	for _, p := range patterns {
		summary.Add(az.Analyze(p))
	}
	summary.Conflicts = az.FindConflicts(patterns)
	return summary
}
