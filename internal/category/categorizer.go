package category

import (
	"sort"
	"strings"
)

// Categorizer classifies patterns against a knowledge base. It carries
// no per-call state; one instance can serve every call and every
// goroutine.
type Categorizer struct {
	kb KnowledgeBase
}

// NewCategorizer creates a categorizer over the default knowledge base.
func NewCategorizer() *Categorizer {
	return NewCategorizerWithBase(DefaultKnowledgeBase())
}

// NewCategorizerWithBase creates a categorizer over an explicit
// knowledge base, typically the defaults merged with user additions.
func NewCategorizerWithBase(kb KnowledgeBase) *Categorizer {
	return &Categorizer{kb: kb}
}

// Categorize assigns exactly one category to the pattern. Groups are
// tested in fixed precedence order: user-configured custom tables,
// operating system, language, tool, framework, then the custom-pattern
// heuristic, with Uncategorized as the total-function fallback. Within a group, map iteration order is
// unspecified, but that never changes which group wins.
func (c *Categorizer) Categorize(pattern string) Category {
	trimmed := strings.TrimSpace(pattern)

	if name, ok := matchGroup(trimmed, c.kb.Custom); ok {
		return Custom(name)
	}
	if name, ok := matchGroup(trimmed, c.kb.OperatingSystems); ok {
		return OperatingSystem(name)
	}
	if name, ok := matchGroup(trimmed, c.kb.Languages); ok {
		return Language(name)
	}
	if name, ok := matchGroup(trimmed, c.kb.Tools); ok {
		return Tool(name)
	}
	if name, ok := matchGroup(trimmed, c.kb.Frameworks); ok {
		return Framework(name)
	}
	if isCustomPattern(trimmed) {
		return Custom("Project-specific")
	}
	return Uncategorized()
}

// CategorizeAll groups patterns by category, preserving first-seen input
// order within each group. Duplicate input strings stay together in
// their group with their multiplicity intact.
func (c *Categorizer) CategorizeAll(patterns []string) map[Category][]string {
	grouped := make(map[Category][]string)
	for _, p := range patterns {
		cat := c.Categorize(p)
		grouped[cat] = append(grouped[cat], p)
	}
	return grouped
}

// Summarize counts patterns per category.
func (c *Categorizer) Summarize(patterns []string) Summary {
	grouped := c.CategorizeAll(patterns)
	summary := Summary{Counts: make(map[Category]int, len(grouped))}
	for cat, list := range grouped {
		summary.Counts[cat] = len(list)
		summary.TotalPatterns += len(list)
	}
	return summary
}

func matchGroup(pattern string, group map[string][]string) (string, bool) {
	for name, known := range group {
		for _, k := range known {
			if patternMatches(pattern, k) {
				return name, true
			}
		}
	}
	return "", false
}

// patternMatches tests a pattern against one known ecosystem pattern.
// Beyond exact equality it accepts character-class expansions ("*.py[cod]"
// matches "*.pyc"), single-wildcard prefix/suffix splits, and substring
// containment in either direction. The containment rule is a deliberate
// approximation, not glob semantics.
func patternMatches(pattern, known string) bool {
	if pattern == known {
		return true
	}

	if strings.Contains(known, "[") && strings.Contains(known, "]") &&
		matchesCharacterClass(pattern, known) {
		return true
	}

	if parts := strings.Split(known, "*"); len(parts) == 2 {
		if strings.HasPrefix(pattern, parts[0]) && strings.HasSuffix(pattern, parts[1]) {
			return true
		}
	}

	if strings.Contains(pattern, known) || strings.Contains(known, pattern) {
		return true
	}

	return false
}

// matchesCharacterClass expands a single [abc] class into its literal
// alternatives and tests each for exact equality.
func matchesCharacterClass(pattern, known string) bool {
	start := strings.Index(known, "[")
	end := strings.Index(known, "]")
	if start < 0 || end < 0 || start >= end {
		return false
	}

	before := known[:start]
	after := known[end+1:]
	for _, ch := range known[start+1 : end] {
		if pattern == before+string(ch)+after {
			return true
		}
	}
	return false
}

// isCustomPattern is a small heuristic for project-specific entries.
// Substring checks like "test" fire before Uncategorized on purpose;
// this over-matching is accepted behavior.
func isCustomPattern(pattern string) bool {
	for _, prefix := range []string{"custom/", "project/", "local/", "temp/", "tmp/"} {
		if strings.HasPrefix(pattern, prefix) {
			return true
		}
	}
	for _, token := range []string{"config", "settings", "local", "dev", "prod", "test"} {
		if strings.Contains(pattern, token) {
			return true
		}
	}
	return false
}

// Summary counts patterns per category.
type Summary struct {
	Counts        map[Category]int
	TotalPatterns int
}

// Top returns the n most populous categories, largest first. Ties order
// by display name so the result is deterministic.
func (s Summary) Top(n int) []CategoryCount {
	counts := make([]CategoryCount, 0, len(s.Counts))
	for cat, count := range s.Counts {
		counts = append(counts, CategoryCount{Category: cat, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category.DisplayName() < counts[j].Category.DisplayName()
	})
	if n > 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// CategoryCount pairs a category with its pattern count.
type CategoryCount struct {
	Category Category
	Count    int
}
