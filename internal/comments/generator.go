// Package comments derives human-readable annotations for gitignore
// patterns from a static comment table, falling back to a sentence
// synthesized from the pattern's analysis.
package comments

import (
	"strings"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/category"
)

// Generator produces pattern annotations. Its tables are built once at
// construction and read-only afterwards.
type Generator struct {
	patternComments  map[string]string
	categoryComments map[category.Category]string
}

// NewGenerator creates a generator with the built-in comment tables.
func NewGenerator() *Generator {
	return &Generator{
		patternComments:  defaultPatternComments(),
		categoryComments: defaultCategoryComments(),
	}
}

// ForPattern returns an annotation for the pattern. Lookup order: exact
// table match, then single-wildcard table match, then a sentence
// synthesized from the analysis flags. The boolean is false only when
// even synthesis produced nothing, which does not happen in practice.
func (g *Generator) ForPattern(pattern string, a analysis.Analysis) (string, bool) {
	if comment, ok := g.patternComments[pattern]; ok {
		return comment, true
	}

	for known, comment := range g.patternComments {
		if wildcardMatches(pattern, known) {
			return comment, true
		}
	}

	return g.fromAnalysis(a), true
}

// ForCategory returns the description of a category, if the table has
// one.
func (g *Generator) ForCategory(c category.Category) (string, bool) {
	comment, ok := g.categoryComments[c]
	return comment, ok
}

// Detailed builds a comprehensive annotation: the specific pattern
// comment, the category description, and flag-derived qualifiers,
// semicolon-joined. Falls back to the synthesized sentence when nothing
// else is available.
func (g *Generator) Detailed(pattern string, a analysis.Analysis, c category.Category) string {
	var parts []string

	if comment, ok := g.ForPattern(pattern, a); ok {
		parts = append(parts, comment)
	}
	if comment, ok := g.ForCategory(c); ok {
		parts = append(parts, comment)
	}
	if a.Wildcard {
		parts = append(parts, "Contains wildcards")
	}
	if a.Anchored {
		parts = append(parts, "Absolute path")
	}
	if a.Negated {
		parts = append(parts, "Negation pattern")
	}

	if len(parts) == 0 {
		return g.fromAnalysis(a)
	}
	return strings.Join(parts, "; ")
}

// fromAnalysis synthesizes "Ignore directory from root" style sentences
// from the analysis flags.
func (g *Generator) fromAnalysis(a analysis.Analysis) string {
	parts := []string{a.Type.String()}

	if a.Negated {
		parts = append([]string{"Don't ignore"}, parts...)
	} else {
		parts = append([]string{"Ignore"}, parts...)
	}

	if a.Wildcard {
		parts = append(parts, "with wildcards")
	}
	if a.Anchored {
		parts = append(parts, "from root")
	}

	return strings.Join(parts, " ")
}

// wildcardMatches handles single-'*' table keys like "npm-debug.log*".
func wildcardMatches(pattern, known string) bool {
	if !strings.Contains(known, "*") {
		return pattern == known
	}
	parts := strings.Split(known, "*")
	if len(parts) != 2 {
		return false
	}
	return strings.HasPrefix(pattern, parts[0]) && strings.HasSuffix(pattern, parts[1])
}

func defaultPatternComments() map[string]string {
	return map[string]string{
		// Python
		"*.pyc":          "Python bytecode files",
		"__pycache__/":   "Python cache directory",
		"*.pyo":          "Python optimized bytecode files",
		"*.pyd":          "Python dynamic modules",
		"*.so":           "Shared object files",
		"*.egg":          "Python egg packages",
		"*.egg-info/":    "Python egg metadata",
		"dist/":          "Distribution/packaging directory",
		"build/":         "Build output directory",
		"venv/":          "Python virtual environment",
		"env/":           "Python virtual environment",
		".env":           "Environment variables file",
		".coverage":      "Python coverage data",
		".pytest_cache/": "Pytest cache directory",

		// Node.js
		"node_modules/":    "Node.js dependencies",
		"npm-debug.log*":   "NPM debug logs",
		"yarn-debug.log*":  "Yarn debug logs",
		"yarn-error.log*":  "Yarn error logs",
		"coverage/":        "Test coverage reports",
		".nyc_output":      "NYC coverage output",
		".next/":           "Next.js build output",
		"out/":             "Build output directory",

		// Java
		"*.class":  "Java compiled classes",
		"*.jar":    "Java archive files",
		"*.war":    "Web application archive",
		"target/":  "Build output directory",
		".gradle/": "Gradle cache directory",

		// Rust / native
		"Cargo.lock": "Cargo lock file",
		"*.pdb":      "Program database files",
		"*.exe":      "Executable files",
		"*.dll":      "Dynamic link libraries",
		"*.dylib":    "Dynamic libraries (macOS)",

		// Editors
		".vscode/": "VSCode workspace settings",
		".idea/":   "IntelliJ IDEA settings",
		"*.swp":    "Vim swap files",
		"*.swo":    "Vim swap files",
		"*~":       "Backup files",

		// OS
		".DS_Store":   "macOS system files",
		"Thumbs.db":   "Windows thumbnail cache",
		"Desktop.ini": "Windows desktop configuration",

		// Common
		"*.log":   "Log files",
		"*.tmp":   "Temporary files",
		"*.temp":  "Temporary files",
		"*.bak":   "Backup files",
		"*.cache": "Cache files",
		"*.pid":   "Process ID files",
		"*.lock":  "Lock files",
	}
}

func defaultCategoryComments() map[category.Category]string {
	return map[category.Category]string{
		category.Language("Python"):           "Python language files",
		category.Language("Node.js"):          "Node.js language files",
		category.Language("Java"):             "Java language files",
		category.Language("Rust"):             "Rust language files",
		category.Language("Go"):               "Go language files",
		category.Tool("VSCode"):               "VSCode editor files",
		category.Tool("IntelliJ"):             "IntelliJ IDEA files",
		category.OperatingSystem("macOS"):     "macOS system files",
		category.OperatingSystem("Windows"):   "Windows system files",
		category.OperatingSystem("Linux"):     "Linux system files",
	}
}
