// Package category assigns gitignore patterns to their likely origin
// (operating system, language, tool, framework, or project-specific)
// using a curated knowledge base of well-known ecosystem patterns.
//
// Matching is heuristic by design: besides exact, character-class, and
// single-wildcard matches, substring containment in either direction
// counts as a hit. That rule produces known false positives (any pattern
// containing "test" lands in the custom bucket before reaching
// Uncategorized) and is kept as-is deliberately; tightening it changes
// user-visible grouping.
package category

// Kind discriminates the closed set of category variants.
type Kind int

const (
	KindUncategorized Kind = iota
	KindLanguage
	KindFramework
	KindTool
	KindOperatingSystem
	KindCustom
)

// Category is a tagged classification of a pattern's origin. Name is
// empty only for Uncategorized. Category values are comparable and can
// serve as map keys.
type Category struct {
	Kind Kind
	Name string
}

// Language returns a language category (e.g. "Python").
func Language(name string) Category { return Category{Kind: KindLanguage, Name: name} }

// Framework returns a framework category (e.g. "Django").
func Framework(name string) Category { return Category{Kind: KindFramework, Name: name} }

// Tool returns a tool category (e.g. "VSCode").
func Tool(name string) Category { return Category{Kind: KindTool, Name: name} }

// OperatingSystem returns an OS category (e.g. "macOS").
func OperatingSystem(name string) Category { return Category{Kind: KindOperatingSystem, Name: name} }

// Custom returns a project-specific category.
func Custom(name string) Category { return Category{Kind: KindCustom, Name: name} }

// Uncategorized is the fallback for patterns nothing matched.
func Uncategorized() Category { return Category{Kind: KindUncategorized} }

// DisplayName returns the long label used in reports.
func (c Category) DisplayName() string {
	switch c.Kind {
	case KindLanguage:
		return "Language: " + c.Name
	case KindFramework:
		return "Framework: " + c.Name
	case KindTool:
		return "Tool: " + c.Name
	case KindOperatingSystem:
		return "OS: " + c.Name
	case KindCustom:
		return "Custom: " + c.Name
	default:
		return "Uncategorized"
	}
}

// ShortName returns just the category name, or "Uncategorized".
func (c Category) ShortName() string {
	if c.Kind == KindUncategorized {
		return "Uncategorized"
	}
	return c.Name
}

// SectionHeader returns the category as a gitignore comment line, used
// when emitting grouped output.
func (c Category) SectionHeader() string {
	if c.Kind == KindUncategorized {
		return "# Other"
	}
	return "# " + c.Name
}
