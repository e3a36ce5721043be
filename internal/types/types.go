// Package types defines the shared data model for gitignore files:
// parsed entries, the ordered file representation, and line statistics.
//
// Entries are created once by the parser and never mutated afterwards.
// Every transformation (optimization, filtering) builds a new File rather
// than editing an existing one in place.
package types

// EntryKind tags the three possible line variants of a gitignore file.
// Every switch over an Entry must handle all three kinds.
type EntryKind int

const (
	// EntryPattern is an ignore rule line (e.g. "*.log", "!debug.log").
	EntryPattern EntryKind = iota
	// EntryComment is a full-line comment starting with an unescaped '#'.
	EntryComment
	// EntryBlank is an empty or whitespace-only line.
	EntryBlank
)

// String returns a human-readable name for the entry kind.
func (k EntryKind) String() string {
	switch k {
	case EntryPattern:
		return "pattern"
	case EntryComment:
		return "comment"
	case EntryBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Entry is a single parsed line of a gitignore file.
//
// Original always holds the exact source text of the line, including
// trailing whitespace and any inline comment. Pattern holds the rule text
// with an unescaped inline "#..." suffix removed; it is set only for
// EntryPattern entries. Comment holds the full comment text for
// EntryComment entries. Line is 1-based and matches the input position.
type Entry struct {
	Original string
	Kind     EntryKind
	Pattern  string
	Comment  string
	Line     int
}

// NewPatternEntry creates a pattern entry.
func NewPatternEntry(original, pattern string, line int) Entry {
	return Entry{Original: original, Kind: EntryPattern, Pattern: pattern, Line: line}
}

// NewCommentEntry creates a comment entry.
func NewCommentEntry(original string, line int) Entry {
	return Entry{Original: original, Kind: EntryComment, Comment: original, Line: line}
}

// NewBlankEntry creates a blank entry.
func NewBlankEntry(original string, line int) Entry {
	return Entry{Original: original, Kind: EntryBlank, Line: line}
}

// IsPattern reports whether the entry is an ignore rule.
func (e Entry) IsPattern() bool { return e.Kind == EntryPattern }

// IsComment reports whether the entry is a comment line.
func (e Entry) IsComment() bool { return e.Kind == EntryComment }

// IsBlank reports whether the entry is a blank line.
func (e Entry) IsBlank() bool { return e.Kind == EntryBlank }

// FileStats tracks per-kind line counts for a File. Counts are maintained
// incrementally on append and are never set independently.
type FileStats struct {
	TotalLines   int
	PatternLines int
	CommentLines int
	BlankLines   int
}

func (s *FileStats) update(e Entry) {
	s.TotalLines++
	switch e.Kind {
	case EntryPattern:
		s.PatternLines++
	case EntryComment:
		s.CommentLines++
	case EntryBlank:
		s.BlankLines++
	}
}

// File is an ordered sequence of entries plus aggregate counts. Entries
// are always in ascending source order. Build a File by repeated Append;
// treat it as immutable once handed to a caller.
type File struct {
	Entries []Entry
	Stats   FileStats
}

// NewFile creates an empty file.
func NewFile() *File {
	return &File{}
}

// Append adds an entry and keeps the stats consistent.
func (f *File) Append(e Entry) {
	f.Stats.update(e)
	f.Entries = append(f.Entries, e)
}

// Patterns returns the pattern entries in source order.
func (f *File) Patterns() []Entry {
	out := make([]Entry, 0, f.Stats.PatternLines)
	for _, e := range f.Entries {
		if e.IsPattern() {
			out = append(out, e)
		}
	}
	return out
}

// PatternStrings returns the pattern text of every pattern entry in
// source order.
func (f *File) PatternStrings() []string {
	out := make([]string, 0, f.Stats.PatternLines)
	for _, e := range f.Entries {
		if e.IsPattern() {
			out = append(out, e.Pattern)
		}
	}
	return out
}

// Comments returns the comment entries in source order.
func (f *File) Comments() []Entry {
	out := make([]Entry, 0, f.Stats.CommentLines)
	for _, e := range f.Entries {
		if e.IsComment() {
			out = append(out, e)
		}
	}
	return out
}

// Render reconstructs the file text: the original line strings joined by
// "\n" with no trailing newline. Rendering an unmodified parse reproduces
// the input exactly, modulo a stripped final newline.
func (f *File) Render() string {
	switch len(f.Entries) {
	case 0:
		return ""
	case 1:
		return f.Entries[0].Original
	}
	n := len(f.Entries) - 1
	for _, e := range f.Entries {
		n += len(e.Original)
	}
	buf := make([]byte, 0, n)
	for i, e := range f.Entries {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, e.Original...)
	}
	return string(buf)
}

// FindDuplicates maps each pattern text that appears more than once to
// the 1-based line numbers of all its occurrences. Patterns are compared
// by their stored text; whitespace and case differences keep them apart.
func (f *File) FindDuplicates() map[string][]int {
	lines := make(map[string][]int)
	for _, e := range f.Entries {
		if e.IsPattern() {
			lines[e.Pattern] = append(lines[e.Pattern], e.Line)
		}
	}
	for pattern, nums := range lines {
		if len(nums) < 2 {
			delete(lines, pattern)
		}
	}
	return lines
}
