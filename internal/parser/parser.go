// Package parser splits raw gitignore text into typed line entries.
//
// Parsing is total: any well-formed UTF-8 input produces a File, and the
// original text of every line is preserved byte for byte. The only
// transformation applied is stripping an unescaped inline "#..." comment
// from the stored pattern text; the Original field keeps the full line.
package parser

import (
	"strings"

	"github.com/standardbeagle/gix/internal/types"
)

// Parse converts gitignore file content into a structured File. Line
// numbers are 1-based and match the input exactly; a trailing line with
// no final newline is still a line. A final newline terminates the last
// line rather than starting an empty one, so "*.log\n" is one pattern
// line, not a pattern plus a blank.
func Parse(content string) *types.File {
	file := types.NewFile()
	if content == "" {
		return file
	}

	lines := strings.Split(content, "\n")
	if strings.HasSuffix(content, "\n") {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		file.Append(parseLine(line, i+1))
	}
	return file
}

// parseLine classifies a single line. Priority order: blank, comment,
// pattern.
func parseLine(line string, lineNumber int) types.Entry {
	if strings.TrimSpace(line) == "" {
		return types.NewBlankEntry(line, lineNumber)
	}

	// A leading '#' starts a comment unless escaped as "\#".
	if strings.HasPrefix(line, "#") {
		return types.NewCommentEntry(line, lineNumber)
	}

	return types.NewPatternEntry(line, stripInlineComment(line), lineNumber)
}

// stripInlineComment truncates the line at the first unescaped '#'.
// Escaped characters keep their backslash: "\#" and "\!" stay exactly as
// written.
func stripInlineComment(line string) string {
	var b strings.Builder
	escaped := false
	for _, ch := range line {
		switch {
		case escaped:
			b.WriteRune(ch)
			escaped = false
		case ch == '\\':
			escaped = true
			b.WriteRune(ch)
		case ch == '#':
			return b.String()
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
