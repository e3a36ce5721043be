package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryConstructors(t *testing.T) {
	p := NewPatternEntry("*.log # note", "*.log ", 3)
	assert.True(t, p.IsPattern())
	assert.Equal(t, "*.log # note", p.Original)
	assert.Equal(t, "*.log ", p.Pattern)
	assert.Equal(t, 3, p.Line)

	c := NewCommentEntry("# header", 1)
	assert.True(t, c.IsComment())
	assert.Equal(t, "# header", c.Comment)

	b := NewBlankEntry("  ", 2)
	assert.True(t, b.IsBlank())
	assert.Empty(t, b.Pattern)
}

func TestFile_AppendUpdatesStats(t *testing.T) {
	f := NewFile()
	f.Append(NewPatternEntry("*.log", "*.log", 1))
	f.Append(NewCommentEntry("# c", 2))
	f.Append(NewBlankEntry("", 3))
	f.Append(NewPatternEntry("build/", "build/", 4))

	assert.Equal(t, 4, f.Stats.TotalLines)
	assert.Equal(t, 2, f.Stats.PatternLines)
	assert.Equal(t, 1, f.Stats.CommentLines)
	assert.Equal(t, 1, f.Stats.BlankLines)
}

func TestFile_Accessors(t *testing.T) {
	f := NewFile()
	f.Append(NewCommentEntry("# c", 1))
	f.Append(NewPatternEntry("*.log", "*.log", 2))
	f.Append(NewPatternEntry("build/", "build/", 3))

	assert.Equal(t, []string{"*.log", "build/"}, f.PatternStrings())
	require.Len(t, f.Patterns(), 2)
	require.Len(t, f.Comments(), 1)
}

func TestFile_Render(t *testing.T) {
	tests := []struct {
		name     string
		lines    []Entry
		expected string
	}{
		{"empty", nil, ""},
		{"single", []Entry{NewPatternEntry("*.log", "*.log", 1)}, "*.log"},
		{
			"mixed",
			[]Entry{
				NewCommentEntry("# c", 1),
				NewPatternEntry("*.log", "*.log", 2),
				NewBlankEntry("", 3),
			},
			"# c\n*.log\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFile()
			for _, e := range tc.lines {
				f.Append(e)
			}
			assert.Equal(t, tc.expected, f.Render())
		})
	}
}

func TestFile_FindDuplicates(t *testing.T) {
	f := NewFile()
	f.Append(NewPatternEntry("*.log", "*.log", 1))
	f.Append(NewPatternEntry("build/", "build/", 2))
	f.Append(NewPatternEntry("*.log", "*.log", 3))
	f.Append(NewCommentEntry("# *.log", 4))
	f.Append(NewPatternEntry("*.log", "*.log", 5))

	dups := f.FindDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, []int{1, 3, 5}, dups["*.log"])
}

func TestFile_FindDuplicates_CaseAndWhitespaceSensitive(t *testing.T) {
	f := NewFile()
	f.Append(NewPatternEntry("build/", "build/", 1))
	f.Append(NewPatternEntry("BUILD/", "BUILD/", 2))
	f.Append(NewPatternEntry("build/ ", "build/ ", 3))

	assert.Empty(t, f.FindDuplicates())
}
