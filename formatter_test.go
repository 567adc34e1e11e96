package optext

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDescriptionPreservesNewlines(t *testing.T) {
	f := NewIndentedFormatter()
	assert.Equal(t, "line1\nline2\n", f.FormatDescription("line1\nline2"))
}

func TestFormatDescriptionWrapsParagraphs(t *testing.T) {
	f := NewIndentedFormatter()
	f.Width = 20
	out := f.FormatDescription("one two three four five six\n\nseven")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "one two three four", lines[0])
	assert.Equal(t, "five six", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "seven", lines[3])
}

func TestFormatDescriptionEmpty(t *testing.T) {
	f := NewIndentedFormatter()
	assert.Equal(t, "", f.FormatDescription(""))
}

func TestFormatOptionColumns(t *testing.T) {
	f := NewIndentedFormatter()
	opt := NewOption("-o", "--output").SetMetavar("FILE").SetHelp("output file")
	out := f.FormatOption(opt)
	assert.True(t, strings.HasPrefix(out, "  -o, --output <FILE>"))
	assert.Equal(t, f.HelpPosition, strings.Index(out, "output file"))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFormatOptionLongAliasesSpillToNextLine(t *testing.T) {
	f := NewIndentedFormatter()
	opt := NewOption("--a-rather-long-option-name").SetHelp("help text")
	out := f.FormatOption(opt)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  --a-rather-long-option-name <VALUE>", lines[0])
	assert.Equal(t, strings.Repeat(" ", f.HelpPosition)+"help text", lines[1])
}

func TestFormatOptionPreservesHelpNewlines(t *testing.T) {
	f := NewIndentedFormatter()
	opt := NewOption("-v", "--verbose").Bool().SetHelp("first line\nsecond line")
	out := f.FormatOption(opt)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first line")
	assert.Equal(t, strings.Repeat(" ", f.HelpPosition)+"second line", lines[1])
}

func TestFormatOptionExpandsDefault(t *testing.T) {
	f := NewIndentedFormatter()

	opt := NewOption("--output").SetDefault("-").SetHelp("output. Default: %default")
	assert.Contains(t, f.FormatOption(opt), "Default: -")

	noDefault := NewOption("--output").SetHelp("output. Default: %default")
	assert.Contains(t, f.FormatOption(noDefault), "Default: None")
}

func TestFormatHeading(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	f := NewIndentedFormatter()
	assert.Equal(t, "Options:\n", f.FormatHeading("Options"))
}

func TestWrap(t *testing.T) {
	cases := []struct {
		in    string
		width int
		out   []string
	}{
		{"", 10, []string{""}},
		{"one", 10, []string{"one"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"toolongword", 4, []string{"toolongword"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, wrap(c.in, c.width), "wrap(%q, %d)", c.in, c.width)
	}
}
