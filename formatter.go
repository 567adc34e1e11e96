package optext

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders the pieces of a help page. The parser assembles usage
// line, description, option sections and epilog from these.
type Formatter interface {
	FormatUsage(progName string) string
	FormatDescription(description string) string
	FormatHeading(title string) string
	FormatOption(opt *Option) string
}

// IndentedFormatter is the default help formatter. Unlike a plain
// whitespace-collapsing formatter it preserves explicit newlines in
// descriptions and option help texts, wrapping each line separately.
type IndentedFormatter struct {
	// Width is the total output width.
	Width int
	// Indent is the left margin of option entries.
	Indent int
	// HelpPosition is the column where option help text starts.
	HelpPosition int
	// NoDefaultText replaces %default for options without a default value.
	NoDefaultText string
}

func NewIndentedFormatter() *IndentedFormatter {
	return &IndentedFormatter{
		Width:         78,
		Indent:        2,
		HelpPosition:  26,
		NoDefaultText: "None",
	}
}

func (f *IndentedFormatter) FormatUsage(progName string) string {
	return fmt.Sprintf("Usage: %s [options]", progName)
}

// FormatDescription wraps a description block at the configured width.
// Embedded newlines split the text into paragraphs which are wrapped
// independently, so deliberate line breaks survive.
func (f *IndentedFormatter) FormatDescription(description string) string {
	if description == "" {
		return ""
	}
	var out []string
	for _, para := range strings.Split(description, "\n") {
		out = append(out, wrap(para, f.Width)...)
	}
	return strings.Join(out, "\n") + "\n"
}

var headingColor = color.New(color.Bold)

// FormatHeading renders a section title. Bold when the output supports it;
// the color package disables styling off-TTY and under NO_COLOR.
func (f *IndentedFormatter) FormatHeading(title string) string {
	return headingColor.Sprintf("%s:", title) + "\n"
}

// FormatOption renders one option entry: the alias column, then the help
// text starting at HelpPosition. When the alias column is too long the help
// moves to the following line. Newlines embedded in the help text are
// preserved, each resulting line wrapped at the remaining width.
func (f *IndentedFormatter) FormatOption(opt *Option) string {
	var b strings.Builder

	aliasCol := f.optionAliases(opt)
	colWidth := f.HelpPosition - f.Indent - 2
	indentFirst := 0
	if len(aliasCol) > colWidth {
		fmt.Fprintf(&b, "%*s%s\n", f.Indent, "", aliasCol)
		indentFirst = f.HelpPosition
	} else {
		fmt.Fprintf(&b, "%*s%-*s  ", f.Indent, "", colWidth, aliasCol)
	}

	if opt.Help == "" {
		if indentFirst == 0 {
			b.WriteString("\n")
		}
		return b.String()
	}

	var lines []string
	for _, para := range strings.Split(f.expandDefault(opt), "\n") {
		lines = append(lines, wrap(para, f.Width-f.HelpPosition)...)
	}
	fmt.Fprintf(&b, "%*s%s\n", indentFirst, "", lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(&b, "%*s%s\n", f.HelpPosition, "", line)
	}
	return b.String()
}

// optionAliases builds the alias column, short aliases first:
// "-o, --output <FILE>".
func (f *IndentedFormatter) optionAliases(opt *Option) string {
	aliases := make([]string, 0, len(opt.Short)+len(opt.Long))
	for _, a := range opt.Short {
		aliases = append(aliases, "-"+a)
	}
	for _, a := range opt.Long {
		aliases = append(aliases, "--"+a)
	}
	s := strings.Join(aliases, ", ")
	if opt.takesArg() {
		metavar := opt.Metavar
		if metavar == "" {
			metavar = "VALUE"
		}
		s += " <" + metavar + ">"
	}
	return s
}

// expandDefault substitutes %default in the help text with the option's
// default value, or NoDefaultText when there is none.
func (f *IndentedFormatter) expandDefault(opt *Option) string {
	def := opt.DefaultString()
	if def == "" {
		def = f.NoDefaultText
	}
	return strings.ReplaceAll(opt.Help, "%default", def)
}

// wrap greedily word-wraps a single line to the given width. An empty input
// yields one empty line so blank lines survive paragraph splitting.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	if width < 1 {
		width = 1
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
