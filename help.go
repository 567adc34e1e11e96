package optext

import (
	"io"
	"strings"
	"text/template"
)

var helpTemplateString = `{{.Usage}}

{{if .Description}}{{.Description}}
{{end}}{{range .Sections}}{{.Heading}}{{.Body}}
{{end}}{{if .Epilog}}{{.Epilog}}{{end}}`

var helpTemplate = template.Must(template.New("help").Parse(helpTemplateString))

type helpSection struct {
	Heading string
	Body    string
}

// HelpString renders the full help page as a string.
func (p *Parser) HelpString() string {
	sb := strings.Builder{}
	p.WriteHelp(&sb)
	return sb.String()
}

// WriteHelp renders the full help page to w: usage line, description,
// ungrouped options, then every group sorted by title with its options
// sorted by primary alias. Hidden options and empty sections are omitted.
func (p *Parser) WriteHelp(w io.Writer) {
	f := p.Formatter

	sections := []helpSection{}
	if body := p.optionSection(p.Container.Options()); body != "" {
		sections = append(sections, helpSection{
			Heading: f.FormatHeading("Options"),
			Body:    body,
		})
	}
	for _, g := range p.sortedGroups() {
		body := p.optionSection(g.Options())
		if body == "" {
			continue
		}
		sections = append(sections, helpSection{
			Heading: f.FormatHeading(g.Title),
			Body:    body,
		})
	}

	data := struct {
		Usage       string
		Description string
		Epilog      string
		Sections    []helpSection
	}{
		Usage:       f.FormatUsage(p.name),
		Description: f.FormatDescription(p.description),
		Epilog:      f.FormatDescription(p.epilog),
		Sections:    sections,
	}
	if err := helpTemplate.Execute(w, data); err != nil {
		panic(err)
	}
}

func (p *Parser) optionSection(opts []*Option) string {
	sb := strings.Builder{}
	for _, opt := range sortedOptions(opts) {
		if opt.Hidden {
			continue
		}
		sb.WriteString(p.Formatter.FormatOption(opt))
	}
	return sb.String()
}
