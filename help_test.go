package optext

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHelp(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	p := New("test").
		SetVersion("1.0.0").
		SetDescription("line1\nline2")
	p.MustAddOption(NewOption("--output").SetDefault("-").SetHelp("output file"))
	g := p.NewGroup("Zeta options")
	g.MustAddOption(NewOption("-z", "--zap").Bool().SetHelp("zap it"))

	p.AddAllDefaultValues()
	out := p.HelpString()

	assert.True(t, strings.HasPrefix(out, "Usage: test [options]\n"))
	assert.Contains(t, out, "line1\nline2\n")
	assert.Contains(t, out, "Options:\n")
	assert.Contains(t, out, "General options:\n")
	assert.Contains(t, out, "Zeta options:\n")
	assert.Contains(t, out, "output file. Default: -")
	assert.Contains(t, out, "-?, --help")
	assert.Contains(t, out, "--version")

	// groups are ordered by title
	require.Less(t, strings.Index(out, "General options:"), strings.Index(out, "Zeta options:"))
}

func TestWriteHelpSortsOptions(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	p := New("test")
	p.MustAddOption(NewOption("--zebra"))
	p.MustAddOption(NewOption("--apple"))
	// short alias sorts before the long name
	p.MustAddOption(NewOption("-b", "--middle"))

	out := p.HelpString()
	require.Less(t, strings.Index(out, "--apple"), strings.Index(out, "--middle"))
	require.Less(t, strings.Index(out, "--middle"), strings.Index(out, "--zebra"))
}

func TestWriteHelpOmitsHidden(t *testing.T) {
	p := New("test")
	p.MustAddOption(NewOption("--visible"))
	p.MustAddOption(NewOption("--secret").SetHidden())

	out := p.HelpString()
	assert.Contains(t, out, "--visible")
	assert.NotContains(t, out, "--secret")
}

func TestWriteHelpOmitsEmptyGroups(t *testing.T) {
	p := New("test")
	p.NewGroup("Empty options")

	out := p.HelpString()
	assert.NotContains(t, out, "Empty options")
}
