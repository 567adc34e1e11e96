package optext

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerArgv(t *testing.T) {
	t.Setenv("PAGER", "less -R")
	assert.Equal(t, []string{"less", "-R"}, pagerArgv())

	t.Setenv("PAGER", "")
	assert.Nil(t, pagerArgv())

	t.Setenv("PAGER", "'unterminated")
	assert.Equal(t, []string{"less"}, pagerArgv())

	t.Setenv("PAGER", "ignored")
	os.Unsetenv("PAGER")
	assert.Equal(t, []string{"less"}, pagerArgv())
}

func TestPrintHelpWithoutTerminal(t *testing.T) {
	oldOutWriter := outWriter
	defer func() { outWriter = oldOutWriter }()
	b := &strings.Builder{}
	outWriter = b

	New("test").PrintHelp()
	assert.Contains(t, b.String(), "Usage: test [options]")
}
