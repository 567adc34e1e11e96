package optext

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
)

// PrintHelp renders the full help page to standard output. When stdout is a
// terminal the page is fed through a pager (the PAGER environment variable,
// or "less") so long option lists behave like a man page; if no pager can be
// run the page is printed directly.
func (p *Parser) PrintHelp() {
	text := p.HelpString()
	if pageOutput(text) {
		return
	}
	fmt.Fprint(outWriter, text)
}

// pagerArgv resolves the pager command line from the environment. An unset
// or malformed PAGER falls back to "less"; an explicitly empty PAGER
// disables paging.
func pagerArgv() []string {
	pager, ok := os.LookupEnv("PAGER")
	if !ok {
		return []string{"less"}
	}
	if strings.TrimSpace(pager) == "" {
		return nil
	}
	argv, err := shellquote.Split(pager)
	if err != nil {
		Debug.Printf("cannot parse PAGER %q: %v\n", pager, err)
		return []string{"less"}
	}
	return argv
}

func pageOutput(text string) bool {
	stdout, ok := outWriter.(*os.File)
	if !ok || !isatty.IsTerminal(stdout.Fd()) {
		return false
	}
	argv := pagerArgv()
	if len(argv) == 0 {
		return false
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = stdout
	cmd.Stderr = errWriter
	if err := cmd.Run(); err != nil {
		Debug.Printf("pager %q failed: %v\n", argv[0], err)
		return false
	}
	return true
}
