package optext

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
	osExit              = os.Exit
)

// generalGroupTitle names the group that holds the help and version options.
const generalGroupTitle = "General options"

// Parser is the top-level coordinator: it owns a container of ungrouped
// options plus any number of titled groups, and drives the parse and help
// lifecycle. Create one with New, configure it with chained setters, then
// call ParseArgs (or ParseOrExit) once.
//
// A Parser is not safe for concurrent mutation; configure and parse from a
// single goroutine.
type Parser struct {
	Container

	// LookupEnv resolves environment fallbacks for options with an EnvVar.
	// It defaults to os.LookupEnv and can be replaced in tests.
	LookupEnv func(string) (string, bool)

	// Formatter renders descriptions and option entries for help output.
	Formatter Formatter

	name        string
	description string
	epilog      string
	version     string
	groups      []*Group

	helpOpt    *Option
	versionOpt *Option
	general    *Group
}

// New returns a parser for the named program. The help option is registered
// as "-?", "--help" inside an automatically created "General options" group;
// the version option joins it when SetVersion is called.
func New(name string) *Parser {
	p := &Parser{
		name:      name,
		LookupEnv: os.LookupEnv,
		Formatter: NewIndentedFormatter(),
	}
	p.general = p.NewGroup(generalGroupTitle)
	p.helpOpt = NewOption("-?", "--help").Bool().
		SetHelp("show this help message and exit")
	p.general.MustAddOption(p.helpOpt)
	return p
}

func (p *Parser) SetDescription(description string) *Parser {
	p.description = description
	return p
}

func (p *Parser) SetEpilog(epilog string) *Parser {
	p.epilog = epilog
	return p
}

// SetVersion sets the version string and, on first call, registers a
// "--version" option in the general options group.
func (p *Parser) SetVersion(version string) *Parser {
	p.version = version
	if p.versionOpt == nil {
		p.versionOpt = NewOption("--version").Bool().
			SetHelp("show program's version number and exit")
		p.general.MustAddOption(p.versionOpt)
	}
	return p
}

func (p *Parser) SetFormatter(f Formatter) *Parser {
	p.Formatter = f
	return p
}

// ProgName returns the program name given to New.
func (p *Parser) ProgName() string {
	return p.name
}

// Version returns the version string set with SetVersion.
func (p *Parser) Version() string {
	return p.version
}

// NewGroup creates a group with the given title and attaches it to the
// parser.
func (p *Parser) NewGroup(title string) *Group {
	g := NewGroup(title)
	p.groups = append(p.groups, g)
	return g
}

// AddGroup attaches a detached group to the parser.
func (p *Parser) AddGroup(g *Group) *Parser {
	p.groups = append(p.groups, g)
	return p
}

// Groups returns the attached groups in registration order.
func (p *Parser) Groups() []*Group {
	out := make([]*Group, len(p.groups))
	copy(out, p.groups)
	return out
}

// GetOptionGroupByTitle returns the first group whose title starts with the
// given string, compared case-insensitively. The error wraps ErrNotFound
// when no group matches.
func (p *Parser) GetOptionGroupByTitle(title string) (*Group, error) {
	for _, g := range p.groups {
		if strings.HasPrefix(strings.ToLower(g.Title), strings.ToLower(title)) {
			return g, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "option group %q", title)
}

// MoveOption relocates the named option between containers, preserving its
// identity and default. A nil from means the parser's own top-level
// container. On a destination conflict the option stays where it was.
func (p *Parser) MoveOption(name string, from, to *Container) error {
	if from == nil {
		from = &p.Container
	}
	opt, err := from.GetOptionByName(name)
	if err != nil {
		return err
	}
	from.remove(opt)
	if err := to.AddOption(opt); err != nil {
		// put it back; the source had room for it a moment ago
		_ = from.AddOption(opt)
		return err
	}
	Debug.Printf("moved option %q\n", opt.Name())
	return nil
}

// Walk calls visit for every option of the parser and its groups, in
// registration order (top-level options first, then each group in the order
// it was attached), until visit returns false. Each option is visited
// exactly once per call; Walk may be called any number of times.
func (p *Parser) Walk(visit func(*Option) bool) {
	for _, opt := range p.Container.options {
		if !visit(opt) {
			return
		}
	}
	for _, g := range p.groups {
		for _, opt := range g.options {
			if !visit(opt) {
				return
			}
		}
	}
}

// SearchOption searches the parser and all its groups for an option whose
// destination or any alias matches name (given without dashes). It returns
// the first match in walk order, or an error wrapping ErrNotFound.
func (p *Parser) SearchOption(name string) (*Option, error) {
	var found *Option
	p.Walk(func(opt *Option) bool {
		if opt.destination() == name {
			found = opt
			return false
		}
		for _, a := range opt.aliases() {
			if a == name {
				found = opt
				return false
			}
		}
		return true
	})
	if found == nil {
		return nil, errors.Wrapf(ErrNotFound, "option %q", name)
	}
	return found, nil
}

// AddAllDefaultValues appends "Default: %default" to the help string of
// every argument-taking option that declares a default, across the parser
// and all groups. Help strings that already contain "%default" are left
// alone, so the pass is idempotent. The %default placeholder is expanded by
// the formatter at help time.
func (p *Parser) AddAllDefaultValues() {
	p.addDefaultValues(&p.Container)
	for _, g := range p.groups {
		p.addDefaultValues(&g.Container)
	}
}

func (p *Parser) addDefaultValues(c *Container) {
	for _, opt := range c.options {
		if opt.Help == "" || strings.Contains(opt.Help, "%default") {
			continue
		}
		if !opt.takesArg() || opt.DefaultString() == "" {
			continue
		}
		if last := opt.Help[len(opt.Help)-1]; last != '.' && last != '!' {
			opt.Help += "."
		}
		if opt.Help[len(opt.Help)-1] != ' ' {
			opt.Help += " "
		}
		opt.Help += "Default: %default"
	}
}

// SortOptions orders a list of options for display, in place: stable, keyed
// by the first short alias, falling back to the first long alias.
func SortOptions(list []*Option) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].sortKey() < list[j].sortKey()
	})
}

// sortedOptions returns a sorted copy, leaving registration order intact.
func sortedOptions(opts []*Option) []*Option {
	out := make([]*Option, len(opts))
	copy(out, opts)
	SortOptions(out)
	return out
}

// sortedGroups returns a copy of the parser's groups ordered by title.
func (p *Parser) sortedGroups() []*Group {
	out := p.Groups()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Title < out[j].Title
	})
	return out
}

// ParseArgs parses the given argument tokens (not including the program
// name) against all registered options. It returns an immutable values
// snapshot, the positional arguments, and an error which is a UsageError
// for malformed input, ErrHelp when the help option was given, or
// ErrVersion when the version option was given.
//
// Environment fallbacks apply to options not set on the command line, and
// declared defaults fill in everything still unset, so the snapshot has a
// defined value for every option with a default.
func (p *Parser) ParseArgs(args []string) (Values, []string, error) {
	p.AddAllDefaultValues()

	lookup := map[string]*Option{}
	p.Walk(func(opt *Option) bool {
		for _, a := range opt.aliases() {
			if prev, ok := lookup[a]; ok {
				Debug.Printf("alias %q of %q shadowed by %q\n", a, opt.Name(), prev.Name())
				continue
			}
			lookup[a] = opt
		}
		return true
	})

	st := &parseState{
		lookup:     lookup,
		helpOpt:    p.helpOpt,
		versionOpt: p.versionOpt,
		seen:       map[*Option]bool{},
		values:     map[string]interface{}{},
	}
	if err := st.parse(args); err != nil {
		return Values{}, nil, err
	}

	var envErr error
	p.Walk(func(opt *Option) bool {
		if st.seen[opt] || opt.EnvVar == "" {
			return true
		}
		if s, ok := p.LookupEnv(opt.EnvVar); ok {
			if err := st.setValue(opt, s); err != nil {
				envErr = errors.Wrapf(err, "parsing %s", opt.EnvVar)
				return false
			}
		}
		return true
	})
	if envErr != nil {
		return Values{}, nil, envErr
	}

	p.Walk(func(opt *Option) bool {
		dest := opt.destination()
		if _, ok := st.values[dest]; ok {
			return true
		}
		if opt.getter != nil {
			st.values[dest] = opt.getter()
		} else if opt.Default != nil {
			st.values[dest] = opt.Default
		}
		return true
	})

	var reqErr error
	p.Walk(func(opt *Option) bool {
		if opt.Required && !st.seen[opt] {
			reqErr = usageErrorf("required option --%s not set", opt.Name())
			return false
		}
		return true
	})
	if reqErr != nil {
		return Values{}, nil, reqErr
	}

	return newValues(st.values), st.positional, nil
}

// ParseOrExit is the end-of-main convenience around ParseArgs: it prints
// help and exits 0 when help was requested, prints the version and exits 0
// when the version was requested, and prints the usage line plus the error
// to stderr and exits 2 on any other parse error. The args slice should be
// os.Args[1:].
func (p *Parser) ParseOrExit(args []string) (Values, []string) {
	vals, rest, err := p.ParseArgs(args)
	switch {
	case err == nil:
		return vals, rest
	case errors.Is(err, ErrHelp):
		p.PrintHelp()
		osExit(0)
	case errors.Is(err, ErrVersion):
		fmt.Fprintln(outWriter, p.version)
		osExit(0)
	default:
		fmt.Fprintln(errWriter, p.Formatter.FormatUsage(p.name))
		fmt.Fprintf(errWriter, "%s: error: %s\n", p.name, err)
		osExit(2)
	}
	return Values{}, nil
}
