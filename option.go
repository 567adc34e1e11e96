package optext

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/huandu/xstrings"
)

// Debug logger, set to io.Discard by default. Enable parse tracing with
// Debug.SetOutput(os.Stderr).
var Debug = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind indicates how an option's argument is converted into a value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat64
	KindDuration
	KindStrings
)

// Option is a single command line flag definition: its aliases, the
// destination key it parses into, a default, and help metadata. Options are
// plain values shared between containers; moving an option between groups
// preserves its identity.
type Option struct {
	Long     []string // long aliases, without the leading "--"
	Short    []string // single-rune aliases, without the leading "-"
	Dest     string   // destination key; derived from the primary alias if empty
	Kind     Kind
	Default  interface{}
	Help     string
	Metavar  string // placeholder shown in help for the argument, e.g. FILE
	Required bool
	EnvVar   string // environment variable used as a fallback value
	Hidden   bool   // exclude from help output

	// write-through binding for options built from struct fields
	setter Setter
	getter func() interface{}
}

// NewOption returns an option with the given aliases. Aliases are given in
// command line form: "--verbose" registers a long alias, "-v" a short one.
// NewOption panics on malformed aliases since those are programmer errors
// caught at setup time.
func NewOption(aliases ...string) *Option {
	if len(aliases) == 0 {
		panic("optext: option needs at least one alias")
	}
	opt := &Option{Kind: KindString}
	for _, a := range aliases {
		switch {
		case strings.HasPrefix(a, "--") && len(a) > 2:
			opt.Long = append(opt.Long, a[2:])
		case strings.HasPrefix(a, "-") && len(a) == 2 && a != "--":
			opt.Short = append(opt.Short, a[1:])
		default:
			panic(fmt.Sprintf("optext: malformed option alias %q", a))
		}
	}
	return opt
}

// Bool marks the option as a flag that takes no argument.
func (opt *Option) Bool() *Option {
	opt.Kind = KindBool
	return opt
}

// Int marks the option argument as an integer.
func (opt *Option) Int() *Option {
	opt.Kind = KindInt
	return opt
}

// Float64 marks the option argument as a float.
func (opt *Option) Float64() *Option {
	opt.Kind = KindFloat64
	return opt
}

// Duration marks the option argument as a time.Duration.
func (opt *Option) Duration() *Option {
	opt.Kind = KindDuration
	return opt
}

// Strings marks the option as repeatable; each occurrence appends to a
// string slice.
func (opt *Option) Strings() *Option {
	opt.Kind = KindStrings
	return opt
}

// SetDefault sets the default value. When the option still has the zero
// kind (string), the kind is inferred from the value's type.
func (opt *Option) SetDefault(v interface{}) *Option {
	opt.Default = v
	if opt.Kind == KindString {
		switch v.(type) {
		case bool:
			opt.Kind = KindBool
		case int:
			opt.Kind = KindInt
		case float64:
			opt.Kind = KindFloat64
		case time.Duration:
			opt.Kind = KindDuration
		case []string:
			opt.Kind = KindStrings
		}
	}
	return opt
}

func (opt *Option) SetHelp(help string) *Option {
	opt.Help = help
	return opt
}

func (opt *Option) SetDest(dest string) *Option {
	opt.Dest = dest
	return opt
}

func (opt *Option) SetMetavar(metavar string) *Option {
	opt.Metavar = metavar
	return opt
}

func (opt *Option) SetRequired() *Option {
	opt.Required = true
	return opt
}

func (opt *Option) SetEnv(name string) *Option {
	opt.EnvVar = name
	return opt
}

func (opt *Option) SetHidden() *Option {
	opt.Hidden = true
	return opt
}

// Name returns the primary alias: the first long alias, or the first short
// one if no long alias exists.
func (opt *Option) Name() string {
	if len(opt.Long) > 0 {
		return opt.Long[0]
	}
	if len(opt.Short) > 0 {
		return opt.Short[0]
	}
	return ""
}

// sortKey orders options for display: by first short alias if one exists,
// otherwise by first long alias.
func (opt *Option) sortKey() string {
	if len(opt.Short) > 0 {
		return opt.Short[0]
	}
	if len(opt.Long) > 0 {
		return opt.Long[0]
	}
	return ""
}

// aliases returns all aliases without dashes, long first.
func (opt *Option) aliases() []string {
	out := make([]string, 0, len(opt.Long)+len(opt.Short))
	out = append(out, opt.Long...)
	out = append(out, opt.Short...)
	return out
}

func (opt *Option) removeAlias(alias string) {
	for i, a := range opt.Long {
		if a == alias {
			opt.Long = append(opt.Long[:i], opt.Long[i+1:]...)
			return
		}
	}
	for i, a := range opt.Short {
		if a == alias {
			opt.Short = append(opt.Short[:i], opt.Short[i+1:]...)
			return
		}
	}
}

func (opt *Option) addAlias(alias string) {
	if len(alias) == 1 {
		opt.Short = append(opt.Short, alias)
	} else {
		opt.Long = append(opt.Long, alias)
	}
}

// destination returns the key this option parses into: Dest if set,
// otherwise the snake_case form of the primary alias.
func (opt *Option) destination() string {
	if opt.Dest != "" {
		return opt.Dest
	}
	return xstrings.ToSnakeCase(opt.Name())
}

// takesArg reports whether the option consumes an argument value.
func (opt *Option) takesArg() bool {
	return opt.Kind != KindBool
}

// DefaultString returns the default value rendered for help output, or ""
// when there is no default.
func (opt *Option) DefaultString() string {
	if opt.Default == nil {
		return ""
	}
	return fmt.Sprintf("%v", opt.Default)
}

// convert parses a raw argument string into this option's value type.
func (opt *Option) convert(s string) (interface{}, error) {
	switch opt.Kind {
	case KindBool:
		return strconv.ParseBool(s)
	case KindInt:
		return strconv.Atoi(s)
	case KindFloat64:
		return strconv.ParseFloat(s, 64)
	case KindDuration:
		return time.ParseDuration(s)
	default: // KindString, KindStrings
		return s, nil
	}
}
