/*
Package optext is a small command line option parsing library built around
explicit option containers, titled option groups and a help formatter that
preserves embedded newlines.

Example

Greet program:

		package main

		import (
			"fmt"
			"os"

			"github.com/optext/optext"
		)

		func main() {
			p := optext.New("greet").
				SetVersion("1.0.0").
				SetDescription("Print a greeting.\nOne line per name.")

			p.MustAddOption(optext.NewOption("-e", "--excited").Bool().
				SetHelp("use an exclamation point"))
			p.MustAddOption(optext.NewOption("-g", "--greeting").
				SetDefault("Hey").SetMetavar("WORD").
				SetHelp("the greeting to use"))

			vals, names := p.ParseOrExit(os.Args[1:])

			punctuation := "."
			if vals.Bool("excited") {
				punctuation = "!"
			}
			for _, name := range names {
				fmt.Printf("%s, %s%s\n", vals.String("greeting"), name, punctuation)
			}
		}

Usage:

		$ greet --help
		Usage: greet [options]

		Print a greeting.
		One line per name.

		Options:
		  -e, --excited           use an exclamation point
		  -g, --greeting <WORD>   the greeting to use. Default: Hey

		General options:
		  -?, --help              show this help message and exit
		  --version               show program's version number and exit

		$ greet -e world
		Hey, world!

Groups

Options can be organized under titled groups for help display. The help and
version options live in an automatically created "General options" group.
Options are looked up by name or alias across the parser and all groups with
SearchOption, iterated with Walk, and relocated with MoveOption. Within a
container every alias resolves to exactly one option; AddOption refuses
colliding aliases, and MoveAlias deliberately gives an existing alias a new
meaning as long as the old option keeps at least one alias.

Parsing

ParseArgs takes the raw argument tokens and returns an immutable Values
snapshot plus the positional arguments. Flags and positionals may be
interspersed; "--" ends flag parsing. Short options bundle ("-ab" is "-a
-b") and long options take values either as "--opt value" or "--opt=value".
Options with an EnvVar fall back to the environment when not given, and
declared defaults fill in everything still unset.

Help

Help strings of argument-taking options automatically gain a
"Default: %default" suffix, expanded at render time. Options and groups are
displayed in alphabetical order, and explicit newlines in descriptions and
help texts are preserved rather than collapsed. PrintHelp pages its output
through $PAGER when stdout is a terminal.

Struct ingestion

As an alternative to NewOption, AddStruct reflects a tagged struct into
bound options:

		type Config struct {
			Excited  bool   `opt:"short=e,help=use an exclamation point"`
			Greeting string `opt:"env=GREETING,help=the greeting to use"`
		}

		cfg := Config{Greeting: "Hey"}
		p := optext.New("greet")
		if err := p.AddStruct(&cfg); err != nil {
			// ...
		}

Parsed values are written through to the struct fields and also appear in
the Values snapshot under the snake_case destination keys.
*/
package optext
