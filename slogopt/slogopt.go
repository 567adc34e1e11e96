// Package slogopt provides a ready-made "Logging options" group and a
// helper to configure the default log/slog logger from parsed values.
package slogopt

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/optext/optext"
)

// GroupTitle is the title of the group returned by NewGroup.
const GroupTitle = "Logging options"

// NewGroup returns a detached group with --log-level and --log-json
// options. Attach it with Parser.AddGroup.
func NewGroup() *optext.Group {
	g := optext.NewGroup(GroupTitle)
	g.MustAddOption(optext.NewOption("--log-level").
		SetDefault("info").
		SetEnv("LOG_LEVEL").
		SetMetavar("LEVEL").
		SetHelp("log level (debug, info, warn, error)"))
	g.MustAddOption(optext.NewOption("--log-json").Bool().
		SetEnv("LOG_JSON").
		SetHelp("write logs as JSON"))
	return g
}

// Configure sets the default slog logger according to the parsed values,
// writing to stderr.
func Configure(vals optext.Values) error {
	return ConfigureWriter(vals, os.Stderr)
}

// ConfigureWriter is like Configure but writes log output to w.
func ConfigureWriter(vals optext.Values, w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(vals.String("log_level"))); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if vals.Bool("log_json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
