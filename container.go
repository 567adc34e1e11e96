package optext

import (
	"github.com/pkg/errors"
)

// Container is an ordered registry of options. Registration order is
// preserved for help rendering; every alias resolves to exactly one option
// within a container.
type Container struct {
	options []*Option
	byAlias map[string]*Option
}

// AddOption registers an option. It returns a ConflictError and leaves the
// container unchanged if any alias is already taken. To deliberately give an
// existing alias a new meaning, use MoveAlias first.
func (c *Container) AddOption(opt *Option) error {
	aliases := opt.aliases()
	if len(aliases) == 0 {
		return errors.New("option has no aliases")
	}
	for _, a := range aliases {
		if _, ok := c.byAlias[a]; ok {
			return &ConflictError{Alias: a}
		}
	}
	if c.byAlias == nil {
		c.byAlias = map[string]*Option{}
	}
	for _, a := range aliases {
		c.byAlias[a] = opt
	}
	c.options = append(c.options, opt)
	return nil
}

// MustAddOption is like AddOption but panics on error, for setup-time
// chaining.
func (c *Container) MustAddOption(opt *Option) {
	if err := c.AddOption(opt); err != nil {
		panic("optext: " + err.Error())
	}
}

// GetOptionByName returns the option registered under name. Destination keys
// are checked before aliases, and name is given without dashes. The error
// wraps ErrNotFound when nothing matches.
func (c *Container) GetOptionByName(name string) (*Option, error) {
	for _, opt := range c.options {
		if opt.destination() == name {
			return opt, nil
		}
	}
	if opt, ok := c.byAlias[name]; ok {
		return opt, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "option %q", name)
}

// MoveAlias reassigns an already registered alias to another option, giving
// the alias a new meaning. The reassignment is refused with a ConflictError
// when the alias is the current owner's only one, so that every option keeps
// at least one alias.
func (c *Container) MoveAlias(alias string, to *Option) error {
	from, ok := c.byAlias[alias]
	if !ok {
		return errors.Wrapf(ErrNotFound, "alias %q", alias)
	}
	if from == to {
		return nil
	}
	if len(from.aliases()) <= 1 {
		return &ConflictError{Alias: alias}
	}
	Debug.Printf("moving alias %q from %q to %q\n", alias, from.Name(), to.Name())
	from.removeAlias(alias)
	to.addAlias(alias)
	c.byAlias[alias] = to
	return nil
}

// Options returns the registered options in registration order. The returned
// slice is a copy; mutating it does not affect the container.
func (c *Container) Options() []*Option {
	out := make([]*Option, len(c.options))
	copy(out, c.options)
	return out
}

// Len returns the number of registered options.
func (c *Container) Len() int {
	return len(c.options)
}

// remove unregisters an option and all its aliases. It reports whether the
// option was present.
func (c *Container) remove(opt *Option) bool {
	for i, o := range c.options {
		if o == opt {
			c.options = append(c.options[:i], c.options[i+1:]...)
			for _, a := range opt.aliases() {
				delete(c.byAlias, a)
			}
			return true
		}
	}
	return false
}
