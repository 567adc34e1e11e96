/*
Some code in this file was copied from the go "flag" package source and
modified. That code's license is retained here:

Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package optext

// parseState holds the per-invocation state of a single ParseArgs call.
// Nothing here outlives the call, so a parser can be reused for another
// parse afterwards.
type parseState struct {
	lookup     map[string]*Option
	helpOpt    *Option
	versionOpt *Option
	seen       map[*Option]bool
	values     map[string]interface{}
	positional []string
	args       []string
}

func (st *parseState) parse(arguments []string) error {
	st.args = arguments
	for {
		more, err := st.parseOne()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

// parseOne consumes one token (or one flag plus its argument). Non-flag
// tokens are collected as positionals and parsing continues, so flags and
// positionals may be interspersed; "--" terminates flag parsing entirely.
func (st *parseState) parseOne() (bool, error) {
	if len(st.args) == 0 {
		return false, nil
	}
	s := st.args[0]
	if len(s) < 2 || s[0] != '-' {
		st.positional = append(st.positional, s)
		st.args = st.args[1:]
		return true, nil
	}
	numMinuses := 1
	if s[1] == '-' {
		numMinuses++
		if len(s) == 2 { // "--" terminates the flags
			st.positional = append(st.positional, st.args[1:]...)
			st.args = nil
			return false, nil
		}
	}
	name := s[numMinuses:]
	if name[0] == '-' || name[0] == '=' {
		return false, usageErrorf("bad option syntax: %s", s)
	}

	// With a single dash, handle each rune as a separate short option,
	// except for the last one which may have a following argument.
	if numMinuses == 1 {
		i := 0
		for ; i < len(name)-1; i++ {
			if err := st.parseOneFlag(string(name[i]), false, "", false); err != nil {
				return false, err
			}
		}
		name = name[i:]
	}

	st.args = st.args[1:]
	hasValue := false
	value := ""
	for i := 1; i < len(name); i++ { // equals cannot be first
		if name[i] == '=' {
			value = name[i+1:]
			hasValue = true
			name = name[0:i]
			break
		}
	}

	if err := st.parseOneFlag(name, hasValue, value, true); err != nil {
		return false, err
	}
	return true, nil
}

func (st *parseState) parseOneFlag(name string, hasValue bool, value string, canLookNext bool) error {
	opt, ok := st.lookup[name]
	if !ok {
		return usageErrorf("no such option: %s", dashed(name))
	}

	if opt == st.helpOpt {
		return ErrHelp
	}
	if st.versionOpt != nil && opt == st.versionOpt {
		return ErrVersion
	}

	if !opt.takesArg() { // boolean flag, argument optional
		if hasValue {
			if err := st.setValue(opt, value); err != nil {
				return usageErrorf("invalid boolean value %q for option %s", value, dashed(name))
			}
			return nil
		}
		return st.setValue(opt, "true")
	}

	// It must have a value, which might be the next argument.
	if !hasValue && len(st.args) > 0 && canLookNext {
		hasValue = true
		value, st.args = st.args[0], st.args[1:]
	}
	if !hasValue {
		return usageErrorf("option %s requires an argument", dashed(name))
	}
	if err := st.setValue(opt, value); err != nil {
		return usageErrorf("invalid value %q for option %s: %v", value, dashed(name), err)
	}
	return nil
}

// setValue records a parsed value for the option, going through the
// write-through setter for struct-bound options.
func (st *parseState) setValue(opt *Option, s string) error {
	st.seen[opt] = true
	dest := opt.destination()
	if opt.setter != nil {
		if err := opt.setter.Set(s); err != nil {
			return err
		}
		st.values[dest] = opt.getter()
		return nil
	}
	v, err := opt.convert(s)
	if err != nil {
		return err
	}
	if opt.Kind == KindStrings {
		prev, _ := st.values[dest].([]string)
		st.values[dest] = append(prev, s)
		return nil
	}
	st.values[dest] = v
	return nil
}

// dashed restores the command line form of an alias for error messages.
func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
