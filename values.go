package optext

import "time"

// Values is the immutable result namespace produced by ParseArgs. Every
// option with a declared default has a defined value even when it was not
// given on the command line. Typed getters return the zero value for
// missing keys or mismatched types.
type Values struct {
	m map[string]interface{}
}

func newValues(m map[string]interface{}) Values {
	return Values{m: m}
}

// Has reports whether a value is defined for the destination key.
func (v Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Get returns the untyped value for the destination key, or nil.
func (v Values) Get(name string) interface{} {
	return v.m[name]
}

func (v Values) Bool(name string) bool {
	b, _ := v.m[name].(bool)
	return b
}

func (v Values) String(name string) string {
	s, _ := v.m[name].(string)
	return s
}

func (v Values) Int(name string) int {
	i, _ := v.m[name].(int)
	return i
}

func (v Values) Float64(name string) float64 {
	f, _ := v.m[name].(float64)
	return f
}

func (v Values) Duration(name string) time.Duration {
	d, _ := v.m[name].(time.Duration)
	return d
}

func (v Values) Strings(name string) []string {
	s, _ := v.m[name].([]string)
	return s
}
