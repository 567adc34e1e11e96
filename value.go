package optext

import (
	"encoding"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Setter parses a raw argument string into a destination, in the manner of
// flag.Value. Struct-bound options carry a Setter writing through to the
// underlying field.
type Setter interface {
	Set(s string) error
}

// setterFor returns a Setter for the given destination, which must be a
// pointer. Custom types are supported through Setter,
// encoding.TextUnmarshaler or encoding.BinaryUnmarshaler; time.Duration,
// strings and the numeric primitives are handled natively. Returns nil when
// the type is not supported.
func setterFor(i interface{}) Setter {
	switch v := i.(type) {
	case Setter:
		return v
	case encoding.TextUnmarshaler:
		return textSetter{v}
	case encoding.BinaryUnmarshaler:
		return binarySetter{v}
	case *time.Duration:
		return durationSetter{v}
	case *string:
		return stringSetter{v}
	case
		*bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		return scanfSetter{v}
	default:
		return nil
	}
}

type stringSetter struct {
	v *string
}

func (ss stringSetter) Set(s string) error {
	*ss.v = s
	return nil
}

type textSetter struct {
	encoding.TextUnmarshaler
}

func (ts textSetter) Set(s string) error {
	return ts.UnmarshalText([]byte(s))
}

type binarySetter struct {
	encoding.BinaryUnmarshaler
}

func (bs binarySetter) Set(s string) error {
	return bs.UnmarshalBinary([]byte(s))
}

type durationSetter struct {
	d *time.Duration
}

func (ds durationSetter) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*ds.d = v
	return nil
}

type scanfSetter struct {
	v interface{}
}

func (ss scanfSetter) Set(s string) error {
	n, err := fmt.Sscanf(s, "%v", ss.v)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("scanf did not scan any items")
	}
	return nil
}
