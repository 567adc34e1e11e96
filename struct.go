package optext

import (
	"reflect"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// AddStruct reflects a pointer-to-struct into options, one per exported
// field, bound so that parsed values are written through to the fields as
// well as appearing in the Values snapshot. Field behavior is controlled
// with `opt:"key1,key2=value"` tags:
//
//	`-` skip the field
//	`name=<name>` override the flag name derived from the field name
//	`short=<s>` short alias, one rune
//	`help=<text>` help text (single-quote to include commas)
//	`placeholder=<text>` metavar shown in help
//	`env=<VAR>` environment variable fallback
//	`required` error if the field is not set at least once
//	`hidden` exclude from help output
//
// Defaults come from the field values at the time of the call. Anonymous
// embedded structs are flattened. Fields parse through Setter,
// encoding.TextUnmarshaler or encoding.BinaryUnmarshaler when implemented;
// strings, booleans, numeric primitives and time.Duration are handled
// natively.
func (c *Container) AddStruct(config interface{}) error {
	v := reflect.ValueOf(config)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("config must be a struct pointer (got %v)", v.Kind())
	}
	return c.addStructFields(v.Elem())
}

func (c *Container) addStructFields(sv reflect.Value) error {
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		val := sv.Field(i)

		// unexported fields are not settable and are skipped
		if !val.CanSet() {
			continue
		}

		tags := parseTagKeys(sf.Tag.Get("opt"))
		if _, ok := tags["-"]; ok {
			continue
		}

		if sf.Anonymous && val.Kind() == reflect.Struct {
			if err := c.addStructFields(val); err != nil {
				return err
			}
			continue
		}

		opt, err := optionFromField(sf, val, tags)
		if err != nil {
			return errors.Wrapf(err, "field %s.%s", sv.Type(), sf.Name)
		}
		if err := c.AddOption(opt); err != nil {
			return errors.Wrapf(err, "field %s.%s", sv.Type(), sf.Name)
		}
	}
	return nil
}

func optionFromField(sf reflect.StructField, val reflect.Value, tags map[string]string) (*Option, error) {
	pop := func(key string) (string, bool) {
		v, ok := tags[key]
		if ok {
			delete(tags, key)
		}
		return v, ok
	}

	name, ok := pop("name")
	if !ok || name == "" {
		name = xstrings.ToKebabCase(sf.Name)
	}
	opt := &Option{Long: []string{name}}

	if short, ok := pop("short"); ok {
		if len(short) != 1 {
			return nil, errors.New("short alias must be 1 letter")
		}
		opt.Short = append(opt.Short, short)
	}
	opt.Help, _ = pop("help")
	opt.Metavar, _ = pop("placeholder")
	opt.EnvVar, _ = pop("env")
	if _, ok := pop("required"); ok {
		opt.Required = true
	}
	if _, ok := pop("hidden"); ok {
		opt.Hidden = true
	}
	if len(tags) > 0 {
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		return nil, errors.Errorf("unknown tags: %s", strings.Join(keys, ", "))
	}

	var set Setter
	if val.CanAddr() {
		set = setterFor(val.Addr().Interface())
	}
	if set == nil {
		set = setterFor(val.Interface())
	}
	if set == nil {
		return nil, errors.Errorf("unsupported type %s", sf.Type)
	}

	opt.setter = set
	opt.getter = func() interface{} { return val.Interface() }
	if val.Kind() == reflect.Bool {
		opt.Kind = KindBool
	}
	if !val.IsZero() {
		opt.Default = val.Interface()
	}
	return opt, nil
}
