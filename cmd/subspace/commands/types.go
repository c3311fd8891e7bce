package commands

import (
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"go.llib.dev/subspace/pkg/num"
	"golang.org/x/exp/constraints"
)

// numeric is a primitive type selected by its name on the command line.
type numeric interface {
	// parse reads a literal into a value of the type, boxed.
	parse(lit string) (any, error)
	// cast converts any boxed primitive into the type.
	cast(v any) (any, error)
	format(v any) string
}

type integer[T constraints.Integer] struct{}

func (integer[T]) parse(lit string) (any, error) {
	v, err := num.ParseLiteral[T](lit)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (integer[T]) cast(v any) (any, error) { return castTo[T](v) }

func (integer[T]) format(v any) string { return num.Of(v.(T)).String() }

type float[T constraints.Float] struct{}

func (float[T]) parse(lit string) (any, error) {
	v, err := num.ParseFloatLiteral[T](lit)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (float[T]) cast(v any) (any, error) { return castTo[T](v) }

func (float[T]) format(v any) string { return num.FloatOf(v.(T)).String() }

var numerics = map[string]numeric{
	"i8":    integer[int8]{},
	"i16":   integer[int16]{},
	"i32":   integer[int32]{},
	"i64":   integer[int64]{},
	"isize": integer[int]{},
	"u8":    integer[uint8]{},
	"u16":   integer[uint16]{},
	"u32":   integer[uint32]{},
	"u64":   integer[uint64]{},
	"usize": integer[uint]{},
	"f32":   float[float32]{},
	"f64":   float[float64]{},
}

func typeNames() []string {
	names := make([]string, 0, len(numerics))
	for name := range numerics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func joinedTypeNames() string { return strings.Join(typeNames(), ", ") }

func castTo[To num.Number](v any) (To, error) {
	switch v := v.(type) {
	case int8:
		return num.Cast[To](v), nil
	case int16:
		return num.Cast[To](v), nil
	case int32:
		return num.Cast[To](v), nil
	case int64:
		return num.Cast[To](v), nil
	case int:
		return num.Cast[To](v), nil
	case uint8:
		return num.Cast[To](v), nil
	case uint16:
		return num.Cast[To](v), nil
	case uint32:
		return num.Cast[To](v), nil
	case uint64:
		return num.Cast[To](v), nil
	case uint:
		return num.Cast[To](v), nil
	case float32:
		return num.Cast[To](v), nil
	case float64:
		return num.Cast[To](v), nil
	default:
		var zero To
		return zero, ErrUnknownType.F("%T", v)
	}
}

// typeFlag is a pflag.Value that only accepts the names of the supported numeric types.
type typeFlag struct {
	name string
}

var _ pflag.Value = (*typeFlag)(nil)

func (f *typeFlag) String() string { return f.name }

func (f *typeFlag) Set(name string) error {
	name = strings.ToLower(name)
	if _, ok := numerics[name]; !ok {
		return ErrUnknownType.F("%q, expected one of %s", name, joinedTypeNames())
	}
	f.name = name
	return nil
}

func (f *typeFlag) Type() string { return "type" }

func (f *typeFlag) numeric() numeric { return numerics[f.name] }

// mode selects the overflow behaviour of arith.
type mode string

const (
	modeChecked     mode = "checked"
	modeWrapping    mode = "wrapping"
	modeSaturating  mode = "saturating"
	modeOverflowing mode = "overflowing"
)

var _ pflag.Value = (*mode)(nil)

func (m *mode) String() string { return string(*m) }

func (m *mode) Set(v string) error {
	switch mode(strings.ToLower(v)) {
	case modeChecked, modeWrapping, modeSaturating, modeOverflowing:
		*m = mode(strings.ToLower(v))
		return nil
	default:
		return ErrUnknownMode.F("%q", v)
	}
}

func (m *mode) Type() string { return "mode" }
