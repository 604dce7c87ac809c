package strkit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedType is returned when a numeric kind outside the supported set is requested
	ErrUnsupportedType = errors.New("unsupported numeric type")

	ErrOutOfRange = errors.New("substring out of range")
)

// NumericKind selects the numeric type a substring is parsed into.
// The zero value is not a valid kind.
type NumericKind int

const (
	Byte   NumericKind = iota + 1 // int8
	Short                         // int16
	Int                           // int32
	Long                          // int64
	Float                         // float32
	Double                        // float64
)

func (k NumericKind) String() string {
	switch k {
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	}

	return fmt.Sprintf("NumericKind(%d)", int(k))
}

// ParseNumericKind maps a kind name to its NumericKind.
func ParseNumericKind(name string) (NumericKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "byte", "int8":
		return Byte, nil
	case "short", "int16":
		return Short, nil
	case "int", "int32":
		return Int, nil
	case "long", "int64":
		return Long, nil
	case "float", "float32":
		return Float, nil
	case "double", "float64":
		return Double, nil
	}

	return 0, errors.Wrapf(ErrUnsupportedType, "%q", name)
}

func (k NumericKind) bitSize() int {
	switch k {
	case Byte:
		return 8
	case Short:
		return 16
	case Int, Float:
		return 32
	}

	return 64
}

func (k NumericKind) integer() bool {
	return k >= Byte && k <= Long
}

// Number is a parsed numeric value. Integer kinds fill Int, floating point
// kinds fill Float.
type Number struct {
	Kind  NumericKind
	Int   int64
	Float float64
}

func (n Number) String() string {
	if n.Kind.integer() {
		return strconv.FormatInt(n.Int, 10)
	}

	return strconv.FormatFloat(n.Float, 'f', -1, n.Kind.bitSize())
}

// Substring reads n runes of s starting at the 1-based position start.
func Substring(s string, start, n int) (string, error) {
	runes := []rune(s)
	if start < 1 || n < 0 || start-1 > len(runes) || n > len(runes)-(start-1) {
		return "", errors.Wrapf(ErrOutOfRange, "start=%d n=%d length=%d", start, n, len(runes))
	}

	return string(runes[start-1 : start-1+n]), nil
}

// ParseSubstring reads n runes of s from the 1-based position start and parses
// them as the requested kind. Persian and Arabic-Indic digits are accepted.
func ParseSubstring(s string, start, n int, kind NumericKind) (Number, error) {
	if kind < Byte || kind > Double {
		return Number{}, errors.Wrapf(ErrUnsupportedType, "%s", kind)
	}

	sub, err := Substring(s, start, n)
	if err != nil {
		return Number{}, err
	}

	value := ToWesternDigits(sub)

	switch kind {
	case Byte, Short, Int, Long:
		i, err := strconv.ParseInt(value, 10, kind.bitSize())
		if err != nil {
			return Number{}, errors.Wrapf(err, "can not parse %q as %s", sub, kind)
		}
		return Number{Kind: kind, Int: i}, nil

	default:
		f, err := strconv.ParseFloat(value, kind.bitSize())
		if err != nil {
			return Number{}, errors.Wrapf(err, "can not parse %q as %s", sub, kind)
		}
		return Number{Kind: kind, Float: f}, nil
	}
}

func SubstringInt(s string, start, n int) (int, error) {
	v, err := ParseSubstring(s, start, n, Int)
	return int(v.Int), err
}

func SubstringInt64(s string, start, n int) (int64, error) {
	v, err := ParseSubstring(s, start, n, Long)
	return v.Int, err
}

func SubstringFloat64(s string, start, n int) (float64, error) {
	v, err := ParseSubstring(s, start, n, Double)
	return v.Float, err
}
