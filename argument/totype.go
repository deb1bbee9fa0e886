package argument

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ggoodman/smartinvoker-go/nativetype"
)

// Creator builds an instance of class from a raw value. It is consulted when
// an object-typed parameter receives a value that is not yet an instance.
type Creator func(class string, raw Value) (Value, error)

// numericPattern accepts decimal numerals with optional sign, fraction,
// exponent and surrounding whitespace.
var numericPattern = regexp.MustCompile(`^\s*[+-]?((\d+(\.\d*)?)|(\.\d+))([eE][+-]?\d+)?\s*$`)

var integerPattern = regexp.MustCompile(`^\s*[+-]?\d+\s*$`)

// ToType converts v to the declared type of d. Values of an untyped
// descriptor are returned unchanged. creator may be nil.
func (d *Descriptor) ToType(v Value, creator Creator) (Value, error) {
	switch d.typ {
	case "":
		return v, nil
	case nativetype.Callable:
		if v.kind != KindCallable {
			return Value{}, castErr(d, v)
		}
		return v, nil
	case nativetype.Object:
		if v.kind == KindObject && v.obj.InstanceOf(d.class) {
			return v, nil
		}
		if creator != nil {
			return creator(d.class, v)
		}
		return Value{}, castErr(d, v)
	}

	if v.kind.structural() {
		return Value{}, castErr(d, v)
	}

	switch d.typ {
	case nativetype.Int:
		if !isNumeric(v) {
			return Value{}, castErr(d, v)
		}
		i, ok := toInt(v)
		if !ok {
			return Value{}, castErr(d, v)
		}
		return Int(i), nil
	case nativetype.Float:
		if !isNumeric(v) {
			return Value{}, castErr(d, v)
		}
		return Float(toFloat(v)), nil
	case nativetype.Bool:
		return Bool(truthy(v)), nil
	case nativetype.String:
		return String(toString(v)), nil
	case nativetype.Array:
		if v.kind == KindNull {
			return List(), nil
		}
		return List(v), nil
	case nativetype.Null:
		return Null(), nil
	}
	// resource: no scalar converts to a handle
	return Value{}, castErr(d, v)
}

func isNumeric(v Value) bool {
	switch v.kind {
	case KindInt, KindFloat:
		return true
	case KindString:
		return numericPattern.MatchString(v.s)
	}
	return false
}

// toInt truncates toward zero. Non-finite and out of range values fail.
func toInt(v Value) (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		return floatToInt(v.f)
	case KindString:
		s := strings.TrimSpace(v.s)
		if integerPattern.MatchString(s) {
			i, err := strconv.ParseInt(s, 10, 64)
			return i, err == nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

func toFloat(v Value) float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
		return f
	}
	return 0
}

func truthy(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != "" && v.s != "0"
	}
	return false
}

func toString(v Value) string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	}
	return ""
}

// formatFloat prints f with 14 significant digits. Exponents carry no
// padding and the mantissa always has a fraction, e.g. 1.0E+20 or 1.5E-5.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'G', 14, 64)
	mant, exp, ok := strings.Cut(s, "E")
	if !ok {
		return s
	}
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "E" + sign + digits
}
