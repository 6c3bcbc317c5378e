package trim

import (
	"encoding/json"
	"math"
	"reflect"
)

// TrimValue trims values that arrive untyped, such as fields of a decoded
// JSON, YAML or TOML document.
//
// text must hold a string. maxLength must hold a non-negative integer:
// any integer kind, an integral float (10.0 but not 3.5), or a json.Number
// holding such a value. Strings, booleans and nil are rejected. The text
// argument is checked first.
func TrimValue(text, maxLength any, opts *Options) (string, error) {
	s, ok := text.(string)
	if !ok {
		return "", errTextNotString()
	}
	n, ok := toLength(maxLength)
	if !ok {
		return "", errMaxLength()
	}
	return trimText(s, n, opts.resolve()), nil
}

// toLength converts v to a non-negative int.
func toLength(v any) (int, bool) {
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return intLength(i)
		}
		f, err := num.Float64()
		if err != nil {
			return 0, false
		}
		return floatLength(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intLength(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		return floatLength(rv.Float())
	default:
		return 0, false
	}
}

func intLength(i int64) (int, bool) {
	if i < 0 || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func floatLength(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < 0 || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int(f), true
}
