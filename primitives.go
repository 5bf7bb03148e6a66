package decoders

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Ready-made primitive decoders.
var (
	// String accepts Go strings and returns them unchanged.
	String Decoder[string] = decodeString
	// Number accepts any Go numeric value or json.Number that is not NaN.
	Number Decoder[float64] = decodeNumber
	// Boolean never fails: it converts its input by truthiness, so 0, "", nil,
	// NaN and Undefined become false and everything else becomes true.
	Boolean Decoder[bool] = decodeBoolean
	// Unknown accepts any input and returns it unchanged.
	Unknown Decoder[any] = func(v any) Result[any] { return Ok(v) }
)

func decodeString(v any) Result[string] {
	s, ok := v.(string)
	if !ok {
		return Error[string](message(MsgNotString, nil))
	}
	return Ok(s)
}

func decodeNumber(v any) Result[float64] {
	f, ok := numberOf(v)
	if !ok || math.IsNaN(f) {
		return Error[float64](message(MsgNotNumber, nil))
	}
	return Ok(f)
}

func decodeBoolean(v any) Result[bool] { return Ok(truthy(v)) }

// Literal returns a decoder accepting only inputs whose primitive value equals
// value. Strings match plain Go strings, as String does, and numbers match
// numbers of any Go numeric kind; "1" never matches 1.
func Literal[T Scalar](value T) Decoder[T] {
	want := primitiveOfScalar(value)
	return func(v any) Result[T] {
		got, ok := primitiveOf(v)
		if ok && got.equal(want) {
			return Ok(value)
		}
		return Error[T](message(MsgNotLiteral, nil))
	}
}

// EnumValue returns a decoder for the enumeration described by members (member
// name -> member value). Input is looked up first as a member name, then as
// the decimal text of a numeric member value ("1" for a member valued 1), then
// as a member value; all resolve to the member value.
func EnumValue[T Scalar](members map[string]T) Decoder[T] {
	byName := make(map[string]T, len(members))
	byValue := make(map[primitive]T, len(members))
	byNumberText := make(map[string]T)
	for name, val := range members {
		byName[name] = val
		p := primitiveOfScalar(val)
		byValue[p] = val
		if !p.isString {
			byNumberText[strconv.FormatFloat(p.f, 'g', -1, 64)] = val
		}
	}
	return func(v any) Result[T] {
		p, ok := primitiveOf(v)
		if !ok {
			return Error[T](message(MsgNotEnum, nil))
		}
		if p.isString {
			if val, ok := byName[p.s]; ok {
				return Ok(val)
			}
			if val, ok := byNumberText[p.s]; ok {
				return Ok(val)
			}
		}
		if val, ok := byValue[p]; ok {
			return Ok(val)
		}
		return Error[T](message(MsgNotEnum, nil))
	}
}

// ---- helpers ----

// primitive is a string or a number, the two scalar kinds literals compare by.
type primitive struct {
	isString bool
	s        string
	f        float64
}

func (p primitive) equal(o primitive) bool {
	if p.isString != o.isString {
		return false
	}
	if p.isString {
		return p.s == o.s
	}
	return p.f == o.f
}

func primitiveOf(v any) (primitive, bool) {
	if s, ok := v.(string); ok {
		return primitive{isString: true, s: s}, true
	}
	if f, ok := numberOf(v); ok {
		return primitive{f: f}, true
	}
	return primitive{}, false
}

func primitiveOfScalar[T Scalar](v T) primitive {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return primitive{isString: true, s: rv.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return primitive{f: float64(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return primitive{f: float64(rv.Uint())}
	default:
		return primitive{f: rv.Float()}
	}
}

// numberOf converts numeric inputs to float64. json.Number values that do not
// parse are not numbers.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case nil, string, bool:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil, UndefinedType:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := numberOf(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	// slices and maps are objects: truthy even when empty
	return true
}
