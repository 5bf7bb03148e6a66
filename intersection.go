package decoders

import (
	"reflect"

	gojson "github.com/goccy/go-json"
)

// Intersection returns a decoder requiring every candidate to accept the same
// input. If any candidate fails, the first failure in candidate order is
// returned.
//
// On success the output is built from the raw input, not from the decoded
// values: for every key present in any candidate's decoded shape, the raw
// input value for that key is copied when the input owns the key. Keys no
// candidate declared are dropped. Input that is not an object (scalars,
// slices, nil, Undefined) is returned unchanged.
//
// A decoded shape is a Record or map[string]any, or a struct whose keys are
// its JSON field names. Other decoded values contribute no keys.
func Intersection[T any](candidates ...Decoder[T]) Decoder[any] {
	ds := make([]Decoder[T], len(candidates))
	copy(ds, candidates)
	return func(v any) Result[any] {
		outs := make([]T, len(ds))
		var first *DecoderError
		for i, d := range ds {
			r := d(v)
			if err, failed := r.Failure(); failed {
				if first == nil {
					first = err
				}
				continue
			}
			outs[i] = r.value
		}
		if first != nil {
			return Fail[any](first)
		}
		lookup, ok := objectLookup(v)
		if !ok {
			return Ok(v)
		}
		merged := make(Record)
		for _, o := range outs {
			keys, ok := shapeKeys(o)
			if !ok {
				continue
			}
			for _, k := range keys {
				if raw, owned := lookup(k); owned {
					merged[k] = raw
				}
			}
		}
		return Ok[any](merged)
	}
}

// shapeKeys lists the keys of a decoded object shape.
func shapeKeys(v any) ([]string, bool) {
	if keys, ok := objectKeys(v); ok {
		return keys, true
	}
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, false
	}
	b, err := gojson.Marshal(rv.Interface())
	if err != nil {
		return nil, false
	}
	var fields map[string]gojson.RawMessage
	if err := gojson.Unmarshal(b, &fields); err != nil {
		return nil, false
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return keys, true
}
