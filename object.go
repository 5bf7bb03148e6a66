package decoders

import (
	"reflect"
	"strconv"
)

// Property is one named field of an Object shape.
type Property struct {
	name   string
	decode Decoder[any]
}

// Name returns the field name.
func (p Property) Name() string { return p.name }

// Field declares an object field decoded by d. Any string, including "", is a
// valid name.
func Field[T any](name string, d Decoder[T]) Property {
	if d == nil {
		return Property{name: name}
	}
	return Property{name: name, decode: AsAny(d)}
}

// Object returns a decoder for string-keyed maps. Fields are decoded in
// declaration order and decoding stops at the first failing field, whose error
// is returned unchanged. A missing key is decoded as Undefined, so only fields
// wrapped in Optional tolerate absence. The output holds exactly the declared
// fields; other input keys are dropped.
//
// Object panics when a field has no decoder or a name is declared twice.
func Object(fields ...Property) Decoder[Record] {
	shape := make([]Property, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.decode == nil {
			panic("decoders: object field " + strconv.Quote(f.name) + " requires a decoder")
		}
		if _, dup := seen[f.name]; dup {
			panic("decoders: object field " + strconv.Quote(f.name) + " declared twice")
		}
		seen[f.name] = struct{}{}
		shape[i] = f
	}
	return func(v any) Result[Record] {
		lookup, ok := objectLookup(v)
		if !ok {
			return Error[Record](message(MsgNotObject, nil))
		}
		out := make(Record, len(shape))
		for _, f := range shape {
			in, present := lookup(f.name)
			if !present {
				in = Undefined
			}
			r := f.decode(in)
			if err, failed := r.Failure(); failed {
				return Fail[Record](err)
			}
			out[f.name] = r.value
		}
		return Ok(out)
	}
}

// objectLookup returns a key lookup over v when v is a non-nil string-keyed map.
func objectLookup(v any) (func(string) (any, bool), bool) {
	switch m := v.(type) {
	case map[string]any:
		if m == nil {
			return nil, false
		}
		return func(k string) (any, bool) { x, ok := m[k]; return x, ok }, true
	case Record:
		if m == nil {
			return nil, false
		}
		return func(k string) (any, bool) { x, ok := m[k]; return x, ok }, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	kt := rv.Type().Key()
	return func(k string) (any, bool) {
		x := rv.MapIndex(reflect.ValueOf(k).Convert(kt))
		if !x.IsValid() {
			return nil, false
		}
		return x.Interface(), true
	}, true
}

// objectKeys lists the keys of a string-keyed map; ok is false for any other value.
func objectKeys(v any) ([]string, bool) {
	switch m := v.(type) {
	case map[string]any:
		if m == nil {
			return nil, false
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys, true
	case Record:
		if m == nil {
			return nil, false
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	return keys, true
}
