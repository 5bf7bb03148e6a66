package decoders

import (
	"reflect"

	gojson "github.com/goccy/go-json"
)

// Bind returns a decoder that runs d and projects its output into T by JSON
// field name. T is usually a hand-written struct whose json tags name the keys
// of the decoded record; it is how a decoded shape gets a static Go type:
//
//	type Repo struct {
//	    Name  string   `json:"name"`
//	    Stars *float64 `json:"stars"`
//	}
//	var decodeRepo = decoders.Bind[Repo](decoders.Object(
//	    decoders.Field("name", decoders.String),
//	    decoders.Field("stars", decoders.Optional(decoders.Number)),
//	))
//
// A value that cannot be represented as T fails with "Cannot bind value to T".
func Bind[T, S any](d Decoder[S]) Decoder[T] {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return func(v any) Result[T] {
		return Chain(d(v), func(s S) Result[T] {
			var out T
			b, err := gojson.Marshal(s)
			if err != nil {
				return Error[T](message(MsgCannotBind, map[string]string{"type": name}))
			}
			if err := gojson.Unmarshal(b, &out); err != nil {
				return Error[T](message(MsgCannotBind, map[string]string{"type": name}))
			}
			return Ok(out)
		})
	}
}

// MarshalJSON renders Undefined as null so records holding it can be bound.
func (UndefinedType) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
