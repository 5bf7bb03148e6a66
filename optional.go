package decoders

// Optional returns a decoder that accepts Undefined in addition to whatever d
// accepts. Undefined yields a nil pointer without invoking d. nil (JSON null)
// is not special: it is handed to d like any other value.
func Optional[T any](d Decoder[T]) Decoder[*T] {
	return func(v any) Result[*T] {
		if IsUndefined(v) {
			return Ok[*T](nil)
		}
		return Map(d(v), func(t T) *T { return &t })
	}
}

// Nullable returns a decoder that accepts nil (JSON null) in addition to
// whatever d accepts. nil yields a nil pointer without invoking d. Undefined
// is handed to d; combine with Optional to accept both.
func Nullable[T any](d Decoder[T]) Decoder[*T] {
	return func(v any) Result[*T] {
		if v == nil {
			return Ok[*T](nil)
		}
		return Map(d(v), func(t T) *T { return &t })
	}
}

// AsAny erases the output type of d so decoders with different outputs can be
// combined by Union or Intersection.
func AsAny[T any](d Decoder[T]) Decoder[any] {
	return func(v any) Result[any] {
		return Map(d(v), func(t T) any { return t })
	}
}

// Then returns a decoder running d and, on success, f with the decoded value.
// It is Chain lifted to decoders and the usual way to build refinements such
// as formats.RFC3339.
func Then[A, B any](d Decoder[A], f func(A) Result[B]) Decoder[B] {
	return func(v any) Result[B] { return Chain(d(v), f) }
}
