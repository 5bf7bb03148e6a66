package decoders

// Union returns a decoder trying each candidate in order and returning the
// first success. When every candidate fails the result is one generic failure;
// the candidates' own messages are discarded. Place more specific candidates
// first when shapes overlap.
func Union[T any](candidates ...Decoder[T]) Decoder[T] {
	ds := make([]Decoder[T], len(candidates))
	copy(ds, candidates)
	return func(v any) Result[T] {
		for _, d := range ds {
			if r := d(v); r.IsOk() {
				return r
			}
		}
		return Error[T](message(MsgNotOneOf, nil))
	}
}
