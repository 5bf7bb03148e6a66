package decoders

import "reflect"

// Array returns a decoder for slices whose every element is accepted by d.
// Elements are decoded in index order and the first failing element's error is
// returned unchanged. On success the output has the input's length and order;
// an empty input yields an empty, non-nil slice.
func Array[T any](d Decoder[T]) Decoder[[]T] {
	return func(v any) Result[[]T] {
		if src, ok := v.([]any); ok {
			return decodeElements(d, len(src), func(i int) any { return src[i] })
		}
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return Error[[]T](message(MsgNotArray, nil))
		}
		return decodeElements(d, rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}
}

func decodeElements[T any](d Decoder[T], n int, at func(int) any) Result[[]T] {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		r := d(at(i))
		if err, failed := r.Failure(); failed {
			return Fail[[]T](err)
		}
		out = append(out, r.value)
	}
	return Ok(out)
}
