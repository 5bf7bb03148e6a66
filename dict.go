package decoders

import "sort"

// Dict returns a decoder for string-keyed maps whose every value is accepted by
// d. Keys are decoded in sorted order and decoding stops at the first failing
// value, whose error is returned unchanged.
func Dict[T any](d Decoder[T]) Decoder[map[string]T] {
	return func(v any) Result[map[string]T] {
		keys, ok := objectKeys(v)
		if !ok {
			return Error[map[string]T](message(MsgNotObject, nil))
		}
		lookup, _ := objectLookup(v)
		sort.Strings(keys)
		out := make(map[string]T, len(keys))
		for _, k := range keys {
			in, _ := lookup(k)
			r := d(in)
			if err, failed := r.Failure(); failed {
				return Fail[map[string]T](err)
			}
			out[k] = r.value
		}
		return Ok(out)
	}
}
