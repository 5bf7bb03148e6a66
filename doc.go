// Package decoders provides:
//
// - Composable decoders that turn untyped input (JSON-shaped any values) into typed Go values
// - A two-variant Result (success value or *DecoderError) sequenced with Map and Chain
// - Structural combinators (Optional, Nullable, Array, Dict, Object) and choice combinators
//   (Union, Intersection)
// - Binding of decoded records into hand-written result structs (Bind)
// - Readers that build untyped values from JSON or YAML with duplicate-key/depth/size enforcement
//
// Design policy:
// - Decoders are pure functions. They never panic on bad input and hold no mutable state, so a
//   single decoder value may be shared by any number of goroutines.
// - Validation failures are data (Result), input syntax failures are errors (*ReadError).
// - Error messages are flat strings. Combinators propagate the first child message verbatim,
//   except Union which replaces all candidate messages with one generic message.
// - Failure messages are looked up in the i18n package when a decoder fails, not when it is
//   built. The active language is process-wide: a decoder returns English messages until
//   i18n.SetLanguage or i18n.SetTranslator is called, and the new language afterwards. Configure
//   it once at startup; decoding is otherwise free of shared state.
//
// Typical usage:
//
//	repo := decoders.Object(
//	    decoders.Field("name", decoders.String),
//	    decoders.Field("stars", decoders.Optional(decoders.Number)),
//	)
//	res, err := decoders.DecodeBytes(repo, data)
//	if err != nil {
//	    // malformed JSON
//	}
//	rec, derr := res.Get()
package decoders
