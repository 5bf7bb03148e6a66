// Package middleware decodes HTTP request bodies with a decoder before the
// handler runs and stores the typed value in the request context.
package middleware

import (
	"context"
	"net/http"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/decoders"
)

// ctxKeyValue is a typed context key for storing a decoded T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a decoded T to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves a decoded T from context.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

// DefaultReadOpt returns a recommended default for HTTP JSON boundaries:
// duplicate keys are rejected and nesting is capped.
func DefaultReadOpt() decoders.ReadOpt {
	return decoders.ReadOpt{
		Strictness: decoders.Strictness{OnDuplicateKey: decoders.Reject},
		MaxDepth:   64,
	}
}

// OrDefault returns DefaultReadOpt when opt is the zero value, opt otherwise.
func OrDefault(opt decoders.ReadOpt) decoders.ReadOpt {
	if opt.Strictness == (decoders.Strictness{}) && opt.MaxDepth == 0 && opt.MaxBytes == 0 && opt.OnWarning == nil {
		return DefaultReadOpt()
	}
	return opt
}

// ErrorPayload shapes a decoding failure for JSON responses.
func ErrorPayload(err *decoders.DecoderError) map[string]any {
	return map[string]any{"kind": err.Kind, "message": err.Message}
}

// ReadErrorPayload shapes a malformed body for JSON responses.
func ReadErrorPayload(err error) map[string]any {
	out := map[string]any{"error": err.Error()}
	if re, ok := decoders.AsReadError(err); ok {
		out["code"] = re.Code
		out["path"] = re.Path
	}
	return out
}

// Decode reads the JSON body of r with d. A non-nil payload is the 400 body
// to send back.
func Decode[T any](r *http.Request, d decoders.Decoder[T], opt decoders.ReadOpt) (T, map[string]any) {
	var zero T
	res, err := decoders.StreamDecode(d, r.Body, opt)
	if err != nil {
		return zero, ReadErrorPayload(err)
	}
	if de, failed := res.Failure(); failed {
		return zero, ErrorPayload(de)
	}
	v, _ := res.Value()
	return v, nil
}

// DecodeJSON decodes request bodies with d and stores the result in the
// request context, or answers 400 with a JSON payload. A zero opt selects
// DefaultReadOpt.
func DecodeJSON[T any](d decoders.Decoder[T], opt decoders.ReadOpt) func(http.Handler) http.Handler {
	opt = OrDefault(opt)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, payload := Decode(r, d, opt)
			if payload != nil {
				WriteJSON(w, http.StatusBadRequest, payload)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v)))
		})
	}
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	b, err := gojson.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
